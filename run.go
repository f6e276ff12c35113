package dfa

// Accepts Returns true if word leads from the start state to a final state. A missing transition
// rejects the word.
func Accepts(d *DFA, word []int) bool {
	state := d.start
	for _, label := range word {
		if state = d.step(state, label); state == -1 {
			return false
		}
	}
	return d.IsFinal(state)
}

// Run Returns true if the runes of s are accepted.
func Run(d *DFA, s string) bool {
	labels := make([]int, 0, len(s))
	for _, v := range s {
		labels = append(labels, int(v))
	}
	return Accepts(d, labels)
}

// RunBytes Returns true if the given byte array is accepted.
func RunBytes(d *DFA, b []byte) bool {
	labels := make([]int, len(b))
	for i := 0; i < len(b); i++ {
		labels[i] = int(b[i])
	}
	return Accepts(d, labels)
}

func (d *DFA) step(state, label int) int {
	next := d.Step(state, label)
	if next != -1 {
		d.options.logger(state, next, label)
	}
	return next
}
