package dfa

// Automata Factory for small automata over rune labels.
type Automata struct {
	opts []Option
}

// NewAutomata Returns a factory whose automata are created with opts.
func NewAutomata(opts ...Option) *Automata {
	return &Automata{opts: opts}
}

// MakeEmpty
// Returns a new automaton with the empty language: a single non-final start state.
func (f *Automata) MakeEmpty() *DFA {
	return makeEmpty(newOptions(f.opts...))
}

func makeEmpty(o *options) *DFA {
	a := newDFA(o)
	a.start = 0
	return a
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (f *Automata) MakeEmptyString() *DFA {
	a := f.MakeEmpty()
	a.final.Set(0)
	return a
}

// MakeString
// Returns a new automaton that accepts the single given string.
func (f *Automata) MakeString(s string) *DFA {
	a := f.MakeEmpty()
	state := 0
	for _, r := range s {
		a.addEdge(state, state+1, int(r))
		state++
	}
	a.final.Set(uint(state))
	return a
}

// MakeAnyString
// Returns a new automaton that accepts all strings over the given labels.
func (f *Automata) MakeAnyString(labels ...int) *DFA {
	a := f.MakeEmptyString()
	for _, l := range labels {
		a.addEdge(0, 0, l)
	}
	return a
}

// MakeCharRange
// Returns a new automaton that accepts a single rune in [min, max].
func (f *Automata) MakeCharRange(min, max rune) *DFA {
	a := f.MakeEmpty()
	if min > max {
		return a
	}
	for r := min; r <= max; r++ {
		a.addEdge(0, 1, int(r))
	}
	a.final.Set(1)
	return a
}
