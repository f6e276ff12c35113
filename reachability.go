package dfa

import (
	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

// ReachableStates
// Returns the states reachable from the start state, the start state included. The result is
// empty if no start state was set.
func ReachableStates(d *DFA) *bitset.BitSet {
	live := bitset.New(uint(d.options.capacity))
	if !d.HasStart() {
		return live
	}

	workList := make([]int, 0)
	live.Set(uint(d.start))
	workList = append(workList, d.start)

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		for _, e := range d.forward[s] {
			if live.Test(uint(e.To)) == false {
				live.Set(uint(e.To))
				workList = append(workList, e.To)
			}
		}
	}
	return live
}

// AliveStates
// Returns the states from which some final state can be reached, all final states included.
// The walk follows the recorded predecessor sets, so stale links left by overwritten edges
// can only add states.
func AliveStates(d *DFA) *bitset.BitSet {
	live := d.final.Clone()
	workList := members(live)

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		preds, ok := d.reverse[s]
		if !ok {
			continue
		}
		for p, ok := preds.NextSet(0); ok; p, ok = preds.NextSet(p + 1) {
			if live.Test(p) == false {
				live.Set(p)
				workList = append(workList, int(p))
			}
		}
	}
	return live
}

// ValidStates
// Returns the states that are both reachable and alive. Only these states matter to the language
// of the automaton.
func ValidStates(d *DFA) *bitset.BitSet {
	return ReachableStates(d).Intersection(AliveStates(d))
}

// IsEmpty
// Returns true if the given automaton accepts no strings.
func IsEmpty(d *DFA) bool {
	if !d.HasStart() || d.final.None() {
		return true
	}
	if d.IsFinal(d.start) {
		return false
	}
	return ReachableStates(d).IntersectionCardinality(d.final) == 0
}

// RemoveDeadStates
// Returns a copy of d restricted to its valid states and the edges between them. State numbers
// and the start state are kept.
func RemoveDeadStates(d *DFA) *DFA {
	valid := ValidStates(d)
	result := newDFA(d.options)
	result.start = d.start

	for _, s := range members(valid) {
		if d.IsFinal(s) {
			result.final.Set(uint(s))
		}
		for _, e := range d.forward[s] {
			if valid.Test(uint(e.To)) {
				result.addEdge(e.From, e.To, e.Label)
			}
		}
	}

	u.Debugf("removed %d dead states, %d remain", d.NumStates()-result.NumStates(), result.NumStates())
	return result
}
