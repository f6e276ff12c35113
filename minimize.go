package dfa

import (
	"slices"

	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

// Minimize
// Returns the minimal automaton accepting the same language as d, using Hopcroft's algorithm
// restricted to the valid states. Result states are numbered 0..n-1 in breadth-first order from
// the start state, following labels in ascending order. If no final state is reachable the
// result is a single non-final start state 0 without edges. d is not modified.
func Minimize(d *DFA) *DFA {
	valid := ValidStates(d)
	if valid.None() {
		// Fastmatch for empty language
		return makeEmpty(d.options)
	}

	p := newPartition(
		members(valid.Intersection(d.final)),
		members(valid.Difference(d.final)),
	)
	letters := d.Alphabet()
	inverse := invert(d, valid)

	for {
		a, ok := p.pop()
		if !ok {
			break
		}
		// A may itself be split while its letters are processed.
		splitter := slices.Clone(p.blocks[a])

		for _, c := range letters {
			x := preimage(inverse[c], splitter)
			if x.None() {
				continue
			}
			p.split(x, members(x))
		}
	}

	result := buildMinimal(d, valid, p)
	u.Debugf("minimize: %d valid states, %d letters -> %d states after %d splits",
		valid.Count(), len(letters), p.size(), p.splits)
	return result
}

// invert Indexes the edges between valid states by label and destination.
func invert(d *DFA, valid *bitset.BitSet) map[int]map[int][]int {
	inverse := make(map[int]map[int][]int)
	for from, edges := range d.forward {
		if !valid.Test(uint(from)) {
			continue
		}
		for _, e := range edges {
			if !valid.Test(uint(e.To)) {
				continue
			}
			byDest, ok := inverse[e.Label]
			if !ok {
				byDest = make(map[int][]int)
				inverse[e.Label] = byDest
			}
			byDest[e.To] = append(byDest[e.To], from)
		}
	}
	return inverse
}

// preimage Returns the states with an edge into any of targets.
func preimage(byDest map[int][]int, targets []int) *bitset.BitSet {
	x := bitset.New(0)
	for _, t := range targets {
		for _, s := range byDest[t] {
			x.Set(uint(s))
		}
	}
	return x
}

func buildMinimal(d *DFA, valid *bitset.BitSet, p *partition) *DFA {
	letters := d.Alphabet()

	// Number blocks breadth-first from the start block.
	ids := make(map[int]int, p.size())
	startBlock := p.blockOf[d.start]
	ids[startBlock] = 0
	queue := []int{startBlock}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		rep := p.blocks[b][0]
		for _, c := range letters {
			t := d.Step(rep, c)
			if t == -1 || !valid.Test(uint(t)) {
				continue
			}
			tb := p.blockOf[t]
			if _, ok := ids[tb]; !ok {
				ids[tb] = len(ids)
				queue = append(queue, tb)
			}
		}
	}

	o := *d.options
	o.capacity = p.size()
	result := newDFA(&o)
	result.start = 0

	for _, s := range members(valid) {
		id := ids[p.blockOf[s]]
		if d.IsFinal(s) {
			result.final.Set(uint(id))
		}
		for _, e := range d.forward[s] {
			if valid.Test(uint(e.To)) {
				result.addEdge(id, ids[p.blockOf[e.To]], e.Label)
			}
		}
	}
	return result
}
