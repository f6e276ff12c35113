package dfa

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// MaxState The largest state identifier accepted by the mutators. State sets are bitsets indexed
// by state, so their size follows the largest identifier in use.
const MaxState = 1<<20 - 1

// Edge A transition leaving From and entering To on Label.
type Edge struct {
	From  int
	To    int
	Label int
}

// DFA Represents a deterministic automaton and all its states and transitions. States are
// non-negative integers and exist implicitly: a state is part of the automaton as soon as it
// is the start state, a final state or an endpoint of an edge. Add transitions using AddEdge;
// adding a transition for a (source, label) pair that already has one replaces its destination.
// Once handed to Run, Accepts or Minimize the automaton is treated as read-only.
type DFA struct {
	// Start state, or -1 if it was never set.
	start int

	final *bitset.BitSet

	// Outgoing edges of each state, in insertion order.
	forward map[int][]Edge

	// Predecessors of each state. Grows on every AddEdge call unless exactReverse is set.
	reverse map[int]*bitset.BitSet

	options *options
}

// NewDFA Creates an empty automaton without a start state.
func NewDFA(opts ...Option) *DFA {
	return newDFA(newOptions(opts...))
}

func newDFA(o *options) *DFA {
	return &DFA{
		start:   -1,
		final:   bitset.New(uint(o.capacity)),
		forward: make(map[int][]Edge, o.capacity),
		reverse: make(map[int]*bitset.BitSet, o.capacity),
		options: o,
	}
}

// AddEdge Add a transition from -> to on label. If from already has a transition on label, its
// destination is replaced in place.
func (d *DFA) AddEdge(from, to, label int) error {
	if !validState(from) || !validState(to) {
		return fmt.Errorf("%w: edge %d -> %d on %d", ErrInvalidState, from, to, label)
	}
	d.addEdge(from, to, label)
	return nil
}

func validState(state int) bool {
	return state >= 0 && state <= MaxState
}

// addEdge is AddEdge for identifiers already known to be in range.
func (d *DFA) addEdge(from, to, label int) {
	edges := d.forward[from]
	for i := range edges {
		if edges[i].Label != label {
			continue
		}
		old := edges[i].To
		edges[i].To = to
		if d.options.exactReverse && old != to && !d.hasEdgeTo(from, old) {
			d.reverse[old].Clear(uint(from))
		}
		d.addPredecessor(to, from)
		return
	}

	d.forward[from] = append(edges, Edge{From: from, To: to, Label: label})
	d.addPredecessor(to, from)
}

func (d *DFA) hasEdgeTo(from, to int) bool {
	for _, e := range d.forward[from] {
		if e.To == to {
			return true
		}
	}
	return false
}

func (d *DFA) addPredecessor(state, pred int) {
	preds, ok := d.reverse[state]
	if !ok {
		preds = bitset.New(uint(pred + 1))
		d.reverse[state] = preds
	}
	preds.Set(uint(pred))
}

// SetStart Set the start state. The state does not need to have any edges.
func (d *DFA) SetStart(state int) error {
	if !validState(state) {
		return fmt.Errorf("%w: start %d", ErrInvalidState, state)
	}
	d.start = state
	return nil
}

// MarkFinal Mark state as a final (accepting) state.
func (d *DFA) MarkFinal(state int) error {
	if !validState(state) {
		return fmt.Errorf("%w: final %d", ErrInvalidState, state)
	}
	d.final.Set(uint(state))
	return nil
}

// Start Returns the start state, or -1 if none was set.
func (d *DFA) Start() int {
	return d.start
}

// HasStart Returns true once a start state has been set.
func (d *DFA) HasStart() bool {
	return d.start >= 0
}

// IsFinal Returns true if this state is a final state.
func (d *DFA) IsFinal(state int) bool {
	return state >= 0 && d.final.Test(uint(state))
}

// FinalStates Returns the final states in ascending order.
func (d *DFA) FinalStates() []int {
	return members(d.final)
}

// Edges Returns a copy of the edges leaving state, in insertion order.
func (d *DFA) Edges(state int) []Edge {
	return slices.Clone(d.forward[state])
}

// AllEdges Returns every edge, ordered by source state and then by insertion order.
func (d *DFA) AllEdges() []Edge {
	result := make([]Edge, 0, d.NumEdges())
	for _, s := range d.sources() {
		result = append(result, d.forward[s]...)
	}
	return result
}

// Predecessors Returns the recorded predecessors of state in ascending order.
func (d *DFA) Predecessors(state int) []int {
	preds, ok := d.reverse[state]
	if !ok {
		return nil
	}
	return members(preds)
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if no matching outgoing transition
func (d *DFA) Step(state, label int) int {
	for _, e := range d.forward[state] {
		if e.Label == label {
			return e.To
		}
	}
	return -1
}

// Alphabet Returns the sorted set of labels used by any edge.
func (d *DFA) Alphabet() []int {
	seen := make(map[int]struct{})
	for _, edges := range d.forward {
		for _, e := range edges {
			seen[e.Label] = struct{}{}
		}
	}

	labels := make([]int, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	return labels
}

// States Returns every state that is the start state, a final state or an edge endpoint, sorted.
func (d *DFA) States() []int {
	return members(d.stateSet())
}

func (d *DFA) stateSet() *bitset.BitSet {
	set := d.final.Clone()
	if d.start >= 0 {
		set.Set(uint(d.start))
	}
	for from, edges := range d.forward {
		set.Set(uint(from))
		for _, e := range edges {
			set.Set(uint(e.To))
		}
	}
	return set
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return int(d.stateSet().Count())
}

// NumEdges How many transitions this automaton has.
func (d *DFA) NumEdges() int {
	n := 0
	for _, edges := range d.forward {
		n += len(edges)
	}
	return n
}

// sources returns the states with outgoing edges, ascending.
func (d *DFA) sources() []int {
	keys := make([]int, 0, len(d.forward))
	for k := range d.forward {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (d *DFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "start=%d final=%v", d.start, d.FinalStates())
	for _, e := range d.AllEdges() {
		fmt.Fprintf(&sb, " %d-%d->%d", e.From, e.Label, e.To)
	}
	return sb.String()
}

func members(set *bitset.BitSet) []int {
	result := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		result = append(result, int(i))
	}
	return result
}
