package dfa

import "github.com/bits-and-blooms/bitset"

// partition Disjoint blocks of states stored in an arena. Blocks are addressed by index and never
// removed: splitting a block keeps one half at the old index and appends the other.
type partition struct {
	blocks  [][]int     // members of each block, ascending
	blockOf map[int]int // state -> block index
	pending []bool      // block index is on the worklist
	work    []int
	splits  int
}

// newPartition Creates a partition from the given blocks, skipping empty ones, and puts every
// block on the worklist.
func newPartition(initial ...[]int) *partition {
	p := &partition{
		blockOf: make(map[int]int),
	}
	for _, block := range initial {
		if len(block) == 0 {
			continue
		}
		p.add(block)
		p.push(len(p.blocks) - 1)
	}
	return p
}

func (p *partition) add(block []int) int {
	idx := len(p.blocks)
	p.blocks = append(p.blocks, block)
	p.pending = append(p.pending, false)
	for _, s := range block {
		p.blockOf[s] = idx
	}
	return idx
}

func (p *partition) push(block int) {
	if p.pending[block] {
		return
	}
	p.pending[block] = true
	p.work = append(p.work, block)
}

func (p *partition) pop() (int, bool) {
	if len(p.work) == 0 {
		return -1, false
	}
	last := len(p.work) - 1
	block := p.work[last]
	p.work = p.work[:last]
	p.pending[block] = false
	return block, true
}

func (p *partition) size() int {
	return len(p.blocks)
}

// split Refines every block Y that X cuts into X∩Y and Y\X. xs holds the members of x in
// ascending order. If Y was waiting on the worklist both halves wait; otherwise only the smaller
// half is queued, the intersection on a tie.
func (p *partition) split(x *bitset.BitSet, xs []int) {
	touched := make([]int, 0)
	inter := make(map[int][]int)
	for _, s := range xs {
		b, ok := p.blockOf[s]
		if !ok {
			continue
		}
		if _, seen := inter[b]; !seen {
			touched = append(touched, b)
		}
		inter[b] = append(inter[b], s)
	}

	for _, y := range touched {
		in := inter[y]
		if len(in) == len(p.blocks[y]) {
			continue
		}

		diff := make([]int, 0, len(p.blocks[y])-len(in))
		for _, s := range p.blocks[y] {
			if !x.Test(uint(s)) {
				diff = append(diff, s)
			}
		}
		p.blocks[y] = diff
		z := p.add(in)
		p.splits++

		switch {
		case p.pending[y]:
			p.push(z)
		case len(in) <= len(diff):
			p.push(z)
		default:
			p.push(y)
		}
	}
}
