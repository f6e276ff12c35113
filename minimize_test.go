package dfa

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimize(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		d := scenario(t)
		m := Minimize(d)

		assert.Equal(t, 3, m.NumStates())
		assert.Equal(t, "start=0 final=[2] 0-97->1 1-98->2 2-97->2 2-98->2", m.String())
		assert.True(t, Run(m, "ab"))
		assert.False(t, Run(m, "a"))
		assert.False(t, Run(m, "ba"))
		assertDistinguishable(t, m)
	})

	t.Run("EquivalentStatesCollapse", func(t *testing.T) {
		d := build(t, 0, []int{3},
			Edge{0, 1, 'a'},
			Edge{0, 2, 'b'},
			Edge{1, 3, 'a'},
			Edge{2, 3, 'a'},
		)
		m := Minimize(d)

		assert.Equal(t, 3, m.NumStates())
		assert.Equal(t, m.Step(0, 'a'), m.Step(0, 'b'))
		assertEquivalent(t, d, m, 4)
	})

	t.Run("FinalStatesCollapse", func(t *testing.T) {
		d := build(t, 0, []int{1, 2},
			Edge{0, 1, 'a'},
			Edge{0, 2, 'b'},
			Edge{1, 1, 'a'},
			Edge{2, 2, 'a'},
		)
		m := Minimize(d)
		assert.Equal(t, 2, m.NumStates())
		assert.Equal(t, []int{1}, m.FinalStates())
	})

	t.Run("DropsDeadAndUnreachable", func(t *testing.T) {
		d := build(t, 0, []int{1},
			Edge{0, 1, 'a'},
			Edge{0, 2, 'b'},
			Edge{2, 2, 'b'},
			Edge{5, 1, 'a'},
		)
		m := Minimize(d)
		assert.Equal(t, "start=0 final=[1] 0-97->1", m.String())
	})

	t.Run("NoFinalStates", func(t *testing.T) {
		m := Minimize(build(t, 0, nil, Edge{0, 1, 'a'}, Edge{1, 0, 'b'}))
		assert.Equal(t, 1, m.NumStates())
		assert.Equal(t, 0, m.Start())
		assert.Empty(t, m.AllEdges())
		assert.True(t, IsEmpty(m))
	})

	t.Run("NoStart", func(t *testing.T) {
		d := NewDFA()
		require.NoError(t, d.MarkFinal(1))
		require.NoError(t, d.AddEdge(0, 1, 'a'))

		m := Minimize(d)
		assert.Equal(t, 1, m.NumStates())
		assert.False(t, Run(m, ""))
		assert.False(t, Run(m, "a"))
	})

	t.Run("EmptyAlphabet", func(t *testing.T) {
		m := Minimize(defaultAutomata.MakeEmptyString())
		assert.Equal(t, "start=0 final=[0]", m.String())
	})

	t.Run("ReceiverUnchanged", func(t *testing.T) {
		d := scenario(t)
		before := d.String()
		preds := d.Predecessors(2)

		Minimize(d)
		assert.Equal(t, before, d.String())
		assert.Equal(t, preds, d.Predecessors(2))
	})

	t.Run("ModuloCounter", func(t *testing.T) {
		// Counts a's modulo 12 but only accepts multiples of 3.
		d := NewDFA()
		require.NoError(t, d.SetStart(0))
		for i := 0; i < 12; i++ {
			require.NoError(t, d.AddEdge(i, (i+1)%12, 'a'))
			require.NoError(t, d.AddEdge(i, i, 'b'))
			if i%3 == 0 {
				require.NoError(t, d.MarkFinal(i))
			}
		}
		m := Minimize(d)
		assert.Equal(t, 3, m.NumStates())
		assertEquivalent(t, d, m, 8)
	})

	t.Run("CanonicalNumbering", func(t *testing.T) {
		// Same language, different state numbers.
		a := build(t, 0, []int{2}, Edge{0, 1, 'x'}, Edge{1, 2, 'y'})
		b := build(t, 9, []int{4, 6},
			Edge{9, 7, 'x'},
			Edge{7, 4, 'y'},
			Edge{9, 3, 'x'}, // overwrites 9 -x-> 7
			Edge{3, 6, 'y'},
		)
		assert.Equal(t, Minimize(a).String(), Minimize(b).String())
	})
}

func TestMinimize_StaleReverseLinks(t *testing.T) {
	// 5 first leads to 1 and on to the final state 2, then its a edge is redirected to the
	// dead end 6. The predecessor link 1 <- 5 stays behind unless WithExactReverse is set.
	edges := []Edge{{0, 2, 'c'}, {0, 5, 'd'}, {5, 1, 'a'}, {1, 2, 'b'}, {5, 6, 'a'}}
	conservative := build(t, 0, []int{2}, edges...)

	exact := NewDFA(WithExactReverse())
	require.NoError(t, exact.SetStart(0))
	require.NoError(t, exact.MarkFinal(2))
	for _, e := range edges {
		require.NoError(t, exact.AddEdge(e.From, e.To, e.Label))
	}

	m := Minimize(conservative)
	assert.Equal(t, "start=0 final=[1] 0-99->1 0-100->2", m.String())
	assertEquivalent(t, conservative, m, 4)

	// The derived automaton has an exact reverse relation, so the dead state goes away.
	assert.Equal(t, 2, Minimize(m).NumStates())
	assert.Equal(t, 2, Minimize(exact).NumStates())
	assert.Equal(t, Minimize(m).String(), Minimize(exact).String())
}

func TestMinimize_Random(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	letters := []int{'a', 'b', 'c'}

	for i := 0; i < 200; i++ {
		n := 1 + r.Intn(7)
		seed := r.Int63()

		t.Run(fmt.Sprintf("dfa-%d", i), func(t *testing.T) {
			d := randomDFA(rand.New(rand.NewSource(seed)), n, letters)
			before := d.String()
			m := Minimize(d)

			assert.Equal(t, before, d.String(), "receiver must not change")
			assertEquivalent(t, d, m, 6)
			assertDistinguishable(t, m)
			assert.LessOrEqual(t, m.NumStates(), max(int(ValidStates(d).Count()), 1))
			assertEquivalent(t, d, Minimize(m), 6)
			assertEquivalent(t, d, RemoveDeadStates(d), 6)
		})

		t.Run(fmt.Sprintf("exact-%d", i), func(t *testing.T) {
			d := randomDFA(rand.New(rand.NewSource(seed)), n, letters, WithExactReverse())
			m := Minimize(d)

			assertEquivalent(t, d, m, 6)
			assertDistinguishable(t, m)
			if !IsEmpty(m) {
				assertAlive(t, m)
			}

			mm := Minimize(m)
			assert.Equal(t, m.NumStates(), mm.NumStates())
			assert.Equal(t, m.String(), mm.String())
		})
	}
}

func randomDFA(r *rand.Rand, n int, letters []int, opts ...Option) *DFA {
	d := NewDFA(opts...)
	_ = d.SetStart(0)
	for s := 0; s < n; s++ {
		if r.Intn(3) == 0 {
			_ = d.MarkFinal(s)
		}
		for _, l := range letters {
			if r.Intn(10) < 7 {
				_ = d.AddEdge(s, r.Intn(n), l)
			}
		}
	}
	// A few overwrites to leave stale predecessor links behind.
	for i := 0; i < n/2; i++ {
		_ = d.AddEdge(r.Intn(n), r.Intn(n), letters[r.Intn(len(letters))])
	}
	return d
}

// assertAlive Checks that some word is accepted from every state of d.
func assertAlive(t *testing.T, d *DFA) {
	t.Helper()
	states := d.States()
	candidates := words(d.Alphabet(), len(states))
	for _, s := range states {
		found := false
		for _, w := range candidates {
			if acceptsFrom(d, s, w) {
				found = true
				break
			}
		}
		assert.Truef(t, found, "state %d is dead in %v", s, d)
	}
}

func assertEquivalent(t *testing.T, want, got *DFA, maxLen int) {
	t.Helper()
	letters := want.Alphabet()
	for _, w := range words(letters, maxLen) {
		if Accepts(want, w) != Accepts(got, w) {
			t.Errorf("word %q: want %v, got %v\nwant: %v\ngot:  %v",
				string(runes(w)), Accepts(want, w), Accepts(got, w), want, got)
			return
		}
	}
}

// assertDistinguishable Checks that every pair of states of d is told apart by some word.
func assertDistinguishable(t *testing.T, d *DFA) {
	t.Helper()
	states := d.States()
	candidates := words(d.Alphabet(), len(states))
	for i, p := range states {
		for _, q := range states[i+1:] {
			found := false
			for _, w := range candidates {
				if acceptsFrom(d, p, w) != acceptsFrom(d, q, w) {
					found = true
					break
				}
			}
			assert.Truef(t, found, "states %d and %d are equivalent in %v", p, q, d)
		}
	}
}
