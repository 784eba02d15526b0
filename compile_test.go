package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEndsInOne(t *testing.T) {
	n := endsInOneNFA()
	d := ToDFA(n)
	for _, tc := range endsInOneCases {
		assert.Equal(t, tc.accept, d.Test(tc.input), "input %v", tc.input)
		assert.Equal(t, n.Test(tc.input), d.Test(tc.input), "input %v", tc.input)
	}
}

func TestCompilePalindrome(t *testing.T) {
	n := palindromeNFA()
	d := ToDFA(n)
	for _, tc := range palindromeCases {
		assert.Equal(t, tc.accept, d.Test(tc.input), "input %v", tc.input)
	}
}

func TestCompileNumbering(t *testing.T) {
	c := Compile(endsInOneNFA())
	d := c.DFA()
	require.Equal(t, 3, c.NumStates())
	assert.Equal(t, State(0), d.InitialState())
	assert.True(t, c.Subset(0).Equals(NewStateSet(0)))
	// Symbols are visited false before true.
	assert.True(t, c.Subset(1).Equals(NewStateSet(1)))
	assert.True(t, c.Subset(2).Equals(NewStateSet(2)))
	assert.Nil(t, c.Subset(3))
	assert.Equal(t, []State{2}, d.FinalStates())

	s, ok := d.Transition(1, true)
	require.True(t, ok)
	assert.Equal(t, State(2), s)
	_, ok = d.Transition(2, false)
	assert.False(t, ok)
}

func TestCompileDeduplicatesSubsets(t *testing.T) {
	// 0 -a-> {1,2}, 0 -b-> {3}; 3 -c-> {1,2}; 1 -b-> {2,1}.
	n := NewNFA(0, NewStateSet(2), map[State]map[string]StateSet{
		0: {"a": NewStateSet(1, 2), "b": NewStateSet(3)},
		3: {"c": NewStateSet(2, 1)},
		1: {"b": NewStateSet(2, 1)},
	})
	c := Compile(n)
	d := c.DFA()
	assert.Equal(t, 3, c.NumStates())

	viaA, ok := d.Transition(0, "a")
	require.True(t, ok)
	viaB, ok := d.Transition(0, "b")
	require.True(t, ok)
	viaBC, ok := d.Transition(viaB, "c")
	require.True(t, ok)
	assert.Equal(t, viaA, viaBC)
	loop, ok := d.Transition(viaA, "b")
	require.True(t, ok)
	assert.Equal(t, viaA, loop)
	assert.True(t, c.Subset(viaA).Equals(NewStateSet(1, 2)))
	assert.True(t, d.IsFinal(viaA))
	assert.False(t, d.IsFinal(viaB))
}

func TestCompileFinalStatesFollowMembership(t *testing.T) {
	c := Compile(palindromeNFA())
	d := c.DFA()
	for _, f := range []State{4, 10} {
		for ds := range c.Containing(f) {
			assert.True(t, d.IsFinal(ds))
			assert.True(t, c.Subset(ds).Has(f))
		}
	}
	for _, ds := range d.States() {
		assert.Equal(t, c.Subset(ds).Intersects(NewStateSet(4, 10)), d.IsFinal(ds))
	}
	assert.True(t, c.Containing(11).Equals(NewStateSet(1)))
	assert.True(t, c.Subset(1).Equals(NewStateSet(1, 11)))
}

func TestCompileInitialFinal(t *testing.T) {
	n := NewNFA(5, NewStateSet(5), map[State]map[rune]StateSet{})
	d := ToDFA(n)
	assert.True(t, d.Test(nil))
	assert.False(t, d.Test([]rune("x")))
	assert.Equal(t, State(0), d.MaximumState())
}

func TestCompileSkipsEmptyTargets(t *testing.T) {
	n := NewNFA(0, NewStateSet(1), map[State]map[rune]StateSet{
		0: {'a': NewStateSet(), 'b': NewStateSet(1)},
	})
	d := ToDFA(n)
	_, ok := d.Transition(0, 'a')
	assert.False(t, ok)
	assert.True(t, d.Test([]rune("b")))
	assert.Equal(t, []rune{'b'}, d.Symbols(0))
}

func TestCompileEpsilon(t *testing.T) {
	for _, fx := range []struct {
		enfa  *EpsilonNFA[bool]
		cases []languageCase
	}{
		{allOnesENFA(), allOnesCases},
		{alternationENFA(), alternationCases},
	} {
		d := CompileEpsilon(fx.enfa)
		for _, tc := range fx.cases {
			assert.Equal(t, tc.accept, d.Test(tc.input), "input %v", tc.input)
		}
	}
}
