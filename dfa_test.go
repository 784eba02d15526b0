package automata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDfaEndsInOne(t *testing.T) {
	d := endsInOneDFA()
	for _, tc := range endsInOneCases {
		assert.Equal(t, tc.accept, d.Test(tc.input), "input %v", tc.input)
	}
}

func TestDfaEmptyInput(t *testing.T) {
	d := NewDFA(3, NewStateSet(3), map[State]map[string]State{})
	assert.True(t, d.Test(nil))

	d = NewDFA(3, NewStateSet(4), map[State]map[string]State{3: {}})
	assert.False(t, d.Test(nil))
}

func TestDfaExecution(t *testing.T) {
	d := endsInOneDFA()
	x := d.Start()
	s, err := x.CurrentState()
	require.NoError(t, err)
	assert.Equal(t, State(0), s)

	require.NoError(t, x.Next(false))
	s, err = x.CurrentState()
	require.NoError(t, err)
	assert.Equal(t, State(1), s)
	assert.False(t, x.Accepting())

	require.NoError(t, x.Next(true))
	s, _ = x.CurrentState()
	assert.Equal(t, State(2), s)
	assert.True(t, x.Accepting())
	assert.Equal(t, 2, x.Consumed())
}

func TestDfaUnrecognizedInputIsSticky(t *testing.T) {
	d := endsInOneDFA()
	x := d.Start()
	require.NoError(t, x.Next(true))

	// State 2 has no outgoing transitions.
	err := x.Next(false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrecognizedInput))

	var uie *UnrecognizedInputError[bool]
	require.True(t, errors.As(err, &uie))
	assert.Equal(t, State(2), uie.State)
	assert.Equal(t, false, uie.Symbol)
	assert.Equal(t, 1, uie.Position)

	for _, sym := range []bool{true, false, true} {
		assert.Same(t, err, x.Next(sym))
		_, cerr := x.CurrentState()
		assert.Same(t, err, cerr)
	}
	assert.False(t, x.Accepting())
	assert.Equal(t, 1, x.Consumed())
}

func TestDfaTestRejectsOnError(t *testing.T) {
	d := NewDFA(0, NewStateSet(0), map[State]map[rune]State{
		0: {'a': 0},
	})
	assert.True(t, d.Test([]rune("aaa")))
	assert.False(t, d.Test([]rune("aab")))
}

func TestDfaMaximumState(t *testing.T) {
	cases := []struct {
		dfa *DFA[rune]
		max State
	}{
		{NewDFA[rune](7, nil, nil), 7},
		{NewDFA[rune](0, NewStateSet(12), nil), 12},
		{NewDFA(0, NewStateSet(1), map[State]map[rune]State{9: {'a': 1}}), 9},
		{NewDFA(0, NewStateSet(1), map[State]map[rune]State{2: {'a': 40}}), 40},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.max, tc.dfa.MaximumState())
	}
	assert.Equal(t, State(2), endsInOneDFA().MaximumState())
}

func TestDfaIsImmutable(t *testing.T) {
	table := map[State]map[rune]State{0: {'a': 1}}
	final := NewStateSet(1)
	d := NewDFA(0, final, table)
	table[0]['b'] = 1
	final.Add(0)
	assert.False(t, d.Test([]rune("b")))
	assert.False(t, d.Test(nil))
	assert.True(t, d.Test([]rune("a")))
}

func TestDfaAccessors(t *testing.T) {
	d := endsInOneDFA()
	assert.Equal(t, []State{0, 1, 2}, d.States())
	assert.Equal(t, []bool{false, true}, d.Symbols(0))
	assert.Empty(t, d.Symbols(2))
	assert.Equal(t, []State{2}, d.FinalStates())
	tr, ok := d.Transition(1, true)
	assert.True(t, ok)
	assert.Equal(t, State(2), tr)
	_, ok = d.Transition(2, true)
	assert.False(t, ok)
}

func TestDfaAsNfa(t *testing.T) {
	d := endsInOneDFA()
	n := d.NFA()
	for _, tc := range endsInOneCases {
		assert.Equal(t, d.Test(tc.input), n.Test(tc.input), "input %v", tc.input)
	}
}

func TestRecognizers(t *testing.T) {
	e := NewEpsilonNFA(0, NewStateSet(2), map[State]EpsilonTransitions[bool]{
		0: {Symbols: map[bool]StateSet{false: NewStateSet(1), true: NewStateSet(2)}},
		1: {Epsilon: NewStateSet(0)},
	})
	rs := []Recognizer[bool]{endsInOneDFA(), endsInOneNFA(), e}
	for _, r := range rs {
		assert.True(t, r.Test([]bool{false, true}))
		assert.Equal(t, State(2), r.MaximumState())
	}
}
