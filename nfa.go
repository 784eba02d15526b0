package automata

import (
	"errors"
	"fmt"
	"math"
)

// NFA is a nondeterministic automaton without epsilon moves.
type NFA[S comparable] struct {
	initial     State
	final       StateSet
	transitions map[State]map[S]StateSet
}

// NewNFA builds an NFA from a copy of the given table.
func NewNFA[S comparable](initial State, final StateSet, transitions map[State]map[S]StateSet) *NFA[S] {
	return &NFA[S]{
		initial:     initial,
		final:       final.Clone(),
		transitions: copyMoves(transitions),
	}
}

func copyMoves[S comparable](transitions map[State]map[S]StateSet) map[State]map[S]StateSet {
	res := make(map[State]map[S]StateSet, len(transitions))
	for s, row := range transitions {
		if len(row) == 0 {
			continue
		}
		nrow := make(map[S]StateSet, len(row))
		for sym, ts := range row {
			nrow[sym] = ts.Clone()
		}
		res[s] = nrow
	}
	return res
}

func (n *NFA[S]) InitialState() State {
	return n.initial
}

func (n *NFA[S]) IsFinal(s State) bool {
	return n.final.Has(s)
}

func (n *NFA[S]) FinalStates() []State {
	return n.final.Sorted()
}

// Transitions returns the states reachable from s by consuming sym. The
// result must not be modified.
func (n *NFA[S]) Transitions(s State, sym S) StateSet {
	return n.transitions[s][sym]
}

func (n *NFA[S]) Symbols(s State) []S {
	row := n.transitions[s]
	res := make([]S, 0, len(row))
	for sym := range row {
		res = append(res, sym)
	}
	sortSymbols(res)
	return res
}

func (n *NFA[S]) States() []State {
	ss := NewStateSet(n.initial)
	ss.AddAll(n.final)
	for s, row := range n.transitions {
		ss.Add(s)
		for _, ts := range row {
			ss.AddAll(ts)
		}
	}
	return ss.Sorted()
}

func (n *NFA[S]) MaximumState() State {
	m := n.initial
	for s := range n.final {
		m = maxState(m, s)
	}
	for s, row := range n.transitions {
		m = maxState(m, s)
		for _, ts := range row {
			if t, ok := ts.Max(); ok {
				m = maxState(m, t)
			}
		}
	}
	return m
}

// Step returns the union of the sym-moves of every state in from.
func (n *NFA[S]) Step(from StateSet, sym S) StateSet {
	return step(n.transitions, from, sym)
}

func step[S comparable](transitions map[State]map[S]StateSet, from StateSet, sym S) StateSet {
	res := make(StateSet)
	for s := range from {
		if ts, has := transitions[s][sym]; has {
			res.AddAll(ts)
		}
	}
	return res
}

func (n *NFA[S]) Start() *NFAExecution[S] {
	return &NFAExecution[S]{nfa: n, current: NewStateSet(n.initial)}
}

func (n *NFA[S]) Test(input []S) bool {
	x := n.Start()
	for _, sym := range input {
		x.Next(sym)
	}
	return x.Accepting()
}

// ErrStateOverflow is returned when renumbering would push a state past
// the largest State value.
var ErrStateOverflow = errors.New("state id overflow")

// Shift returns a copy of n with every state increased by offset. It fails
// with ErrStateOverflow instead of wrapping around.
func (n *NFA[S]) Shift(offset State) (*NFA[S], error) {
	if m := n.MaximumState(); m > math.MaxUint64-offset {
		return nil, fmt.Errorf("%w: shifting state %d by %d", ErrStateOverflow, m, offset)
	}
	return n.renumber(func(s State) State { return s + offset }), nil
}

// Compact returns a copy of n whose states are renumbered 0, 1, 2, ...
// keeping their relative order.
func (n *NFA[S]) Compact() *NFA[S] {
	ids := make(map[State]State)
	for i, s := range n.States() {
		ids[s] = State(i)
	}
	return n.renumber(func(s State) State { return ids[s] })
}

func (n *NFA[S]) renumber(f func(State) State) *NFA[S] {
	mapSet := func(ss StateSet) StateSet {
		res := make(StateSet, len(ss))
		for s := range ss {
			res[f(s)] = struct{}{}
		}
		return res
	}
	transitions := make(map[State]map[S]StateSet, len(n.transitions))
	for s, row := range n.transitions {
		nrow := make(map[S]StateSet, len(row))
		for sym, ts := range row {
			nrow[sym] = mapSet(ts)
		}
		transitions[f(s)] = nrow
	}
	return &NFA[S]{
		initial:     f(n.initial),
		final:       mapSet(n.final),
		transitions: transitions,
	}
}

func (n *NFA[S]) String() string {
	return nfaString(n)
}

// NFAExecution tracks the set of states an NFA can be in. An empty set is
// a plain rejecting condition, not an error.
type NFAExecution[S comparable] struct {
	nfa     *NFA[S]
	current StateSet
}

// Next replaces the current set with the states reachable on sym.
func (x *NFAExecution[S]) Next(sym S) {
	x.current = step(x.nfa.transitions, x.current, sym)
}

// CurrentStates returns the live set. The caller must not modify it.
func (x *NFAExecution[S]) CurrentStates() StateSet {
	return x.current
}

func (x *NFAExecution[S]) Accepting() bool {
	return x.current.Intersects(x.nfa.final)
}
