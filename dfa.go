package automata

import (
	"errors"
	"fmt"
)

// Recognizer is the acceptance surface shared by every automaton kind.
type Recognizer[S comparable] interface {
	Test(input []S) bool
	MaximumState() State
}

var ErrUnrecognizedInput = errors.New("unrecognized input")

// UnrecognizedInputError is the terminal condition of a DFA execution that
// was fed a symbol its current state has no transition for.
type UnrecognizedInputError[S comparable] struct {
	State    State
	Symbol   S
	Position int
}

func (e *UnrecognizedInputError[S]) Error() string {
	return fmt.Sprintf("unrecognized input %v at position %d in state %d", e.Symbol, e.Position, e.State)
}

func (e *UnrecognizedInputError[S]) Unwrap() error {
	return ErrUnrecognizedInput
}

// DFA is a deterministic automaton. A state absent from the transition
// table, or a symbol absent from a state's row, is an implicit
// non-accepting sink.
type DFA[S comparable] struct {
	initial     State
	final       StateSet
	transitions map[State]map[S]State
}

// NewDFA builds a DFA from a copy of the given table.
func NewDFA[S comparable](initial State, final StateSet, transitions map[State]map[S]State) *DFA[S] {
	d := &DFA[S]{
		initial:     initial,
		final:       final.Clone(),
		transitions: make(map[State]map[S]State, len(transitions)),
	}
	for s, row := range transitions {
		if len(row) == 0 {
			continue
		}
		nrow := make(map[S]State, len(row))
		for sym, t := range row {
			nrow[sym] = t
		}
		d.transitions[s] = nrow
	}
	return d
}

func (d *DFA[S]) InitialState() State {
	return d.initial
}

func (d *DFA[S]) IsFinal(s State) bool {
	return d.final.Has(s)
}

func (d *DFA[S]) FinalStates() []State {
	return d.final.Sorted()
}

func (d *DFA[S]) Transition(s State, sym S) (State, bool) {
	t, has := d.transitions[s][sym]
	return t, has
}

// Symbols returns the symbols state s has a transition for, in symbol order.
func (d *DFA[S]) Symbols(s State) []S {
	row := d.transitions[s]
	res := make([]S, 0, len(row))
	for sym := range row {
		res = append(res, sym)
	}
	sortSymbols(res)
	return res
}

// States returns every state mentioned by the automaton, ascending.
func (d *DFA[S]) States() []State {
	ss := NewStateSet(d.initial)
	ss.AddAll(d.final)
	for s, row := range d.transitions {
		ss.Add(s)
		for _, t := range row {
			ss.Add(t)
		}
	}
	return ss.Sorted()
}

func (d *DFA[S]) MaximumState() State {
	m := d.initial
	for s := range d.final {
		m = maxState(m, s)
	}
	for s, row := range d.transitions {
		m = maxState(m, s)
		for _, t := range row {
			m = maxState(m, t)
		}
	}
	return m
}

func (d *DFA[S]) Start() *DFAExecution[S] {
	return &DFAExecution[S]{dfa: d, current: d.initial}
}

// Test reports whether the whole input drives the automaton into a final
// state. Unrecognized input is a rejection.
func (d *DFA[S]) Test(input []S) bool {
	x := d.Start()
	for _, sym := range input {
		if x.Next(sym) != nil {
			return false
		}
	}
	return x.Accepting()
}

// NFA returns the same automaton with singleton target sets.
func (d *DFA[S]) NFA() *NFA[S] {
	transitions := make(map[State]map[S]StateSet, len(d.transitions))
	for s, row := range d.transitions {
		nrow := make(map[S]StateSet, len(row))
		for sym, t := range row {
			nrow[sym] = NewStateSet(t)
		}
		transitions[s] = nrow
	}
	return &NFA[S]{
		initial:     d.initial,
		final:       d.final.Clone(),
		transitions: transitions,
	}
}

func (d *DFA[S]) String() string {
	return dfaString(d)
}

// DFAExecution drives a DFA one symbol at a time. Once an unrecognized
// symbol is seen the execution stays in that error for good.
type DFAExecution[S comparable] struct {
	dfa      *DFA[S]
	current  State
	consumed int
	err      error
}

// Next consumes sym. It returns the execution's error, which is sticky.
func (x *DFAExecution[S]) Next(sym S) error {
	if x.err != nil {
		return x.err
	}
	t, has := x.dfa.transitions[x.current][sym]
	if !has {
		x.err = &UnrecognizedInputError[S]{
			State:    x.current,
			Symbol:   sym,
			Position: x.consumed,
		}
		return x.err
	}
	x.current = t
	x.consumed++
	return nil
}

func (x *DFAExecution[S]) CurrentState() (State, error) {
	if x.err != nil {
		return 0, x.err
	}
	return x.current, nil
}

// Accepting reports whether the execution is error free and in a final state.
func (x *DFAExecution[S]) Accepting() bool {
	return x.err == nil && x.dfa.final.Has(x.current)
}

// Consumed is the number of symbols successfully consumed.
func (x *DFAExecution[S]) Consumed() int {
	return x.consumed
}
