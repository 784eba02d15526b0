package definition

import (
	"fmt"

	"github.com/dtromb/automata"
)

// Machine is a built document: something that tests words and can replay
// a word one symbol at a time.
type Machine interface {
	automata.Recognizer[string]
	Kind() Kind
	Trace(input []string) *Trace
	// String dumps the automaton in the automata package's text format.
	String() string
}

// Trace records the state(s) of an execution after each consumed symbol.
type Trace struct {
	Start    []automata.State
	Steps    []TraceStep
	Accepted bool
}

type TraceStep struct {
	Symbol string
	States []automata.State
	// Err is set once a DFA execution hits unrecognized input.
	Err error
}

// Machine builds the automaton the document describes.
func (doc *Document) Machine() (Machine, error) {
	switch doc.Kind {
	case KindDFA:
		d, err := doc.DFA()
		if err != nil {
			return nil, err
		}
		return &dfaMachine{d}, nil
	case KindNFA:
		n, err := doc.NFA()
		if err != nil {
			return nil, err
		}
		return &nfaMachine{n}, nil
	case KindEpsilonNFA:
		e, err := doc.EpsilonNFA()
		if err != nil {
			return nil, err
		}
		return &enfaMachine{e}, nil
	}
	return nil, &Error{Path: "kind", Err: fmt.Errorf("%w %q", ErrUnknownKind, doc.Kind)}
}

type dfaMachine struct {
	*automata.DFA[string]
}

func (m *dfaMachine) Kind() Kind { return KindDFA }

func (m *dfaMachine) Trace(input []string) *Trace {
	x := m.Start()
	tr := &Trace{Start: []automata.State{m.InitialState()}}
	for _, sym := range input {
		step := TraceStep{Symbol: sym}
		if err := x.Next(sym); err != nil {
			step.Err = err
		} else {
			s, _ := x.CurrentState()
			step.States = []automata.State{s}
		}
		tr.Steps = append(tr.Steps, step)
	}
	tr.Accepted = x.Accepting()
	return tr
}

type nfaMachine struct {
	*automata.NFA[string]
}

func (m *nfaMachine) Kind() Kind { return KindNFA }

func (m *nfaMachine) Trace(input []string) *Trace {
	x := m.Start()
	tr := &Trace{Start: x.CurrentStates().Sorted()}
	for _, sym := range input {
		x.Next(sym)
		tr.Steps = append(tr.Steps, TraceStep{Symbol: sym, States: x.CurrentStates().Sorted()})
	}
	tr.Accepted = x.Accepting()
	return tr
}

type enfaMachine struct {
	*automata.EpsilonNFA[string]
}

func (m *enfaMachine) Kind() Kind { return KindEpsilonNFA }

func (m *enfaMachine) Trace(input []string) *Trace {
	x := m.Start()
	tr := &Trace{Start: x.CurrentStates().Sorted()}
	for _, sym := range input {
		x.Next(sym)
		tr.Steps = append(tr.Steps, TraceStep{Symbol: sym, States: x.CurrentStates().Sorted()})
	}
	tr.Accepted = x.Accepting()
	return tr
}

// CaseResult is the outcome of one accept or reject word.
type CaseResult struct {
	Input Word
	Want  bool
	Got   bool
}

func (r CaseResult) Passed() bool {
	return r.Want == r.Got
}

type Report struct {
	Name    string
	Results []CaseResult
}

func (r *Report) Failures() []CaseResult {
	var res []CaseResult
	for _, c := range r.Results {
		if !c.Passed() {
			res = append(res, c)
		}
	}
	return res
}

func (r *Report) Passed() bool {
	return len(r.Failures()) == 0
}

// Check runs the document's accept and reject words against m.
func (doc *Document) Check(m automata.Recognizer[string]) *Report {
	rep := &Report{Name: doc.Name}
	for _, w := range doc.Accept {
		rep.Results = append(rep.Results, CaseResult{Input: w, Want: true, Got: m.Test(w)})
	}
	for _, w := range doc.Reject {
		rep.Results = append(rep.Results, CaseResult{Input: w, Want: false, Got: m.Test(w)})
	}
	return rep
}
