package automata

// EpsilonTransitions is the outgoing data of one ε-NFA state: the states
// reachable without consuming input, and the states reachable per symbol.
type EpsilonTransitions[S comparable] struct {
	Epsilon StateSet
	Symbols map[S]StateSet
}

// EpsilonNFA is a nondeterministic automaton with epsilon moves.
type EpsilonNFA[S comparable] struct {
	initial  State
	final    StateSet
	epsilons map[State]StateSet
	moves    map[State]map[S]StateSet
}

// NewEpsilonNFA builds an ε-NFA from a copy of the given table.
func NewEpsilonNFA[S comparable](initial State, final StateSet, transitions map[State]EpsilonTransitions[S]) *EpsilonNFA[S] {
	e := &EpsilonNFA[S]{
		initial:  initial,
		final:    final.Clone(),
		epsilons: make(map[State]StateSet),
		moves:    make(map[State]map[S]StateSet),
	}
	for s, tr := range transitions {
		if len(tr.Epsilon) > 0 {
			e.epsilons[s] = tr.Epsilon.Clone()
		}
		if len(tr.Symbols) > 0 {
			nrow := make(map[S]StateSet, len(tr.Symbols))
			for sym, ts := range tr.Symbols {
				nrow[sym] = ts.Clone()
			}
			e.moves[s] = nrow
		}
	}
	return e
}

func (e *EpsilonNFA[S]) InitialState() State {
	return e.initial
}

func (e *EpsilonNFA[S]) IsFinal(s State) bool {
	return e.final.Has(s)
}

func (e *EpsilonNFA[S]) FinalStates() []State {
	return e.final.Sorted()
}

// EpsilonMoves returns the states s reaches in one epsilon move. The result
// must not be modified.
func (e *EpsilonNFA[S]) EpsilonMoves(s State) StateSet {
	return e.epsilons[s]
}

func (e *EpsilonNFA[S]) Transitions(s State, sym S) StateSet {
	return e.moves[s][sym]
}

func (e *EpsilonNFA[S]) Symbols(s State) []S {
	row := e.moves[s]
	res := make([]S, 0, len(row))
	for sym := range row {
		res = append(res, sym)
	}
	sortSymbols(res)
	return res
}

func (e *EpsilonNFA[S]) States() []State {
	ss := NewStateSet(e.initial)
	ss.AddAll(e.final)
	for s, ts := range e.epsilons {
		ss.Add(s)
		ss.AddAll(ts)
	}
	for s, row := range e.moves {
		ss.Add(s)
		for _, ts := range row {
			ss.AddAll(ts)
		}
	}
	return ss.Sorted()
}

func (e *EpsilonNFA[S]) MaximumState() State {
	m := e.initial
	for s := range e.final {
		m = maxState(m, s)
	}
	for s, ts := range e.epsilons {
		m = maxState(m, s)
		if t, ok := ts.Max(); ok {
			m = maxState(m, t)
		}
	}
	for s, row := range e.moves {
		m = maxState(m, s)
		for _, ts := range row {
			if t, ok := ts.Max(); ok {
				m = maxState(m, t)
			}
		}
	}
	return m
}

// EpsilonClosure returns set together with every state reachable from it
// through epsilon moves alone. set itself is left untouched.
func (e *EpsilonNFA[S]) EpsilonClosure(set StateSet) StateSet {
	res := set.Clone()
	e.closeOver(res)
	return res
}

// closeOver adds epsilon successors of every member in passes until a pass
// leaves the cardinality unchanged. Epsilon cycles stop growing the set
// and so terminate.
func (e *EpsilonNFA[S]) closeOver(set StateSet) {
	for {
		before := len(set)
		for _, s := range set.Sorted() {
			set.AddAll(e.epsilons[s])
		}
		if len(set) == before {
			return
		}
	}
}

// Step consumes sym from every state in from and closes the result.
func (e *EpsilonNFA[S]) Step(from StateSet, sym S) StateSet {
	res := step(e.moves, from, sym)
	e.closeOver(res)
	return res
}

func (e *EpsilonNFA[S]) Start() *EpsilonNFAExecution[S] {
	x := &EpsilonNFAExecution[S]{enfa: e, current: NewStateSet(e.initial)}
	x.NextEmptyMoves()
	return x
}

func (e *EpsilonNFA[S]) Test(input []S) bool {
	x := e.Start()
	for _, sym := range input {
		x.Next(sym)
	}
	return x.Accepting()
}

func (e *EpsilonNFA[S]) String() string {
	return enfaString(e)
}

type EpsilonNFAExecution[S comparable] struct {
	enfa    *EpsilonNFA[S]
	current StateSet
}

// Next consumes sym and then follows epsilon moves to a fixed point.
func (x *EpsilonNFAExecution[S]) Next(sym S) {
	x.current = step(x.enfa.moves, x.current, sym)
	x.NextEmptyMoves()
}

// NextEmptyMoves closes the current set under epsilon moves.
func (x *EpsilonNFAExecution[S]) NextEmptyMoves() {
	x.enfa.closeOver(x.current)
}

// CurrentStates returns the live set. The caller must not modify it.
func (x *EpsilonNFAExecution[S]) CurrentStates() StateSet {
	return x.current
}

func (x *EpsilonNFAExecution[S]) Accepting() bool {
	return x.current.Intersects(x.enfa.final)
}
