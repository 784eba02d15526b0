package automata

// RemoveEpsilon returns an NFA over the same states accepting the same
// language as e. The moves of q on a are the closed moves of every state
// in the closure of q; q is final when its closure holds a final state.
func RemoveEpsilon[S comparable](e *EpsilonNFA[S]) *NFA[S] {
	closures := make(map[State]StateSet)
	closure := func(q State) StateSet {
		if c, has := closures[q]; has {
			return c
		}
		c := e.EpsilonClosure(NewStateSet(q))
		closures[q] = c
		return c
	}

	final := make(StateSet)
	transitions := make(map[State]map[S]StateSet)
	for _, q := range e.States() {
		cq := closure(q)
		if cq.Intersects(e.final) {
			final.Add(q)
		}
		row := make(map[S]StateSet)
		for p := range cq {
			for sym, ts := range e.moves[p] {
				dst, has := row[sym]
				if !has {
					dst = make(StateSet)
					row[sym] = dst
				}
				for t := range ts {
					dst.AddAll(closure(t))
				}
			}
		}
		if len(row) > 0 {
			transitions[q] = row
		}
	}
	return &NFA[S]{
		initial:     e.initial,
		final:       final,
		transitions: transitions,
	}
}

// CompileEpsilon compiles an ε-NFA to an equivalent DFA.
func CompileEpsilon[S comparable](e *EpsilonNFA[S]) *DFA[S] {
	return ToDFA(RemoveEpsilon(e))
}
