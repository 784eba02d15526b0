package automata

// Compilation is the result of a subset construction: the DFA together
// with the bookkeeping that relates its states to the NFA's.
type Compilation[S comparable] struct {
	dfa        *DFA[S]
	subsets    []StateSet
	containing map[State]StateSet
}

func (c *Compilation[S]) DFA() *DFA[S] {
	return c.dfa
}

// Subset returns the NFA states merged into DFA state d, or nil if d is
// not a state of the compiled DFA.
func (c *Compilation[S]) Subset(d State) StateSet {
	if d >= State(len(c.subsets)) {
		return nil
	}
	return c.subsets[d].Clone()
}

// Containing returns the DFA states whose subset includes NFA state q.
func (c *Compilation[S]) Containing(q State) StateSet {
	return c.containing[q].Clone()
}

func (c *Compilation[S]) NumStates() int {
	return len(c.subsets)
}

// ToDFA compiles n into a DFA accepting the same language.
func ToDFA[S comparable](n *NFA[S]) *DFA[S] {
	return Compile(n).DFA()
}

type subsetIndex struct {
	ids        map[string]State
	subsets    []StateSet
	containing map[State]StateSet
}

// register returns the DFA state of subset, allocating the next id the
// first time an equal subset is seen.
func (si *subsetIndex) register(subset StateSet) (State, bool) {
	key := subset.Key()
	if id, has := si.ids[key]; has {
		return id, false
	}
	id := State(len(si.subsets))
	si.ids[key] = id
	si.subsets = append(si.subsets, subset)
	for q := range subset {
		m, has := si.containing[q]
		if !has {
			m = make(StateSet)
			si.containing[q] = m
		}
		m.Add(id)
	}
	return id, true
}

// Compile runs the subset construction over the subsets reachable from
// {initial}. DFA states are numbered in discovery order; the initial
// subset is always 0.
func Compile[S comparable](n *NFA[S]) *Compilation[S] {
	si := &subsetIndex{
		ids:        make(map[string]State),
		containing: make(map[State]StateSet),
	}
	si.register(NewStateSet(n.initial))

	transitions := make(map[State]map[S]State)
	for cur := 0; cur < len(si.subsets); cur++ {
		subset := si.subsets[cur]
		moves := make(map[S]StateSet)
		var symbols []S
		for _, q := range subset.Sorted() {
			for sym, ts := range n.transitions[q] {
				m, has := moves[sym]
				if !has {
					m = make(StateSet)
					moves[sym] = m
					symbols = append(symbols, sym)
				}
				m.AddAll(ts)
			}
		}
		sortSymbols(symbols)
		for _, sym := range symbols {
			dst := moves[sym]
			if dst.Len() == 0 {
				continue
			}
			id, _ := si.register(dst)
			row, has := transitions[State(cur)]
			if !has {
				row = make(map[S]State)
				transitions[State(cur)] = row
			}
			row[sym] = id
		}
	}

	final := make(StateSet)
	for f := range n.final {
		final.AddAll(si.containing[f])
	}

	return &Compilation[S]{
		dfa: &DFA[S]{
			initial:     0,
			final:       final,
			transitions: transitions,
		},
		subsets:    si.subsets,
		containing: si.containing,
	}
}
