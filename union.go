package automata

import "math"

// Union returns an NFA accepting the words accepted by a or b. The states
// of b are renumbered past a.MaximumState(), and a fresh initial state
// taking the moves of both initial states is added above all of them.
// When those ids would not fit in a State, both operands are compacted
// first.
func Union[S comparable](a, b *NFA[S]) *NFA[S] {
	if !unionFits(a.MaximumState(), b.MaximumState()) {
		a, b = a.Compact(), b.Compact()
	}
	offset := a.MaximumState() + 1
	b = b.renumber(func(s State) State { return s + offset })
	initial := b.MaximumState() + 1

	transitions := copyMoves(a.transitions)
	for s, row := range b.transitions {
		transitions[s] = row
	}
	row := make(map[S]StateSet)
	for _, from := range []*NFA[S]{a, b} {
		for sym, ts := range from.transitions[from.initial] {
			dst, has := row[sym]
			if !has {
				dst = make(StateSet)
				row[sym] = dst
			}
			dst.AddAll(ts)
		}
	}
	if len(row) > 0 {
		transitions[initial] = row
	}

	final := a.final.Clone()
	final.AddAll(b.final)
	if a.final.Has(a.initial) || b.final.Has(b.initial) {
		final.Add(initial)
	}
	return &NFA[S]{
		initial:     initial,
		final:       final,
		transitions: transitions,
	}
}

// unionFits reports whether am+1+bm+1 is a valid State.
func unionFits(am, bm State) bool {
	return am <= math.MaxUint64-2 && bm <= math.MaxUint64-2-am
}
