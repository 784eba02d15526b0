package automata

import (
	"fmt"
	"io"
	"strings"
)

// WriteDfa writes one block per state, final states marked * and the
// initial state marked <:
//
//	(0) <
//	  'false' -> (1)
//	  'true' -> (2)
//	(2)*
func WriteDfa[S comparable](d *DFA[S], out io.Writer) error {
	for _, s := range d.States() {
		if err := writeHeader(out, "(%d)", s, d.IsFinal(s), s == d.initial); err != nil {
			return err
		}
		for _, sym := range d.Symbols(s) {
			t, _ := d.Transition(s, sym)
			if _, err := fmt.Fprintf(out, "  '%v' -> (%d)\n", sym, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteNfa writes one block per state, targets as [a,b,...].
func WriteNfa[S comparable](n *NFA[S], out io.Writer) error {
	for _, s := range n.States() {
		if err := writeHeader(out, "[[%d]]", s, n.IsFinal(s), s == n.initial); err != nil {
			return err
		}
		for _, sym := range n.Symbols(s) {
			if _, err := fmt.Fprintf(out, "  '%v' -> %s\n", sym, targets(n.Transitions(s, sym))); err != nil {
				return err
			}
		}
	}
	return nil
}

func WriteEpsilonNfa[S comparable](e *EpsilonNFA[S], out io.Writer) error {
	for _, s := range e.States() {
		if err := writeHeader(out, "[[%d]]", s, e.IsFinal(s), s == e.initial); err != nil {
			return err
		}
		for _, sym := range e.Symbols(s) {
			if _, err := fmt.Fprintf(out, "  '%v' -> %s\n", sym, targets(e.Transitions(s, sym))); err != nil {
				return err
			}
		}
		if eps := e.EpsilonMoves(s); eps.Len() > 0 {
			if _, err := fmt.Fprintf(out, "  `e -> %s\n", targets(eps)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeHeader(out io.Writer, format string, s State, final, initial bool) error {
	var suffix string
	if final {
		suffix += "*"
	}
	if initial {
		suffix += " <"
	}
	_, err := fmt.Fprintf(out, format+"%s\n", s, suffix)
	return err
}

func targets(ts StateSet) string {
	return "[" + ts.Key() + "]"
}

func dfaString[S comparable](d *DFA[S]) string {
	var sb strings.Builder
	WriteDfa(d, &sb)
	return sb.String()
}

func nfaString[S comparable](n *NFA[S]) string {
	var sb strings.Builder
	WriteNfa(n, &sb)
	return sb.String()
}

func enfaString[S comparable](e *EpsilonNFA[S]) string {
	var sb strings.Builder
	WriteEpsilonNfa(e, &sb)
	return sb.String()
}
