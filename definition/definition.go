// Package definition reads and writes automata over string symbols as YAML
// documents, together with the words they are expected to accept and
// reject.
//
// A document looks like:
//
//	name: ends-in-one
//	kind: nfa
//	initial: 0
//	final: [2]
//	transitions:
//	  0: {"0": [1], "1": [2]}
//	  1: {"0": [1], "1": [2]}
//	accept: [["1"], ["0", "1"]]
//	reject: [[], ["0"]]
//
// A transition target may be a single state or a list of states. Kind dfa
// requires exactly one target per symbol; kind enfa additionally takes an
// epsilon map from state to targets.
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dtromb/automata"
	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindDFA        Kind = "dfa"
	KindNFA        Kind = "nfa"
	KindEpsilonNFA Kind = "enfa"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDFA, KindNFA, KindEpsilonNFA:
		return true
	}
	return false
}

// Targets is the destination list of one transition.
type Targets []automata.State

func (t *Targets) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s automata.State
		if err := node.Decode(&s); err != nil {
			return err
		}
		*t = Targets{s}
	case yaml.SequenceNode:
		var ss []automata.State
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*t = Targets(ss)
	default:
		return &Error{Path: "targets", Line: node.Line, Err: ErrInvalidTargets}
	}
	return nil
}

func (t Targets) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, s := range t {
		node.Content = append(node.Content, stateNode(s))
	}
	return node, nil
}

func (t Targets) set() automata.StateSet {
	return automata.NewStateSet(t...)
}

// Word is one input sequence.
type Word []string

func (w Word) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, sym := range w {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: sym,
			Style: yaml.DoubleQuotedStyle,
		})
	}
	return node, nil
}

func stateNode(s automata.State) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(uint64(s), 10)}
}

type Document struct {
	Name        string                                `yaml:"name,omitempty"`
	Kind        Kind                                  `yaml:"kind"`
	Initial     automata.State                        `yaml:"initial"`
	Final       []automata.State                      `yaml:"final,flow"`
	Transitions map[automata.State]map[string]Targets `yaml:"transitions,omitempty"`
	Epsilon     map[automata.State]Targets            `yaml:"epsilon,omitempty"`
	Accept      []Word                                `yaml:"accept,omitempty"`
	Reject      []Word                                `yaml:"reject,omitempty"`
}

// Parse decodes and validates a document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate reports every structural problem of the document, joined.
func (doc *Document) Validate() error {
	var errs []error
	if !doc.Kind.Valid() {
		errs = append(errs, &Error{Path: "kind", Err: fmt.Errorf("%w %q", ErrUnknownKind, doc.Kind)})
	}
	if doc.Kind == KindDFA {
		for _, s := range sortedStates(doc.Transitions) {
			row := doc.Transitions[s]
			for _, sym := range sortedSymbols(row) {
				if len(row[sym]) != 1 {
					errs = append(errs, &Error{
						Path: fmt.Sprintf("transitions.%d.%s", s, sym),
						Err:  ErrAmbiguousTransition,
					})
				}
			}
		}
	}
	if doc.Kind != KindEpsilonNFA && len(doc.Epsilon) > 0 {
		errs = append(errs, &Error{Path: "epsilon", Err: ErrUnexpectedEpsilon})
	}
	return errors.Join(errs...)
}

func (doc *Document) DFA() (*automata.DFA[string], error) {
	if doc.Kind != KindDFA {
		return nil, fmt.Errorf("document %q is %s, not %s", doc.Name, doc.Kind, KindDFA)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	transitions := make(map[automata.State]map[string]automata.State, len(doc.Transitions))
	for s, row := range doc.Transitions {
		nrow := make(map[string]automata.State, len(row))
		for sym, ts := range row {
			nrow[sym] = ts[0]
		}
		transitions[s] = nrow
	}
	return automata.NewDFA(doc.Initial, automata.NewStateSet(doc.Final...), transitions), nil
}

// NFA builds the document as an NFA. DFA documents are widened; epsilon
// documents are not accepted.
func (doc *Document) NFA() (*automata.NFA[string], error) {
	switch doc.Kind {
	case KindDFA:
		d, err := doc.DFA()
		if err != nil {
			return nil, err
		}
		return d.NFA(), nil
	case KindNFA:
		if err := doc.Validate(); err != nil {
			return nil, err
		}
		return automata.NewNFA(doc.Initial, automata.NewStateSet(doc.Final...), doc.moves()), nil
	}
	return nil, fmt.Errorf("document %q is %s, not %s", doc.Name, doc.Kind, KindNFA)
}

func (doc *Document) EpsilonNFA() (*automata.EpsilonNFA[string], error) {
	if doc.Kind != KindEpsilonNFA {
		return nil, fmt.Errorf("document %q is %s, not %s", doc.Name, doc.Kind, KindEpsilonNFA)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	transitions := make(map[automata.State]automata.EpsilonTransitions[string])
	for s, row := range doc.moves() {
		tr := transitions[s]
		tr.Symbols = row
		transitions[s] = tr
	}
	for s, ts := range doc.Epsilon {
		tr := transitions[s]
		tr.Epsilon = ts.set()
		transitions[s] = tr
	}
	return automata.NewEpsilonNFA(doc.Initial, automata.NewStateSet(doc.Final...), transitions), nil
}

func (doc *Document) moves() map[automata.State]map[string]automata.StateSet {
	res := make(map[automata.State]map[string]automata.StateSet, len(doc.Transitions))
	for s, row := range doc.Transitions {
		nrow := make(map[string]automata.StateSet, len(row))
		for sym, ts := range row {
			nrow[sym] = ts.set()
		}
		res[s] = nrow
	}
	return res
}

// CompiledDFA builds the document and compiles it down to a DFA.
func (doc *Document) CompiledDFA() (*automata.DFA[string], error) {
	switch doc.Kind {
	case KindDFA:
		return doc.DFA()
	case KindNFA:
		n, err := doc.NFA()
		if err != nil {
			return nil, err
		}
		return automata.ToDFA(n), nil
	case KindEpsilonNFA:
		e, err := doc.EpsilonNFA()
		if err != nil {
			return nil, err
		}
		return automata.CompileEpsilon(e), nil
	}
	return nil, &Error{Path: "kind", Err: fmt.Errorf("%w %q", ErrUnknownKind, doc.Kind)}
}

// Compile returns a DFA document equivalent to doc, keeping its name and
// test words.
func (doc *Document) Compile() (*Document, error) {
	d, err := doc.CompiledDFA()
	if err != nil {
		return nil, err
	}
	res := FromDFA(doc.Name, d)
	res.Accept = slices.Clone(doc.Accept)
	res.Reject = slices.Clone(doc.Reject)
	return res, nil
}

// FromDFA describes d as a document.
func FromDFA(name string, d *automata.DFA[string]) *Document {
	doc := &Document{
		Name:        name,
		Kind:        KindDFA,
		Initial:     d.InitialState(),
		Final:       d.FinalStates(),
		Transitions: make(map[automata.State]map[string]Targets),
	}
	for _, s := range d.States() {
		syms := d.Symbols(s)
		if len(syms) == 0 {
			continue
		}
		row := make(map[string]Targets, len(syms))
		for _, sym := range syms {
			t, _ := d.Transition(s, sym)
			row[sym] = Targets{t}
		}
		doc.Transitions[s] = row
	}
	return doc
}

func (doc *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Symbols splits an input line into symbols: one per character when sep
// is empty, otherwise the sep separated fields. An empty line is the empty
// word.
func Symbols(line, sep string) []string {
	if line == "" {
		return []string{}
	}
	if sep == "" {
		res := make([]string, 0, len(line))
		for _, r := range line {
			res = append(res, string(r))
		}
		return res
	}
	return strings.Split(line, sep)
}

func sortedStates[V any](m map[automata.State]V) []automata.State {
	res := make([]automata.State, 0, len(m))
	for s := range m {
		res = append(res, s)
	}
	slices.Sort(res)
	return res
}

func sortedSymbols(row map[string]Targets) []string {
	res := make([]string, 0, len(row))
	for sym := range row {
		res = append(res, sym)
	}
	slices.Sort(res)
	return res
}
