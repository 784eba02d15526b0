package automata

import (
	"slices"
	"strconv"
	"strings"
)

// State labels a node of an automaton. States carry no identity beyond
// their value.
type State uint64

// StateSet is an unordered set of states.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	ss := make(StateSet, len(states))
	for _, s := range states {
		ss[s] = struct{}{}
	}
	return ss
}

func (ss StateSet) Len() int {
	return len(ss)
}

func (ss StateSet) Has(s State) bool {
	_, has := ss[s]
	return has
}

// Add inserts states and returns how many were not already present.
func (ss StateSet) Add(states ...State) int {
	c := 0
	for _, s := range states {
		if _, has := ss[s]; !has {
			ss[s] = struct{}{}
			c++
		}
	}
	return c
}

// AddAll merges o into ss and returns how many states were new.
func (ss StateSet) AddAll(o StateSet) int {
	c := 0
	for s := range o {
		if _, has := ss[s]; !has {
			ss[s] = struct{}{}
			c++
		}
	}
	return c
}

func (ss StateSet) Clone() StateSet {
	res := make(StateSet, len(ss))
	for s := range ss {
		res[s] = struct{}{}
	}
	return res
}

func (ss StateSet) Equals(o StateSet) bool {
	if len(ss) != len(o) {
		return false
	}
	for s := range ss {
		if _, has := o[s]; !has {
			return false
		}
	}
	return true
}

func (ss StateSet) Intersects(o StateSet) bool {
	a, b := ss, o
	if len(b) < len(a) {
		a, b = b, a
	}
	for s := range a {
		if _, has := b[s]; has {
			return true
		}
	}
	return false
}

// Sorted returns the members in ascending order.
func (ss StateSet) Sorted() []State {
	res := make([]State, 0, len(ss))
	for s := range ss {
		res = append(res, s)
	}
	slices.Sort(res)
	return res
}

// Max returns the largest member, or false for an empty set.
func (ss StateSet) Max() (State, bool) {
	var m State
	found := false
	for s := range ss {
		if !found || s > m {
			m = s
			found = true
		}
	}
	return m, found
}

// Key is the canonical form of the set: the sorted members, comma
// separated. Two sets have the same key iff they are equal.
func (ss StateSet) Key() string {
	var buf []byte
	for i, s := range ss.Sorted() {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(s), 10)
	}
	return string(buf)
}

func (ss StateSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(ss.Key())
	sb.WriteByte('}')
	return sb.String()
}

func maxState(m State, s State) State {
	if s > m {
		return s
	}
	return m
}
