package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bit bool

type token struct {
	kind string
	n    int
}

func TestCompareSymbols(t *testing.T) {
	assert.Equal(t, -1, CompareSymbols(false, true))
	assert.Equal(t, 1, CompareSymbols(true, false))
	assert.Equal(t, 0, CompareSymbols(true, true))
	assert.Equal(t, -1, CompareSymbols(bit(false), bit(true)))
	assert.Equal(t, -1, CompareSymbols(-3, 2))
	assert.Equal(t, 1, CompareSymbols(uint8(9), uint8(1)))
	assert.Equal(t, -1, CompareSymbols('a', 'b'))
	assert.Equal(t, 1, CompareSymbols("b", "a"))
	assert.Equal(t, -1, CompareSymbols(1.5, 2.5))
	assert.Equal(t, 0, CompareSymbols(token{"a", 1}, token{"a", 1}))
	assert.Equal(t, -1, CompareSymbols(token{"a", 1}, token{"b", 0}))
}

func TestSortSymbols(t *testing.T) {
	syms := []string{"c", "a", "b"}
	sortSymbols(syms)
	assert.Equal(t, []string{"a", "b", "c"}, syms)

	toks := []token{{"id", 2}, {"id", 1}, {"eq", 0}}
	sortSymbols(toks)
	assert.Equal(t, []token{{"eq", 0}, {"id", 1}, {"id", 2}}, toks)
}

func TestCompareSymbolsDistinctTypes(t *testing.T) {
	assert.Equal(t, -1, CompareSymbols[any](int32(1), int64(1)))
	assert.Equal(t, 1, CompareSymbols[any](int64(1), int32(1)))
	assert.Equal(t, -1, CompareSymbols[any](bit(true), true))
	assert.Equal(t, 1, CompareSymbols[any]("x", 1))
	assert.Equal(t, -1, CompareSymbols[any](int32(1), int64(2)))
	assert.Equal(t, 0, CompareSymbols[any](int64(1), int64(1)))
}

func TestCompileNumberingIsStable(t *testing.T) {
	n := NewNFA[any](0, NewStateSet(1), map[State]map[any]StateSet{
		0: {int64(1): NewStateSet(2), int32(1): NewStateSet(1)},
	})
	for range 50 {
		c := Compile(n)
		assert.True(t, c.Subset(1).Equals(NewStateSet(1)), "subset 1 = %v", c.Subset(1))
		assert.True(t, c.Subset(2).Equals(NewStateSet(2)), "subset 2 = %v", c.Subset(2))
	}
}
