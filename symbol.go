package automata

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// CompareSymbols orders two symbols. Booleans, integers, floats and strings
// (and named types of those kinds) use their natural order, false before
// true. Ties between distinct values, and anything else, are broken by the
// dynamic type name and then the %#v rendering.
//
// The order only fixes traversal and printing; acceptance never depends
// on it.
func CompareSymbols[S comparable](a, b S) int {
	if a == b {
		return 0
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Kind() == vb.Kind() {
		if c := compareValues(va, vb); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)); c != 0 {
		return c
	}
	return cmp.Compare(fmt.Sprintf("%#v", a), fmt.Sprintf("%#v", b))
}

// compareValues compares two values of the same basic kind, or returns 0.
func compareValues(va, vb reflect.Value) int {
	switch va.Kind() {
	case reflect.Bool:
		x, y := va.Bool(), vb.Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.String:
		return cmp.Compare(va.String(), vb.String())
	}
	return 0
}

func sortSymbols[S comparable](syms []S) {
	slices.SortFunc(syms, CompareSymbols[S])
}
