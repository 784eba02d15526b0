package automata

// Binary strings ending in a one.
func endsInOneNFA() *NFA[bool] {
	return NewNFA(0, NewStateSet(2), map[State]map[bool]StateSet{
		0: {false: NewStateSet(1), true: NewStateSet(2)},
		1: {false: NewStateSet(1), true: NewStateSet(2)},
	})
}

func endsInOneDFA() *DFA[bool] {
	return NewDFA(0, NewStateSet(2), map[State]map[bool]State{
		0: {false: 1, true: 2},
		1: {false: 1, true: 2},
	})
}

// Four bit palindromes. State 11 is a dead branch off the initial state.
func palindromeNFA() *NFA[bool] {
	return NewNFA(0, NewStateSet(4, 10), map[State]map[bool]StateSet{
		0: {false: NewStateSet(1, 11), true: NewStateSet(6)},
		1: {false: NewStateSet(2), true: NewStateSet(3)},
		2: {false: NewStateSet(5)},
		3: {true: NewStateSet(5)},
		5: {false: NewStateSet(4)},
		6: {false: NewStateSet(7), true: NewStateSet(8)},
		7: {false: NewStateSet(9)},
		8: {true: NewStateSet(9)},
		9: {true: NewStateSet(10)},
	})
}

func allOnesENFA() *EpsilonNFA[bool] {
	return NewEpsilonNFA(0, NewStateSet(1), map[State]EpsilonTransitions[bool]{
		0: {
			Epsilon: NewStateSet(1),
			Symbols: map[bool]StateSet{true: NewStateSet(0)},
		},
	})
}

// At most one alternation: t*f* or f*t*. States 3 and 6 form an epsilon
// cycle.
func alternationENFA() *EpsilonNFA[bool] {
	return NewEpsilonNFA(0, NewStateSet(3, 6), map[State]EpsilonTransitions[bool]{
		0: {Epsilon: NewStateSet(1, 4)},
		1: {
			Epsilon: NewStateSet(2),
			Symbols: map[bool]StateSet{true: NewStateSet(1)},
		},
		2: {
			Epsilon: NewStateSet(3),
			Symbols: map[bool]StateSet{false: NewStateSet(2)},
		},
		3: {Epsilon: NewStateSet(6)},
		4: {
			Epsilon: NewStateSet(5),
			Symbols: map[bool]StateSet{false: NewStateSet(4)},
		},
		5: {
			Epsilon: NewStateSet(6),
			Symbols: map[bool]StateSet{true: NewStateSet(5)},
		},
		6: {Epsilon: NewStateSet(3)},
	})
}

type languageCase struct {
	input  []bool
	accept bool
}

var endsInOneCases = []languageCase{
	{[]bool{true}, true},
	{[]bool{false, false}, false},
	{[]bool{}, false},
	{[]bool{false, true}, true},
	{[]bool{true, true, false}, false},
}

var palindromeCases = []languageCase{
	{[]bool{false, true, true, false}, true},
	{[]bool{false, false, false, false}, true},
	{[]bool{true, false, false, true}, true},
	{[]bool{true, true, true, true}, true},
	{[]bool{false}, false},
	{[]bool{true, false, true, false}, false},
	{[]bool{false, false, true, false}, false},
	{[]bool{false, true, true, false, false}, false},
	{[]bool{}, false},
}

var allOnesCases = []languageCase{
	{[]bool{}, true},
	{[]bool{true, true}, true},
	{[]bool{false}, false},
	{[]bool{true, false}, false},
}

var alternationCases = []languageCase{
	{[]bool{}, true},
	{[]bool{false}, true},
	{[]bool{true, true}, true},
	{[]bool{true, false}, true},
	{[]bool{false, false, true}, true},
	{[]bool{true, false, true}, false},
	{[]bool{false, true, false}, false},
}
