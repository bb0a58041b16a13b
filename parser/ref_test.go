package parser

import "testing"

// Nesting depth of balanced parentheses, the canonical recursive rule.
func nestingGrammar() Parser[rune, int] {
	var depth Parser[rune, int]
	nested := Map(
		With(Token('('), Skip(Ref(&depth), Token(')'))),
		func(n int) int { return n + 1 },
	)
	depth = nested.Or(Value[rune](0))
	return Skip(depth, EOF[rune]())
}

func TestRefRecursion(t *testing.T) {
	p := nestingGrammar()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"()", 1, false},
		{"((()))", 3, false},
		{"(()", 0, true},
		{"())", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Run(p, []rune(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Errorf("got %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEitherDispatch(t *testing.T) {
	left := Left(Token(1))
	right := Right[int, int](Token(2))

	if !left.IsLeft() {
		t.Error("Left should report IsLeft")
	}
	if right.IsLeft() {
		t.Error("Right should not report IsLeft")
	}

	runIntCases(t, left.Parser(), []intCase[int]{
		{name: "left case parses", input: []int{1}, want: 1, wantPos: 1},
		{name: "left case fails", input: []int{2}, wantErr: NewError(0, 2, true, ExpectingToken(1)), wantPos: 0},
	})
	runIntCases(t, right.Parser(), []intCase[int]{
		{name: "right case parses", input: []int{2}, want: 2, wantPos: 1},
	})
}

// Rules built as data: an alternation chain folded over a slice of Either
// values, terminated by Fail.
func TestEitherRuleTable(t *testing.T) {
	rules := []Either[int, int]{
		Left(Map(Token(1), func(x int) int { return -x })),
		Right[int, int](Token(2)),
	}

	p := Fail[int, int]()
	for i := len(rules) - 1; i >= 0; i-- {
		p = rules[i].Parser().Or(p)
	}

	runIntCases(t, p, []intCase[int]{
		{name: "first rule", input: []int{1}, want: -1, wantPos: 1},
		{name: "second rule", input: []int{2}, want: 2, wantPos: 1},
		{name: "no rule", input: []int{3}, wantErr: NewError(0, 3, true, ExpectingUnknown[int]()), wantPos: 0},
	})
}
