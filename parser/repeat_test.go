package parser

import "testing"

func TestMany(t *testing.T) {
	p := Token(1).Many()
	runIntCases(t, p, []intCase[[]int]{
		{name: "several", input: []int{1, 1, 2}, want: []int{1, 1}, wantPos: 2},
		{name: "zero repetitions is success", input: []int{2}, want: nil, wantPos: 0},
		{name: "empty stream", input: nil, want: nil, wantPos: 0},
		{name: "consumes all", input: []int{1, 1, 1}, want: []int{1, 1, 1}, wantPos: 3},
	})
}

func TestManyCleanTrailingStop(t *testing.T) {
	p := Tokens([]int{1, 2}).Many()
	runIntCases(t, p, []intCase[[][]int]{
		// The trailing 3 fails the element parser before it consumes
		// anything, so the loop stops cleanly.
		{name: "clean trailing stop", input: []int{1, 2, 3}, want: [][]int{{1, 2}}, wantPos: 2},
	})
}

func TestMany1(t *testing.T) {
	p := Token(1).Many1()
	runIntCases(t, p, []intCase[[]int]{
		{name: "at least one", input: []int{1, 2}, want: []int{1}, wantPos: 1},
		{name: "none fails", input: []int{2}, wantErr: NewError(0, 2, true, ExpectingToken(1)), wantPos: 0},
		{name: "empty fails", input: nil, wantErr: NewError(0, 0, false, ExpectingToken(1)), wantPos: 0},
	})
}

func TestManyN(t *testing.T) {
	p := Token(1).ManyN(2)
	runIntCases(t, p, []intCase[[]int]{
		{name: "exact count", input: []int{1, 1}, want: []int{1, 1}, wantPos: 2},
		// The third 1 is left untouched: after the n-th success no
		// further attempt is made.
		{name: "stops at max", input: []int{1, 1, 1}, want: []int{1, 1}, wantPos: 2},
		{name: "below min fails", input: []int{1, 2}, wantErr: NewError(1, 2, true, ExpectingToken(1)), wantPos: 1},
	})
}

func TestManyNNoExtraAttempt(t *testing.T) {
	attempts := 0
	counting := Parser[int, int](func(st *Stream[int]) (int, *Error[int]) {
		attempts++
		return Token(1)(st)
	})

	if _, err := Run(counting.ManyN(2), []int{1, 1, 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Errorf("element parser ran %d times, want 2", attempts)
	}
}

func TestManyPropagatesMessyFailure(t *testing.T) {
	p := Tokens([]int{1, 2}).Many()
	runIntCases(t, p, []intCase[[][]int]{
		// The trailing element consumed the 1 before failing, so the
		// whole repetition fails rather than returning the prefix.
		{name: "partial trailing element", input: []int{1, 2, 1, 3}, wantErr: NewError(3, 3, true, ExpectingToken(2)), wantPos: 3},
	})
}
