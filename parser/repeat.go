package parser

// Many runs p repeatedly until it fails without consuming input, returning
// all outputs collected so far. Zero repetitions is a success. A failure
// that consumed input always propagates, even after the minimum is met:
// a partially matched trailing element is a hard error, never a silent
// truncation point.
func (p Parser[T, O]) Many() Parser[T, []O] {
	return repeat(p, 0, -1)
}

// Many1 is Many with a minimum of one repetition.
func (p Parser[T, O]) Many1() Parser[T, []O] {
	return repeat(p, 1, -1)
}

// ManyN matches exactly n repetitions: after the n-th success no further
// attempt is made.
func (p Parser[T, O]) ManyN(n int) Parser[T, []O] {
	return repeat(p, n, n)
}

// repeat implements bounded repetition. max < 0 means unbounded.
func repeat[T, O any](p Parser[T, O], min, max int) Parser[T, []O] {
	return func(st *Stream[T]) ([]O, *Error[T]) {
		var res []O
		for max < 0 || len(res) < max {
			pos := st.Pos()
			out, err := p(st)
			if err != nil {
				if len(res) < min {
					return nil, err
				}
				if st.Pos() != pos {
					return nil, err
				}
				break
			}
			res = append(res, out)
		}
		return res, nil
	}
}
