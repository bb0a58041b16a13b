package parser

// Map transforms the output of p through f. Failures pass through
// unchanged. Map is a top-level function because Go methods cannot
// introduce the new output type parameter.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return func(st *Stream[T]) (B, *Error[T]) {
		out, err := p(st)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(out), nil
	}
}

// And runs a then b, returning both outputs as a Pair. It fails at
// whichever sub-parser fails first, leaving the cursor at that parser's
// failure position: a's consumption is not rewound.
func And[T, A, B any](a Parser[T, A], b Parser[T, B]) Parser[T, Pair[A, B]] {
	return func(st *Stream[T]) (Pair[A, B], *Error[T]) {
		first, err := a(st)
		if err != nil {
			return Pair[A, B]{}, err
		}
		second, err := b(st)
		if err != nil {
			return Pair[A, B]{}, err
		}
		return Pair[A, B]{First: first, Second: second}, nil
	}
}

// With sequences a then b and keeps only b's output.
func With[T, A, B any](a Parser[T, A], b Parser[T, B]) Parser[T, B] {
	return func(st *Stream[T]) (B, *Error[T]) {
		if _, err := a(st); err != nil {
			var zero B
			return zero, err
		}
		return b(st)
	}
}

// Skip sequences a then b and keeps only a's output.
func Skip[T, A, B any](a Parser[T, A], b Parser[T, B]) Parser[T, A] {
	return func(st *Stream[T]) (A, *Error[T]) {
		out, err := a(st)
		if err != nil {
			var zero A
			return zero, err
		}
		if _, err := b(st); err != nil {
			var zero A
			return zero, err
		}
		return out, nil
	}
}

// Then is monadic sequencing: it runs p and, on success, feeds the output
// into f to obtain the parser that continues from the current position.
// Later structure may therefore depend on earlier parsed values.
func Then[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return func(st *Stream[T]) (B, *Error[T]) {
		out, err := p(st)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(out)(st)
	}
}

// Or is ordered choice. q is tried only if p failed without moving the
// cursor; if p consumed input before failing, its error propagates and q is
// never run. Wrap p in Attempt to make a partially-matching alternative
// retryable.
func (p Parser[T, O]) Or(q Parser[T, O]) Parser[T, O] {
	return func(st *Stream[T]) (O, *Error[T]) {
		pos := st.Pos()
		out, err := p(st)
		if err == nil || st.Pos() != pos {
			return out, err
		}
		return q(st)
	}
}

// Attempt rewinds the cursor to where p started whenever p fails,
// regardless of how much p consumed. The error itself propagates unchanged,
// still carrying the position where the mismatch was detected.
func (p Parser[T, O]) Attempt() Parser[T, O] {
	return func(st *Stream[T]) (O, *Error[T]) {
		pos := st.Pos()
		out, err := p(st)
		if err != nil {
			st.SetPos(pos)
		}
		return out, err
	}
}

// Optional runs p. A failure that consumed nothing becomes a success with
// an invalid Maybe; a failure that consumed input propagates, since a
// partially matched optional element is a real error, not an absence.
func (p Parser[T, O]) Optional() Parser[T, Maybe[O]] {
	return func(st *Stream[T]) (Maybe[O], *Error[T]) {
		pos := st.Pos()
		out, err := p(st)
		if err != nil {
			if st.Pos() != pos {
				return Maybe[O]{}, err
			}
			return Maybe[O]{}, nil
		}
		return Maybe[O]{Value: out, Valid: true}, nil
	}
}

// Msg overwrites the Expecting field of any error p produces, preserving
// the error's position and unexpected token. Use it at grammar boundaries
// to replace low-level expectations with meaningful ones.
func (p Parser[T, O]) Msg(expecting Expect[T]) Parser[T, O] {
	return func(st *Stream[T]) (O, *Error[T]) {
		out, err := p(st)
		if err != nil {
			e := *err
			e.Expecting = expecting
			return out, &e
		}
		return out, nil
	}
}
