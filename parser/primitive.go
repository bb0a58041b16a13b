package parser

// Any returns a parser that consumes and returns the next token, whatever
// it is. It fails only when the stream is exhausted.
func Any[T any]() Parser[T, T] {
	return func(st *Stream[T]) (T, *Error[T]) {
		tok, ok := st.Peek()
		if !ok {
			return tok, unexpectedHere(st, ExpectingAny[T]())
		}
		st.Next()
		return tok, nil
	}
}

// EOF returns a parser that succeeds, consuming nothing, iff no token
// remains. When a token is present it fails with that token as the
// unexpected value.
func EOF[T any]() Parser[T, struct{}] {
	return func(st *Stream[T]) (struct{}, *Error[T]) {
		if _, ok := st.Peek(); ok {
			return struct{}{}, unexpectedHere(st, ExpectingEOF[T]())
		}
		return struct{}{}, nil
	}
}

// Value returns a parser that always succeeds with x, consuming nothing.
func Value[T, O any](x O) Parser[T, O] {
	return func(st *Stream[T]) (O, *Error[T]) {
		return x, nil
	}
}

// Token returns a parser that consumes and returns the next token iff it
// equals want. On mismatch the cursor does not move.
func Token[T comparable](want T) Parser[T, T] {
	return func(st *Stream[T]) (T, *Error[T]) {
		tok, ok := st.Peek()
		if !ok || tok != want {
			var zero T
			return zero, unexpectedHere(st, ExpectingToken(want))
		}
		st.Next()
		return tok, nil
	}
}

// Tokens returns a parser that matches want element by element, consuming
// each matched token as it goes. On the first mismatch it fails at the
// position reached so far: partial consumption on failure is intentional,
// so callers wanting a full rewind wrap the parser in Attempt.
func Tokens[T comparable](want []T) Parser[T, []T] {
	return func(st *Stream[T]) ([]T, *Error[T]) {
		res := make([]T, 0, len(want))
		for _, w := range want {
			tok, ok := st.Peek()
			if !ok || tok != w {
				return nil, unexpectedHere(st, ExpectingToken(w))
			}
			st.Next()
			res = append(res, tok)
		}
		return res, nil
	}
}

// Satisfy returns a parser that consumes and returns the next token iff
// pred accepts it. Failures carry the Unknown expectation; use Msg to give
// them a meaningful one.
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return func(st *Stream[T]) (T, *Error[T]) {
		tok, ok := st.Peek()
		if !ok || !pred(tok) {
			var zero T
			return zero, unexpectedHere(st, ExpectingUnknown[T]())
		}
		st.Next()
		return tok, nil
	}
}

// Fail returns a parser that never succeeds. It serves as the terminal of
// exhaustive alternation chains and as the failing branch of Then.
func Fail[T, O any]() Parser[T, O] {
	return func(st *Stream[T]) (O, *Error[T]) {
		var zero O
		return zero, unexpectedHere(st, ExpectingUnknown[T]())
	}
}
