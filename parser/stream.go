package parser

// Stream is a cursor over an in-memory token sequence. The token slice is
// never modified; all parsing state lives in the cursor position, so
// backtracking is implemented as restoring a previously observed position.
//
// A Stream must not be shared between concurrent parses. The grammar built
// from combinators is immutable and may be shared freely; each parse gets
// its own Stream.
type Stream[T any] struct {
	tokens []T
	pos    int
}

// NewStream creates a stream positioned at the first token. The slice is
// retained, not copied; callers must not modify it while parsing.
func NewStream[T any](tokens []T) *Stream[T] {
	return &Stream[T]{tokens: tokens}
}

// Peek returns the current token without consuming it. The second result is
// false when the stream is exhausted.
func (st *Stream[T]) Peek() (T, bool) {
	if st.pos >= len(st.tokens) {
		var zero T
		return zero, false
	}
	return st.tokens[st.pos], true
}

// Next advances the cursor past the current token. Callers advance only
// after a successful Peek.
func (st *Stream[T]) Next() {
	if st.pos < len(st.tokens) {
		st.pos++
	}
}

// Pos returns the cursor position: the index of the next token to consume,
// in 0..Len().
func (st *Stream[T]) Pos() int {
	return st.pos
}

// SetPos moves the cursor to an arbitrary position. Combinators use it only
// to rewind to a position captured with Pos before a failed sub-parse; no
// bounds check is performed, so only previously observed positions are valid
// arguments.
func (st *Stream[T]) SetPos(pos int) {
	st.pos = pos
}

// Len returns the total number of tokens in the stream.
func (st *Stream[T]) Len() int {
	return len(st.tokens)
}
