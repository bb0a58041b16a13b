package parser

// Parser consumes tokens from a Stream and produces an output value or a
// positioned Error. See the package documentation for the contract every
// parser must uphold.
type Parser[T, O any] func(st *Stream[T]) (O, *Error[T])

// Pair holds the outputs of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the output of Optional: Value is meaningful only when Valid is
// true.
type Maybe[O any] struct {
	Value O
	Valid bool
}

// Run parses a complete token slice with p, constructing the Stream
// internally. The parser is not anchored: wrap p with Skip(p, EOF[T]()) to
// require that all input is consumed.
func Run[T, O any](p Parser[T, O], tokens []T) (O, *Error[T]) {
	return p(NewStream(tokens))
}

// Match runs p and reports only success or failure, discarding the error
// payload. This is the simplified presence/absence interface; callers that
// need positions or expectations use the Parser directly.
func Match[T, O any](p Parser[T, O], st *Stream[T]) (O, bool) {
	out, err := p(st)
	return out, err == nil
}
