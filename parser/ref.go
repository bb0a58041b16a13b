package parser

// Ref returns a parser that resolves *p at parse time rather than at
// construction time. This is the indirection that lets a recursive rule
// refer to itself (or a mutually recursive peer) before its definition is
// complete:
//
//	var expr Parser[rune, int]
//	group := With(Token('('), Skip(Ref(&expr), Token(')')))
//	expr = number.Or(group)
//
// The pointer must be assigned before the first parse; after that the
// grammar is immutable and safe to share.
func Ref[T, O any](p *Parser[T, O]) Parser[T, O] {
	return func(st *Stream[T]) (O, *Error[T]) {
		return (*p)(st)
	}
}

type eitherSide int

const (
	leftSide eitherSide = iota
	rightSide
)

// Either is a closed two-case union of parsers sharing input and output
// types. A value holds exactly one parser, tagged Left or Right, and
// dispatches on the tag at parse time. It exists for grammar rules built as
// data, where which of two alternatives a rule resolved to must be carried
// in a single static type.
type Either[T, O any] struct {
	side  eitherSide
	left  Parser[T, O]
	right Parser[T, O]
}

// Left wraps p as the left case.
func Left[T, O any](p Parser[T, O]) Either[T, O] {
	return Either[T, O]{side: leftSide, left: p}
}

// Right wraps p as the right case.
func Right[T, O any](p Parser[T, O]) Either[T, O] {
	return Either[T, O]{side: rightSide, right: p}
}

// IsLeft reports which case the union holds.
func (e Either[T, O]) IsLeft() bool {
	return e.side == leftSide
}

// Parse dispatches to the wrapped parser. The method value e.Parse is
// itself assignable to Parser[T, O].
func (e Either[T, O]) Parse(st *Stream[T]) (O, *Error[T]) {
	switch e.side {
	case leftSide:
		return e.left(st)
	default:
		return e.right(st)
	}
}

// Parser adapts the union back to the plain function type.
func (e Either[T, O]) Parser() Parser[T, O] {
	return e.Parse
}
