package parser

import "fmt"

// ExpectKind classifies what a failing parser was looking for.
type ExpectKind int

const (
	// ExpectAny: a token was required but the stream was exhausted.
	ExpectAny ExpectKind = iota
	// ExpectEOF: end of input was required but a token remained.
	ExpectEOF
	// ExpectToken: a specific token was required.
	ExpectToken
	// ExpectUnknown: a predicate or otherwise unclassified match failed.
	ExpectUnknown
)

// Expect describes the expectation half of a parse error. Token is
// meaningful only when Kind is ExpectToken.
type Expect[T any] struct {
	Kind  ExpectKind
	Token T
}

func ExpectingAny[T any]() Expect[T] {
	return Expect[T]{Kind: ExpectAny}
}

func ExpectingEOF[T any]() Expect[T] {
	return Expect[T]{Kind: ExpectEOF}
}

func ExpectingToken[T any](tok T) Expect[T] {
	return Expect[T]{Kind: ExpectToken, Token: tok}
}

func ExpectingUnknown[T any]() Expect[T] {
	return Expect[T]{Kind: ExpectUnknown}
}

func (e Expect[T]) String() string {
	switch e.Kind {
	case ExpectAny:
		return "any token"
	case ExpectEOF:
		return "end of input"
	case ExpectToken:
		return fmt.Sprintf("%v", e.Token)
	default:
		return "unknown"
	}
}

// Error is a structured parse failure. Pos is the exact cursor position at
// the moment the error was constructed; Unexpected is the token observed
// there, with Found false when the stream was exhausted instead. Errors are
// values: combinators propagate them unchanged, except Msg, which rewrites
// only the Expecting field.
type Error[T any] struct {
	Pos        int
	Unexpected T
	Found      bool
	Expecting  Expect[T]
}

// NewError constructs an error at pos. Pass found=false when no token was
// available at the failure position.
func NewError[T any](pos int, unexpected T, found bool, expecting Expect[T]) *Error[T] {
	return &Error[T]{Pos: pos, Unexpected: unexpected, Found: found, Expecting: expecting}
}

// unexpectedHere builds an error at the stream's current position, capturing
// the current token if one exists.
func unexpectedHere[T any](st *Stream[T], expecting Expect[T]) *Error[T] {
	tok, ok := st.Peek()
	return &Error[T]{Pos: st.Pos(), Unexpected: tok, Found: ok, Expecting: expecting}
}

func (e *Error[T]) Error() string {
	if !e.Found {
		return fmt.Sprintf("unexpected end of input expecting %s", e.Expecting)
	}
	return fmt.Sprintf("unexpected %v expecting %s", e.Unexpected, e.Expecting)
}
