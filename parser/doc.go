// Package parser provides backtracking parser combinators over arbitrary
// token streams.
//
// # Overview
//
// A grammar is built once as an expression tree of combinators and then run
// any number of times against independent token streams. There is no grammar
// file and no generation step: primitives such as Token and Satisfy match
// directly against a Stream, and combinators such as Or, And and Many
// compose them into larger parsers. The engine is generic over the token
// type; character streams, pre-lexed token slices, and any other discrete
// alphabet all work the same way.
//
// # The Parser contract
//
// A Parser is any function from a Stream to an output value or an Error:
//
//	type Parser[T, O any] func(st *Stream[T]) (O, *Error[T])
//
// Because Parser is a plain function type, wrapping an arbitrary function as
// a parser needs no adapter: any closure with this signature is a parser.
//
// Every implementation must uphold two invariants:
//
//   - On success, the cursor has advanced exactly past the tokens the parser
//     consumed (zero for non-consuming parsers such as Value).
//   - On failure, the cursor is left exactly where the mismatch was
//     detected. Parsers never rewind themselves; rewinding is the job of
//     wrapping combinators.
//
// The second invariant is what lets Or tell "failed without committing"
// apart from "failed after partially matching".
//
// # Ordered choice and Attempt
//
// p.Or(q) runs p, and tries q only if p failed without consuming any input.
// If p consumed even one token before failing, its error propagates and q is
// never tried. This keeps parsing linear for LL(1)-shaped grammars, but it
// is also the single most common source of confusing grammar bugs: an
// alternative that shares a prefix with an earlier one is silently
// unreachable unless the earlier one is wrapped in Attempt, which rewinds
// the cursor on any failure:
//
//	Tokens([]int{1, 2}).Attempt().Or(Tokens([]int{1, 3}))
//
// Without Attempt, the parser above fails on input [1, 3] instead of trying
// the second alternative, because the first alternative consumed the 1.
// Attempt trades away diagnostic precision: once the cursor is rewound, Or
// retries the alternative, and the error the caller eventually sees comes
// from the alternative rather than from where the partial match stopped.
//
// # Recursive rules
//
// A rule that refers to itself cannot be built in one expression. Declare
// the variable first and close over it with Ref, which defers the lookup to
// parse time:
//
//	var expr Parser[rune, int]
//	group := With(Token('('), Skip(Ref(&expr), Token(')')))
//	expr = number.Or(group)
//
// Either is the companion mechanism for rule sets built as data: a two-case
// closed union dispatched at parse time.
package parser
