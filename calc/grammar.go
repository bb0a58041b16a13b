package calc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dhamidi/combine/parser"
)

// SyntaxError is a parse failure with its source position resolved back
// from the token index to a line and column.
type SyntaxError struct {
	Pos     Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

type builtin struct {
	arity int
	apply func(args []float64) float64
}

var builtins = map[string]builtin{
	"abs":  {1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"sqrt": {1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"min":  {2, func(a []float64) float64 { return math.Min(a[0], a[1]) }},
	"max":  {2, func(a []float64) float64 { return math.Max(a[0], a[1]) }},
}

// kind matches a single token of the given kind. The expectation is a
// synthetic token rendering as the kind's name, so errors read
// "expecting )" rather than "expecting unknown".
func kind(k TokenKind) parser.Parser[Token, Token] {
	return parser.Satisfy[Token](func(t Token) bool { return t.Kind == k }).
		Msg(parser.ExpectingToken(Token{Kind: k}))
}

// expectDesc builds an expectation that renders as a free-form
// description, for grammar-boundary error messages.
func expectDesc(desc string) parser.Expect[Token] {
	return parser.ExpectingToken(Token{Kind: TokenIdent, Literal: desc})
}

// exprGrammar is built once at package load; the combinator tree is
// immutable and shared by all parses.
var exprGrammar = newGrammar()

// newGrammar wires the expression grammar:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/' | '%') unary)*
//	unary   := '-' unary | primary
//	primary := number | '(' expr ')' | ident '(' args ')' | ident
//	args    := expr (',' expr)*
//
// A bare identifier is a named constant; an identifier followed by '(' is
// a call to a built-in function. The two forms share their ident prefix,
// so the rule is factored with Then: once the identifier is in hand, the
// continuation picks the call or constant form without backtracking, and
// errors inside an argument list keep their exact position. The argument
// count required by the callee is likewise checked with the parsed name
// in hand.
func newGrammar() parser.Parser[Token, float64] {
	var expr parser.Parser[Token, float64]
	exprRef := parser.Ref(&expr)

	number := parser.Map(kind(TokenNumber), func(t Token) float64 {
		v, _ := strconv.ParseFloat(t.Literal, 64)
		return v
	})

	group := parser.With(kind(TokenLParen), parser.Skip(exprRef, kind(TokenRParen)))

	args := parser.Map(
		parser.And(exprRef, parser.With(kind(TokenComma), exprRef).Many()),
		func(p parser.Pair[float64, []float64]) []float64 {
			return append([]float64{p.First}, p.Second...)
		},
	)

	callOrConst := parser.Then(kind(TokenIdent), func(name Token) parser.Parser[Token, float64] {
		fn, isFunc := builtins[name.Literal]
		body := parser.Then(args, func(vals []float64) parser.Parser[Token, float64] {
			if !isFunc {
				return parser.Fail[Token, float64]().Msg(expectDesc("a function (abs, sqrt, min, max)"))
			}
			if len(vals) != fn.arity {
				return parser.Fail[Token, float64]().Msg(expectDesc(
					fmt.Sprintf("%d argument(s) to %s", fn.arity, name.Literal)))
			}
			return parser.Value[Token](fn.apply(vals))
		})
		callTail := parser.With(kind(TokenLParen), parser.Skip(body, kind(TokenRParen)))

		next := parser.Fail[Token, float64]().Msg(expectDesc("a constant (pi, e) or function call"))
		if v, ok := constants[name.Literal]; ok {
			next = parser.Value[Token](v)
		}
		return callTail.Or(next)
	})

	// Fail terminates the alternation chain so that a primary that
	// matches nothing reports one readable expectation instead of the
	// last alternative's internal one.
	primary := number.Or(group).Or(callOrConst).
		Or(parser.Fail[Token, float64]().Msg(expectDesc("an expression")))

	var unary parser.Parser[Token, float64]
	neg := parser.Map(
		parser.With(kind(TokenMinus), parser.Ref(&unary)),
		func(v float64) float64 { return -v },
	)
	unary = neg.Or(primary)

	mulOp := kind(TokenStar).Or(kind(TokenSlash)).Or(kind(TokenPercent))
	term := parser.Map(parser.And(unary, parser.And(mulOp, unary).Many()), foldBinary)

	addOp := kind(TokenPlus).Or(kind(TokenMinus))
	expr = parser.Map(parser.And(term, parser.And(addOp, term).Many()), foldBinary)

	return parser.Skip(expr, parser.EOF[Token]())
}

func foldBinary(p parser.Pair[float64, []parser.Pair[Token, float64]]) float64 {
	acc := p.First
	for _, op := range p.Second {
		acc = applyBinary(op.First.Kind, acc, op.Second)
	}
	return acc
}

func applyBinary(op TokenKind, a, b float64) float64 {
	switch op {
	case TokenPlus:
		return a + b
	case TokenMinus:
		return a - b
	case TokenStar:
		return a * b
	case TokenSlash:
		return a / b
	case TokenPercent:
		return math.Mod(a, b)
	}
	return math.NaN()
}

// Parse evaluates an arithmetic expression. On failure it returns a
// *SyntaxError positioned at the offending token.
func Parse(src string) (float64, error) {
	return ParseTokens(Tokenize(src))
}

// ParseTokens evaluates an already-lexed expression. A trailing TokenEOF
// token, as produced by Tokenize, supplies the end-of-input position for
// errors and is not fed to the grammar.
func ParseTokens(tokens []Token) (float64, error) {
	body := tokens
	eofPos := Position{Line: 1, Column: 1}
	if n := len(tokens); n > 0 && tokens[n-1].Kind == TokenEOF {
		body = tokens[:n-1]
		eofPos = tokens[n-1].Pos
	}

	out, perr := parser.Run(exprGrammar, body)
	if perr != nil {
		pos := eofPos
		if perr.Pos < len(body) {
			pos = body[perr.Pos].Pos
		}
		return 0, &SyntaxError{Pos: pos, Message: perr.Error()}
	}
	return out, nil
}
