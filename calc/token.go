package calc

// Position locates a token in the source text. Line and Column are
// 1-based; Offset is a byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	TokenNumber
	TokenIdent

	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenLParen
	TokenRParen
	TokenComma
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:     "EOF",
	TokenError:   "Error",
	TokenNumber:  "Number",
	TokenIdent:   "Identifier",
	TokenPlus:    "+",
	TokenMinus:   "-",
	TokenStar:    "*",
	TokenSlash:   "/",
	TokenPercent: "%",
	TokenLParen:  "(",
	TokenRParen:  ")",
	TokenComma:   ",",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenNumber, TokenIdent, TokenError:
		if t.Literal != "" {
			return t.Literal
		}
	}
	return t.Kind.String()
}
