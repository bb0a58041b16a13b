package calc

// Lexer turns source text into the token sequence the expression grammar
// consumes. Whitespace, line comments (//) and block comments (/* */) are
// skipped between tokens and never reach the parser.
type Lexer struct {
	input  []byte
	pos    int
	line   int
	column int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
}

func (l *Lexer) skipLineComment() bool {
	if l.peek() != '/' || l.peekN(1) != '/' {
		return false
	}
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return true
}

// skipBlockComment consumes a /* */ comment. Comments do not nest; an
// unterminated comment runs to the end of input.
func (l *Lexer) skipBlockComment() bool {
	if l.peek() != '/' || l.peekN(1) != '*' {
		return false
	}
	l.advanceN(2)
	for l.peek() != 0 {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			return true
		}
		l.advance()
	}
	return true
}

func (l *Lexer) skip() {
	l.skipWhitespace()
	for l.skipLineComment() || l.skipBlockComment() {
		l.skipWhitespace()
	}
}

// NextToken returns the next significant token. At end of input it returns
// a TokenEOF token positioned after the last byte, and keeps returning it
// on subsequent calls.
func (l *Lexer) NextToken() Token {
	l.skip()
	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: start}
	}

	ch := l.peek()

	if isDigit(ch) {
		return l.scanNumber(start)
	}
	if isLetter(ch) {
		return l.scanIdent(start)
	}

	switch ch {
	case '+':
		l.advance()
		return l.token(TokenPlus, start)
	case '-':
		l.advance()
		return l.token(TokenMinus, start)
	case '*':
		l.advance()
		return l.token(TokenStar, start)
	case '/':
		l.advance()
		return l.token(TokenSlash, start)
	case '%':
		l.advance()
		return l.token(TokenPercent, start)
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	}

	l.advance()
	return l.token(TokenError, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(TokenNumber, start)
}

func (l *Lexer) scanIdent(start Position) Token {
	for isLetter(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	return l.token(TokenIdent, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	return Token{
		Kind:    kind,
		Literal: string(l.input[start.Offset:l.pos]),
		Pos:     start,
	}
}

// Tokenize scans src to completion. The returned slice always ends with a
// TokenEOF token carrying the end-of-input position.
func Tokenize(src string) []Token {
	l := NewLexer([]byte(src))
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
