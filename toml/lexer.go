package toml

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lexer splits TOML input into tokens
type Lexer struct {
	input []byte
	pos   int
	line  int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input, line: 1}
}

// NextToken returns the next token in the stream
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return l.newToken(TokenEOF, "")
	}

	ch := l.peek()
	switch ch {
	case '\n':
		l.advance()
		tok := l.newToken(TokenNewline, "\n")
		l.line++
		return tok
	case '#':
		return l.readComment()
	case '=':
		l.advance()
		return l.newToken(TokenEqual, "=")
	case ',':
		l.advance()
		return l.newToken(TokenComma, ",")
	case '[':
		l.advance()
		return l.newToken(TokenLBracket, "[")
	case ']':
		l.advance()
		return l.newToken(TokenRBracket, "]")
	case '"':
		return l.readString()
	}

	if isDigit(ch) || isAlpha(ch) || ch == '+' || ch == '-' || ch == '_' {
		return l.readBareOrNumber()
	}

	l.advance()
	return l.newToken(TokenError, fmt.Sprintf("unexpected character: %c", ch))
}

func (l *Lexer) newToken(typ TokenType, literal string) Token {
	return Token{Type: typ, Literal: literal, Line: l.line}
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, w := utf8.DecodeRune(l.input[l.pos:])
	l.pos += w
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch != ' ' && ch != '\t' && ch != '\r' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) readComment() Token {
	l.advance() // '#'
	start := l.pos
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	return l.newToken(TokenComment, string(l.input[start:l.pos]))
}

func (l *Lexer) readString() Token {
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.advance()
		switch ch {
		case '\n':
			return l.newToken(TokenError, "unterminated string (newlines not allowed in basic strings)")
		case '"':
			return l.newToken(TokenString, sb.String())
		case '\\':
			esc := l.advance()
			switch esc {
			case '"', '\\':
				sb.WriteRune(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				return l.newToken(TokenError, fmt.Sprintf("unsupported escape \\%c", esc))
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return l.newToken(TokenError, "unterminated string")
}

// specialFloats are the TOML literals for non-finite values
var specialFloats = map[string]bool{
	"nan": true, "+nan": true, "-nan": true,
	"inf": true, "+inf": true, "-inf": true,
}

func (l *Lexer) readBareOrNumber() Token {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.peek()
		if isAlpha(ch) || isDigit(ch) || ch == '_' || ch == '-' || ch == '+' || ch == '.' {
			l.advance()
			continue
		}
		break
	}
	lit := string(l.input[start:l.pos])

	switch {
	case lit == "true" || lit == "false":
		return l.newToken(TokenBool, lit)
	case specialFloats[lit]:
		return l.newToken(TokenFloat, lit)
	}

	c0 := lit[0]
	if isDigit(rune(c0)) || ((c0 == '+' || c0 == '-') && len(lit) > 1) {
		if strings.ContainsAny(lit, ".eE") {
			return l.newToken(TokenFloat, lit)
		}
		return l.newToken(TokenInteger, lit)
	}

	if strings.Contains(lit, ".") {
		return l.newToken(TokenError, fmt.Sprintf("dotted keys are not supported: %s", lit))
	}
	return l.newToken(TokenIdent, lit)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
