package tsparser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/ChainSafe/rulewalk/ast"
)

type token struct {
	kind ast.Kind
	pos  int
	end  int
	text string
	// set when a line break separates this token from the previous one
	newlineBefore bool
}

// punctuation ordered longest first so that the first match wins
var punctuation = []struct {
	text string
	kind ast.Kind
}{
	{"===", ast.EqualsEqualsEqualsToken},
	{"!==", ast.ExclamationEqualsEqualsToken},
	{"...", ast.DotDotDotToken},
	{"==", ast.EqualsEqualsToken},
	{"!=", ast.ExclamationEqualsToken},
	{"=>", ast.EqualsGreaterThanToken},
	{"<=", ast.LessThanEqualsToken},
	{">=", ast.GreaterThanEqualsToken},
	{"&&", ast.AmpersandAmpersandToken},
	{"||", ast.BarBarToken},
	{"+=", ast.PlusEqualsToken},
	{"-=", ast.MinusEqualsToken},
	{"{", ast.OpenBraceToken},
	{"}", ast.CloseBraceToken},
	{"(", ast.OpenParenToken},
	{")", ast.CloseParenToken},
	{"[", ast.OpenBracketToken},
	{"]", ast.CloseBracketToken},
	{".", ast.DotToken},
	{";", ast.SemicolonToken},
	{",", ast.CommaToken},
	{":", ast.ColonToken},
	{"?", ast.QuestionToken},
	{"<", ast.LessThanToken},
	{">", ast.GreaterThanToken},
	{"+", ast.PlusToken},
	{"-", ast.MinusToken},
	{"*", ast.AsteriskToken},
	{"/", ast.SlashToken},
	{"%", ast.PercentToken},
	{"&", ast.AmpersandToken},
	{"|", ast.BarToken},
	{"!", ast.ExclamationToken},
	{"=", ast.EqualsToken},
}

type scanner struct {
	src     string
	off     int
	newline bool
}

// scan splits src into tokens, dropping whitespace and comments. The last
// token is always EndOfFileToken.
func scan(src string) ([]token, error) {
	s := &scanner{src: src}
	var tokens []token
	for {
		if err := s.skipTrivia(); err != nil {
			return nil, err
		}
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		tok.newlineBefore = s.newline
		s.newline = false
		tokens = append(tokens, tok)
		if tok.kind == ast.EndOfFileToken {
			return tokens, nil
		}
	}
}

func (s *scanner) skipTrivia() error {
	for s.off < len(s.src) {
		ch := s.src[s.off]
		switch {
		case ch == '\n':
			s.newline = true
			s.off++
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v':
			s.off++
		case ch == '/' && s.peekAt(1) == '/':
			for s.off < len(s.src) && s.src[s.off] != '\n' {
				s.off++
			}
		case ch == '/' && s.peekAt(1) == '*':
			start := s.off
			s.off += 2
			for {
				if s.off+1 >= len(s.src) {
					return &offsetError{offset: start, msg: "unterminated comment"}
				}
				if s.src[s.off] == '*' && s.src[s.off+1] == '/' {
					s.off += 2
					break
				}
				if s.src[s.off] == '\n' {
					s.newline = true
				}
				s.off++
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) peekAt(n int) byte {
	if s.off+n < len(s.src) {
		return s.src[s.off+n]
	}
	return 0
}

func (s *scanner) next() (token, error) {
	start := s.off
	if s.off >= len(s.src) {
		return token{kind: ast.EndOfFileToken, pos: start, end: start}, nil
	}
	ch := s.src[s.off]
	switch {
	case isIdentStart(s.src[s.off:]):
		return s.scanIdentifier(), nil
	case ch >= '0' && ch <= '9', ch == '.' && isDigit(s.peekAt(1)):
		return s.scanNumber(), nil
	case ch == '"' || ch == '\'':
		return s.scanString(ch)
	case ch == '`':
		return s.scanTemplate()
	}
	for _, p := range punctuation {
		if len(s.src)-s.off >= len(p.text) && s.src[s.off:s.off+len(p.text)] == p.text {
			s.off += len(p.text)
			return token{kind: p.kind, pos: start, end: s.off, text: p.text}, nil
		}
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.off:])
	return token{}, &offsetError{offset: start, msg: fmt.Sprintf("unexpected character %q", r)}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(rest string) bool {
	r, _ := utf8.DecodeRuneInString(rest)
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func (s *scanner) scanIdentifier() token {
	start := s.off
	for s.off < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.off:])
		if r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		s.off += size
	}
	text := s.src[start:s.off]
	return token{kind: ast.LookupKeyword(text), pos: start, end: s.off, text: text}
}

func (s *scanner) scanNumber() token {
	start := s.off
	if s.src[s.off] == '0' && (s.peekAt(1) == 'x' || s.peekAt(1) == 'X') {
		s.off += 2
		for s.off < len(s.src) && isHexDigit(s.src[s.off]) {
			s.off++
		}
		return token{kind: ast.NumericLiteral, pos: start, end: s.off, text: s.src[start:s.off]}
	}
	for s.off < len(s.src) && isDigit(s.src[s.off]) {
		s.off++
	}
	if s.off < len(s.src) && s.src[s.off] == '.' {
		s.off++
		for s.off < len(s.src) && isDigit(s.src[s.off]) {
			s.off++
		}
	}
	if s.off < len(s.src) && (s.src[s.off] == 'e' || s.src[s.off] == 'E') {
		s.off++
		if s.off < len(s.src) && (s.src[s.off] == '+' || s.src[s.off] == '-') {
			s.off++
		}
		for s.off < len(s.src) && isDigit(s.src[s.off]) {
			s.off++
		}
	}
	return token{kind: ast.NumericLiteral, pos: start, end: s.off, text: s.src[start:s.off]}
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func (s *scanner) scanString(quote byte) (token, error) {
	start := s.off
	s.off++
	for s.off < len(s.src) {
		switch s.src[s.off] {
		case '\\':
			s.off += 2
			continue
		case '\n':
			return token{}, &offsetError{offset: start, msg: "unterminated string literal"}
		case quote:
			s.off++
			return token{kind: ast.StringLiteral, pos: start, end: s.off, text: s.src[start:s.off]}, nil
		}
		s.off++
	}
	return token{}, &offsetError{offset: start, msg: "unterminated string literal"}
}

func (s *scanner) scanTemplate() (token, error) {
	start := s.off
	s.off++
	for s.off < len(s.src) {
		switch s.src[s.off] {
		case '\\':
			s.off += 2
			continue
		case '$':
			if s.peekAt(1) == '{' {
				return token{}, &offsetError{offset: s.off, msg: "template substitutions are not supported"}
			}
		case '`':
			s.off++
			return token{kind: ast.NoSubstitutionTemplateLiteral, pos: start, end: s.off, text: s.src[start:s.off]}, nil
		}
		s.off++
	}
	return token{}, &offsetError{offset: start, msg: "unterminated template literal"}
}
