package lexer

import (
	"fmt"

	"github.com/clauf-lang/clauf/internal/compiler_errors"
)

type LexerError struct {
	Message string

	FileName string
	Line     int
	Column   int
}

func newUnexpectedError(fileName string, line, column int, unexpected byte) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unexpected character: '%s'", string(unexpected)),

		FileName: fileName,
		Line:     line,
		Column:   column,
	}
}

func newExpectedError(fileName string, line, column int, expected string) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("expected '%s'", expected),

		FileName: fileName,
		Line:     line,
		Column:   column,
	}
}

func (e *LexerError) GetMessage() string  { return e.Message }
func (e *LexerError) GetFileName() string { return e.FileName }
func (e *LexerError) GetLine() int        { return e.Line }
func (e *LexerError) GetColumn() int      { return e.Column }
func (e *LexerError) GetLength() int      { return 1 }

type Lexer struct {
	fileName string

	buf []byte
	pos int

	line      int
	lineStart int

	eh compiler_errors.ErrorHandler
}

func NewLexer(fileName string, buf []byte, eh compiler_errors.ErrorHandler) *Lexer {
	return &Lexer{
		fileName: fileName,

		buf: buf,
		pos: 0,

		line:      1,
		lineStart: 0,

		eh: eh,
	}
}

func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0)

	for l.hasChars() {
		if l.isCurrSkippable() {
			if l.isCurrNewline() {
				l.line++
				l.lineStart = l.pos + 1
			}
			l.advance()
			continue
		}

		startPos := l.pos
		startLine := l.line
		startColumn := l.column()

		var token Token
		switch {
		case l.isCurrDigit():
			token = l.processNumber()

		case l.isCurrIdentifier():
			token = l.processIdentifier()

		case l.isCurrPunctuation():
			token = l.processPunctuation()

		default:
			l.eh.AddError(newUnexpectedError(l.fileName, l.line, l.column(), l.read()))
			l.eh.FailNow()
		}

		token.Metadata = TokenMetadata{
			Line:   startLine,
			Column: startColumn,
			Length: l.pos - startPos + 1,
		}
		tokens = append(tokens, token)

		l.advance()
	}

	tokens = append(tokens, Token{
		Kind:  EOF,
		Value: EOF.String(),
		Metadata: TokenMetadata{
			Line:   l.line,
			Column: l.column(),
		},
	})

	return tokens
}

func (l *Lexer) isCurrIdentifier() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z') || l.read() == '_'
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~', '(', ')', '{', '}', ':', ';', ',', '?':
		return true
	}
	return false
}

func (l *Lexer) isCurrNewline() bool {
	return l.read() == '\n'
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	identifierBuf := make([]byte, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrIdentifier() && !l.isCurrDigit() {
			l.unread()
			break
		}

		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	if !l.hasChars() {
		l.unread()
	}
	identifier := string(identifierBuf)

	if kind, isKeyword := keywordLookup[identifier]; isKeyword {
		return Token{
			Kind:  kind,
			Value: identifier,
		}
	}

	return Token{
		Kind:  IDENT,
		Value: identifier,
	}
}

// processNumber consumes the raw literal text including a radix prefix, hex
// digits and tick separators. Value decoding happens in the parser, which owns
// the radix rules.
func (l *Lexer) processNumber() Token {
	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrDigit() && !l.isCurrIdentifier() && l.read() != '\'' {
			l.unread()
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}
	if !l.hasChars() {
		l.unread()
	}

	return Token{
		Kind:  INT,
		Value: string(numberBuf),
	}
}

func (l *Lexer) processOneLineComment() Token {
	content := make([]byte, 0)

	l.advance()
	for l.hasChars() {
		if l.read() == '\n' {
			l.unread()
			break
		}

		content = append(content, l.read())
		l.advance()
	}
	if !l.hasChars() {
		l.unread()
	}

	return Token{
		Kind:  ONELINE_COMMENT,
		Value: string(content),
	}
}

func (l *Lexer) processMultiLineComment() Token {
	content := make([]byte, 0)

	l.advance()
	for {
		if !l.hasChars() {
			l.eh.AddError(newExpectedError(l.fileName, l.line, l.column(), "*/"))
			l.eh.FailNow()
		}

		if l.read() == '*' {
			l.advance()
			if !l.hasChars() {
				l.eh.AddError(newExpectedError(l.fileName, l.line, l.column(), "*/"))
				l.eh.FailNow()
			}

			if l.read() == '/' {
				break
			}

			l.unread()
		}

		if l.isCurrNewline() {
			l.line++
			l.lineStart = l.pos + 1
		}

		content = append(content, l.read())
		l.advance()
	}

	return Token{
		Kind:  MULTILINE_COMMENT,
		Value: string(content),
	}
}

func (l *Lexer) processSlash() Token {
	l.advance()
	if !l.hasChars() {
		l.unread()
		return Token{
			Kind:  SLASH,
			Value: "/",
		}
	}

	if l.read() == '/' {
		return l.processOneLineComment()
	}

	if l.read() == '*' {
		return l.processMultiLineComment()
	}

	l.unread()
	return Token{
		Kind:  SLASH,
		Value: "/",
	}
}

func (l *Lexer) processEquals() Token {
	l.advance()
	if !l.hasChars() {
		l.unread()
		return Token{
			Kind:  ASSIGN,
			Value: "=",
		}
	}

	if l.read() == '=' {
		return Token{
			Kind:  EQ,
			Value: "==",
		}
	}

	l.unread()
	return Token{
		Kind:  ASSIGN,
		Value: "=",
	}
}

func (l *Lexer) processAmpersand() Token {
	l.advance()
	if !l.hasChars() {
		l.unread()
		return Token{
			Kind:  BAND,
			Value: "&",
		}
	}

	if l.read() == '&' {
		return Token{
			Kind:  LAND,
			Value: "&&",
		}
	}

	l.unread()
	return Token{
		Kind:  BAND,
		Value: "&",
	}
}

func (l *Lexer) processPipe() Token {
	l.advance()
	if !l.hasChars() {
		l.unread()
		return Token{
			Kind:  BOR,
			Value: "|",
		}
	}

	if l.read() == '|' {
		return Token{
			Kind:  LOR,
			Value: "||",
		}
	}

	l.unread()
	return Token{
		Kind:  BOR,
		Value: "|",
	}
}

// processGreaterThan prefers the longer operator: '>>' wins over two
// relational '>' tokens, '>=' over '>'.
func (l *Lexer) processGreaterThan() Token {
	l.advance()
	if !l.hasChars() {
		l.unread()
		return Token{
			Kind:  GT,
			Value: ">",
		}
	}

	if l.read() == '>' {
		return Token{
			Kind:  SHR,
			Value: ">>",
		}
	}

	if l.read() == '=' {
		return Token{
			Kind:  GEQ,
			Value: ">=",
		}
	}

	l.unread()
	return Token{
		Kind:  GT,
		Value: ">",
	}
}

func (l *Lexer) processLessThan() Token {
	l.advance()
	if !l.hasChars() {
		l.unread()
		return Token{
			Kind:  LT,
			Value: "<",
		}
	}

	if l.read() == '<' {
		return Token{
			Kind:  SHL,
			Value: "<<",
		}
	}

	if l.read() == '=' {
		return Token{
			Kind:  LEQ,
			Value: "<=",
		}
	}

	l.unread()
	return Token{
		Kind:  LT,
		Value: "<",
	}
}

func (l *Lexer) processExclamationMark() Token {
	l.advance()
	if !l.hasChars() {
		l.unread()
		return Token{
			Kind:  XMARK,
			Value: "!",
		}
	}

	if l.read() == '=' {
		return Token{
			Kind:  NEQ,
			Value: "!=",
		}
	}

	l.unread()
	return Token{
		Kind:  XMARK,
		Value: "!",
	}
}

func (l *Lexer) processPunctuation() Token {
	switch l.read() {
	case '+':
		return Token{
			Kind:  PLUS,
			Value: "+",
		}
	case '-':
		return Token{
			Kind:  MINUS,
			Value: "-",
		}
	case '*':
		return Token{
			Kind:  ASTERISK,
			Value: "*",
		}
	case '/':
		return l.processSlash()
	case '%':
		return Token{
			Kind:  PERCENT,
			Value: "%",
		}
	case '=':
		return l.processEquals()
	case '&':
		return l.processAmpersand()
	case '|':
		return l.processPipe()
	case '^':
		return Token{
			Kind:  BXOR,
			Value: "^",
		}
	case '~':
		return Token{
			Kind:  TILDE,
			Value: "~",
		}
	case '>':
		return l.processGreaterThan()
	case '<':
		return l.processLessThan()
	case '!':
		return l.processExclamationMark()
	case '?':
		return Token{
			Kind:  QMARK,
			Value: "?",
		}
	case ':':
		return Token{
			Kind:  COLON,
			Value: ":",
		}
	case '(':
		return Token{
			Kind:  LPAREN,
			Value: "(",
		}
	case '{':
		return Token{
			Kind:  LBRACE,
			Value: "{",
		}
	case ')':
		return Token{
			Kind:  RPAREN,
			Value: ")",
		}
	case '}':
		return Token{
			Kind:  RBRACE,
			Value: "}",
		}
	case ';':
		return Token{
			Kind:  SEMICOLON,
			Value: ";",
		}
	case ',':
		return Token{
			Kind:  COMMA,
			Value: ",",
		}
	}

	panic("unreachable")
}

func (l *Lexer) column() int {
	return l.pos - l.lineStart + 1
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance() { l.pos++ }
func (l *Lexer) read() byte {
	return l.buf[l.pos]
}
func (l *Lexer) unread() { l.pos-- }
