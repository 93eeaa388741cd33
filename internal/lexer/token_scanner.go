package lexer

type TokenScanner interface {
	Read() *Token
	Unread() *Token
	HasTokens() bool
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Read() *Token {
	if s.pos >= len(s.tokens) {
		return &s.tokens[len(s.tokens)-1]
	}

	token := &s.tokens[s.pos]
	s.pos++

	return token
}

// Unread backs up one token and returns the token that becomes current.
func (s *SimpleTokenScanner) Unread() *Token {
	s.pos--

	return &s.tokens[s.pos-1]
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)
}
