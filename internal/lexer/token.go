package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota

	INT

	IDENT

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	PERCENT  // %

	ASSIGN // =

	BAND  // &
	BOR   // |
	BXOR  // ^
	SHR   // >>
	SHL   // <<
	TILDE // ~

	LAND // &&
	LOR  // ||

	EQ  // ==
	NEQ // !=
	LT  // <
	LEQ // <=
	GT  // >
	GEQ // >=

	XMARK // !
	QMARK // ?
	COLON // :

	LPAREN // (
	LBRACE // {

	RPAREN // )
	RBRACE // }

	SEMICOLON // ;
	COMMA     // ,

	KW_INT
	PRINT
	ASSERT

	ONELINE_COMMENT
	MULTILINE_COMMENT
)

var keywordLookup map[string]TokenKind = map[string]TokenKind{
	"int":            KW_INT,
	"__clauf_print":  PRINT,
	"__clauf_assert": ASSERT,
}

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case INT:
		return "INT"
	case IDENT:
		return "IDENT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case PERCENT:
		return "PERCENT"
	case ASSIGN:
		return "ASSIGN"
	case BAND:
		return "BAND"
	case BOR:
		return "BOR"
	case BXOR:
		return "BXOR"
	case SHR:
		return "SHR"
	case SHL:
		return "SHL"
	case TILDE:
		return "TILDE"
	case LAND:
		return "LAND"
	case LOR:
		return "LOR"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case LEQ:
		return "LEQ"
	case GT:
		return "GT"
	case GEQ:
		return "GEQ"
	case XMARK:
		return "XMARK"
	case QMARK:
		return "QMARK"
	case COLON:
		return "COLON"
	case LPAREN:
		return "LPAREN"
	case LBRACE:
		return "LBRACE"
	case RPAREN:
		return "RPAREN"
	case RBRACE:
		return "RBRACE"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	case KW_INT:
		return "KW_INT"
	case PRINT:
		return "PRINT"
	case ASSERT:
		return "ASSERT"
	case ONELINE_COMMENT:
		return "ONELINE_COMMENT"
	case MULTILINE_COMMENT:
		return "MULTILINE_COMMENT"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

type TokenMetadata struct {
	Line   int
	Column int
	Length int
}

type Token struct {
	Kind  TokenKind
	Value string

	Metadata TokenMetadata
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case INT, IDENT:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}
