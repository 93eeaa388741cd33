package ast

import "github.com/clauf-lang/clauf/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Ast bundles the interner and the arena of one compilation. One instance per
// compile call; instances are never shared between calls.
type Ast struct {
	Symbols *SymbolInterner
	Arena   *Arena
}

func New() *Ast {
	return &Ast{
		Symbols: NewSymbolInterner(),
		Arena:   NewArena(),
	}
}

func (a *Ast) Root() *TranslationUnit {
	return a.Arena.Root()
}

type TranslationUnit struct {
	StartToken *lexer.Token

	Funcs []*FuncDecl
}

type Stmt interface {
	AstNode
	StmtNode()
}

type Expr interface {
	AstNode
	ExprNode()
	ExprType() TypeNode
}

type Decl interface {
	AstNode
	DeclNode()
	DeclName() Symbol
	DeclType() TypeNode
}

func (tu *TranslationUnit) AstNode() {}
func (tu *TranslationUnit) FirstToken() *lexer.Token {
	return tu.StartToken
}
