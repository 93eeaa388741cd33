package ast

import "github.com/clauf-lang/clauf/internal/lexer"

type BlockStmt struct {
	StartToken *lexer.Token

	Stmts []Stmt
}

// DeclStmt wraps the declarations introduced at this point, in source order.
type DeclStmt struct {
	StartToken *lexer.Token

	Decls []Decl
}

type ExprStmt struct {
	Expr Expr
}

type BuiltinKind int

const (
	BuiltinPrint BuiltinKind = iota
	BuiltinAssert
)

type BuiltinStmt struct {
	StartToken *lexer.Token

	Kind BuiltinKind
	Expr Expr
}

func (s *BlockStmt) AstNode()   {}
func (d *DeclStmt) AstNode()    {}
func (e *ExprStmt) AstNode()    {}
func (b *BuiltinStmt) AstNode() {}

func (s *BlockStmt) FirstToken() *lexer.Token   { return s.StartToken }
func (d *DeclStmt) FirstToken() *lexer.Token    { return d.StartToken }
func (e *ExprStmt) FirstToken() *lexer.Token    { return e.Expr.FirstToken() }
func (b *BuiltinStmt) FirstToken() *lexer.Token { return b.StartToken }

func (s *BlockStmt) StmtNode()   {}
func (d *DeclStmt) StmtNode()    {}
func (e *ExprStmt) StmtNode()    {}
func (b *BuiltinStmt) StmtNode() {}
