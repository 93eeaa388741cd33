package ast

import "github.com/clauf-lang/clauf/internal/lexer"

type VarDecl struct {
	StartToken *lexer.Token

	Name Symbol
	Type TypeNode
}

// FuncDecl is both declaration and definition; the grammar has no separate
// prototype form. Body is nil only for the skeleton a declarator list
// produces.
type FuncDecl struct {
	StartToken *lexer.Token

	Name Symbol
	Type *FuncType
	Body *BlockStmt
}

func (v *VarDecl) AstNode()  {}
func (f *FuncDecl) AstNode() {}

func (v *VarDecl) FirstToken() *lexer.Token  { return v.StartToken }
func (f *FuncDecl) FirstToken() *lexer.Token { return f.StartToken }

func (v *VarDecl) DeclNode()  {}
func (f *FuncDecl) DeclNode() {}

func (v *VarDecl) DeclName() Symbol  { return v.Name }
func (f *FuncDecl) DeclName() Symbol { return f.Name }

func (v *VarDecl) DeclType() TypeNode  { return v.Type }
func (f *FuncDecl) DeclType() TypeNode { return f.Type }
