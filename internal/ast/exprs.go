package ast

import "github.com/clauf-lang/clauf/internal/lexer"

type IntExpr struct {
	StartToken *lexer.Token

	Value uint64
	Type  TypeNode
}

// IdentExpr references the declaration the name resolved to. Decl is nil when
// resolution failed; the unit error flag is set in that case and the node only
// exists so parsing can continue.
type IdentExpr struct {
	StartToken *lexer.Token

	Name Symbol
	Decl Decl
	Type TypeNode
}

type PrefixExpr struct {
	StartToken *lexer.Token

	Op    *lexer.Token
	Right Expr
	Type  TypeNode
}

type BinaryExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Op    *lexer.Token
	Right Expr
	Type  TypeNode
}

type SequencedOp int

const (
	Land SequencedOp = iota
	Lor
	Comma
)

// SequencedBinaryExpr is kept apart from BinaryExpr because its operators
// carry evaluation-order guarantees ('&&'/'||' short-circuit, ',' sequences
// left to right) that an evaluation stage must honor.
type SequencedBinaryExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Op    SequencedOp
	Right Expr
	Type  TypeNode
}

type ConditionalExpr struct {
	StartToken *lexer.Token

	Cond Expr
	Then Expr
	Else Expr
	Type TypeNode
}

type AssignExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Right Expr
	Type  TypeNode
}

func (e *IntExpr) AstNode()             {}
func (e *IdentExpr) AstNode()           {}
func (e *PrefixExpr) AstNode()          {}
func (e *BinaryExpr) AstNode()          {}
func (e *SequencedBinaryExpr) AstNode() {}
func (e *ConditionalExpr) AstNode()     {}
func (e *AssignExpr) AstNode()          {}

func (e *IntExpr) FirstToken() *lexer.Token             { return e.StartToken }
func (e *IdentExpr) FirstToken() *lexer.Token           { return e.StartToken }
func (e *PrefixExpr) FirstToken() *lexer.Token          { return e.StartToken }
func (e *BinaryExpr) FirstToken() *lexer.Token          { return e.StartToken }
func (e *SequencedBinaryExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *ConditionalExpr) FirstToken() *lexer.Token     { return e.StartToken }
func (e *AssignExpr) FirstToken() *lexer.Token          { return e.StartToken }

func (e *IntExpr) ExprNode()             {}
func (e *IdentExpr) ExprNode()           {}
func (e *PrefixExpr) ExprNode()          {}
func (e *BinaryExpr) ExprNode()          {}
func (e *SequencedBinaryExpr) ExprNode() {}
func (e *ConditionalExpr) ExprNode()     {}
func (e *AssignExpr) ExprNode()          {}

func (e *IntExpr) ExprType() TypeNode             { return e.Type }
func (e *IdentExpr) ExprType() TypeNode           { return e.Type }
func (e *PrefixExpr) ExprType() TypeNode          { return e.Type }
func (e *BinaryExpr) ExprType() TypeNode          { return e.Type }
func (e *SequencedBinaryExpr) ExprType() TypeNode { return e.Type }
func (e *ConditionalExpr) ExprType() TypeNode     { return e.Type }
func (e *AssignExpr) ExprType() TypeNode          { return e.Type }
