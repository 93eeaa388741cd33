package parser

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/clauf-lang/clauf/internal/ast"
	"github.com/clauf-lang/clauf/internal/compiler_errors"
	"github.com/clauf-lang/clauf/internal/lexer"
)

type UnexpectedExpectedError struct {
	Unexpected lexer.TokenKind
	Expected   lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedExpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s', expected: '%s'", e.Unexpected.String(), e.Expected.String())
}

func (e *UnexpectedExpectedError) GetFileName() string {
	return e.FileName
}

func (e *UnexpectedExpectedError) GetLine() int {
	return e.Line
}

func (e *UnexpectedExpectedError) GetColumn() int {
	return e.Column
}

func (e *UnexpectedExpectedError) GetLength() int {
	return e.Length
}

type UnexpectedExpectedManyError struct {
	Unexpected lexer.TokenKind
	Expected   []lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedExpectedManyError) GetMessage() string {
	expectedKinds := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		expectedKinds[i] = kind.String()
	}
	return fmt.Sprintf("unexpected token: '%s', expected one of: '%s'", e.Unexpected.String(), expectedKinds)
}

func (e *UnexpectedExpectedManyError) GetFileName() string {
	return e.FileName
}

func (e *UnexpectedExpectedManyError) GetLine() int {
	return e.Line
}

func (e *UnexpectedExpectedManyError) GetColumn() int {
	return e.Column
}

func (e *UnexpectedExpectedManyError) GetLength() int {
	return e.Length
}

type UnexpectedError struct {
	Unexpected lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s'", e.Unexpected.String())
}

func (e *UnexpectedError) GetFileName() string {
	return e.FileName
}

func (e *UnexpectedError) GetLine() int {
	return e.Line
}

func (e *UnexpectedError) GetColumn() int {
	return e.Column
}

func (e *UnexpectedError) GetLength() int {
	return e.Length
}

// SemanticError is recoverable: it is recorded, the unit is flagged as
// failed, and parsing continues to collect further diagnostics.
type SemanticError struct {
	message string

	fileName string
	line     int
	column   int
	length   int
}

func (se *SemanticError) GetMessage() string  { return se.message }
func (se *SemanticError) GetFileName() string { return se.fileName }
func (se *SemanticError) GetLine() int        { return se.line }
func (se *SemanticError) GetColumn() int      { return se.column }
func (se *SemanticError) GetLength() int      { return se.length }

func newSemanticError(message string, fileName string, token *lexer.Token) *SemanticError {
	return &SemanticError{
		message: message,

		fileName: fileName,
		line:     token.Metadata.Line,
		column:   token.Metadata.Column,
		length:   token.Metadata.Length,
	}
}

type Parser struct {
	fileName string

	tree    *ast.Ast
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	locals *localScope

	curr *lexer.Token
}

type opAssoc int

const (
	assocLeft opAssoc = iota
	assocRight
)

type binaryOpInfo struct {
	power int
	assoc opAssoc
}

// binaryOpLookup drives precedence climbing. Higher power binds tighter.
var binaryOpLookup map[lexer.TokenKind]binaryOpInfo = map[lexer.TokenKind]binaryOpInfo{
	lexer.COMMA:  {power: 10, assoc: assocRight},
	lexer.ASSIGN: {power: 20, assoc: assocRight},
	lexer.QMARK:  {power: 30, assoc: assocRight},

	lexer.LOR:  {power: 40, assoc: assocLeft},
	lexer.LAND: {power: 50, assoc: assocLeft},

	lexer.BOR:  {power: 60, assoc: assocLeft},
	lexer.BXOR: {power: 70, assoc: assocLeft},
	lexer.BAND: {power: 80, assoc: assocLeft},

	lexer.EQ:  {power: 90, assoc: assocLeft},
	lexer.NEQ: {power: 90, assoc: assocLeft},

	lexer.LT:  {power: 100, assoc: assocLeft},
	lexer.LEQ: {power: 100, assoc: assocLeft},
	lexer.GT:  {power: 100, assoc: assocLeft},
	lexer.GEQ: {power: 100, assoc: assocLeft},

	lexer.SHL: {power: 110, assoc: assocLeft},
	lexer.SHR: {power: 110, assoc: assocLeft},

	lexer.PLUS:  {power: 120, assoc: assocLeft},
	lexer.MINUS: {power: 120, assoc: assocLeft},

	lexer.ASTERISK: {power: 130, assoc: assocLeft},
	lexer.SLASH:    {power: 130, assoc: assocLeft},
	lexer.PERCENT:  {power: 130, assoc: assocLeft},
}

func NewParser(
	fileName string,
	tree *ast.Ast,
	scanner lexer.TokenScanner,
	eh compiler_errors.ErrorHandler,
) *Parser {
	return &Parser{
		fileName: fileName,
		tree:     tree,
		scanner:  scanner,
		eh:       eh,
		locals:   newLocalScope(),
		curr:     scanner.Read(),
	}
}

// Parse consumes 'function_def* EOF' and returns the translation unit with
// its function definitions in source order. Syntax errors abort through the
// error handler; semantic errors only flag the unit.
func (p *Parser) Parse() *ast.TranslationUnit {
	startToken := p.curr

	funcs := make([]*ast.FuncDecl, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.EOF {
		funcs = append(funcs, p.parseFunctionDefinition())
	}

	p.expect(lexer.EOF)

	return ast.Create(p.tree.Arena, &ast.TranslationUnit{
		StartToken: startToken,

		Funcs: funcs,
	})
}

func (p *Parser) parseFunctionDefinition() *ast.FuncDecl {
	p.expect(lexer.KW_INT)
	startToken := p.curr
	p.read()

	decl := p.parseDeclarator()

	// The function scope starts fresh before any body statement is parsed.
	p.locals = newLocalScope()

	body := p.parseBlockStmt()

	fnType := ast.Create(p.tree.Arena, &ast.FuncType{ReturnType: p.freshIntType()})

	if fn, ok := decl.(*funcDeclarator); ok {
		if named, ok := fn.child.(*nameDeclarator); ok {
			return ast.Create(p.tree.Arena, &ast.FuncDecl{
				StartToken: startToken,

				Name: named.name,
				Type: fnType,
				Body: body,
			})
		}
	}

	named := baseName(decl)
	p.eh.AddError(newSemanticError(
		"declarator does not name a function definition",
		p.fileName,
		named.startToken))

	return ast.Create(p.tree.Arena, &ast.FuncDecl{
		StartToken: startToken,

		Name: named.name,
		Type: fnType,
		Body: body,
	})
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curr.Kind {
	case lexer.LBRACE:
		return p.parseBlockStmt()
	case lexer.PRINT, lexer.ASSERT:
		return p.parseBuiltinStmt()
	case lexer.KW_INT:
		return p.parseDeclStmt()
	}

	return p.parseExprStmt()
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	p.expect(lexer.LBRACE)
	startToken := p.curr
	p.read()

	stmts := make([]ast.Stmt, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.RBRACE {
		stmts = append(stmts, p.parseStmt())
	}

	p.expect(lexer.RBRACE)
	p.read()

	return ast.Create(p.tree.Arena, &ast.BlockStmt{
		StartToken: startToken,

		Stmts: stmts,
	})
}

func (p *Parser) parseBuiltinStmt() *ast.BuiltinStmt {
	p.expectAny(lexer.PRINT, lexer.ASSERT)
	startToken := p.curr

	kind := ast.BuiltinPrint
	if p.curr.Kind == lexer.ASSERT {
		kind = ast.BuiltinAssert
	}
	p.read()

	expr := p.parseExpr()

	p.expect(lexer.SEMICOLON)
	p.read()

	return ast.Create(p.tree.Arena, &ast.BuiltinStmt{
		StartToken: startToken,

		Kind: kind,
		Expr: expr,
	})
}

// parseDeclStmt parses one type specifier shared by a comma-separated
// declarator list and binds the resulting declarations in source order.
func (p *Parser) parseDeclStmt() *ast.DeclStmt {
	p.expect(lexer.KW_INT)
	startToken := p.curr
	p.read()

	decls := make([]ast.Decl, 0)
	for {
		decls = append(decls, p.resolveDeclarator(p.parseDeclarator()))

		if p.curr.Kind != lexer.COMMA {
			break
		}
		p.read()
	}

	p.expect(lexer.SEMICOLON)
	p.read()

	for _, decl := range decls {
		p.bind(decl)
	}

	return ast.Create(p.tree.Arena, &ast.DeclStmt{
		StartToken: startToken,

		Decls: decls,
	})
}

func (p *Parser) bind(decl ast.Decl) {
	shadowed := p.locals.bind(decl.DeclName(), decl)
	if shadowed != nil {
		p.eh.AddError(newSemanticError(
			fmt.Sprintf("duplicate local declaration '%s'", p.tree.Symbols.Name(decl.DeclName())),
			p.fileName,
			decl.FirstToken()))
	}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()

	p.expect(lexer.SEMICOLON)
	p.read()

	return ast.Create(p.tree.Arena, &ast.ExprStmt{
		Expr: expr,
	})
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(p.parseUnaryExpr(), 0)
}

func (p *Parser) parseBinaryExpr(left ast.Expr, minPower int) ast.Expr {
	for {
		op := p.curr
		info, ok := binaryOpLookup[op.Kind]
		if !ok || info.power < minPower {
			return left
		}
		p.read()

		if op.Kind == lexer.QMARK {
			left = p.parseConditionalTail(left, info)
			continue
		}

		nextPower := info.power + 1
		if info.assoc == assocRight {
			nextPower = info.power
		}
		right := p.parseBinaryExpr(p.parseUnaryExpr(), nextPower)

		left = p.newBinaryExpr(left, op, right)
	}
}

// parseConditionalTail parses '? expr : operand' after the condition. The
// branch between '?' and ':' is a full expression; the else branch binds at
// the conditional's own level, making '?:' right-associative.
func (p *Parser) parseConditionalTail(cond ast.Expr, info binaryOpInfo) ast.Expr {
	then := p.parseExpr()

	p.expect(lexer.COLON)
	p.read()

	els := p.parseBinaryExpr(p.parseUnaryExpr(), info.power)

	return ast.Create(p.tree.Arena, &ast.ConditionalExpr{
		StartToken: cond.FirstToken(),

		Cond: cond,
		Then: then,
		Else: els,
		Type: p.freshIntType(),
	})
}

func (p *Parser) newBinaryExpr(left ast.Expr, op *lexer.Token, right ast.Expr) ast.Expr {
	switch op.Kind {
	case lexer.ASSIGN:
		if !isLvalue(left) {
			p.eh.AddError(newSemanticError(
				"left operand of '=' does not denote an assignable location",
				p.fileName,
				op))
		}

		return ast.Create(p.tree.Arena, &ast.AssignExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Right: right,
			Type:  p.freshIntType(),
		})
	case lexer.LAND, lexer.LOR, lexer.COMMA:
		return ast.Create(p.tree.Arena, &ast.SequencedBinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    sequencedOpLookup[op.Kind],
			Right: right,
			Type:  p.freshIntType(),
		})
	default:
		return ast.Create(p.tree.Arena, &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
			Type:  p.freshIntType(),
		})
	}
}

var sequencedOpLookup map[lexer.TokenKind]ast.SequencedOp = map[lexer.TokenKind]ast.SequencedOp{
	lexer.LAND:  ast.Land,
	lexer.LOR:   ast.Lor,
	lexer.COMMA: ast.Comma,
}

// isLvalue reports whether expr denotes an assignable location. Only
// identifier references qualify while the language has no pointers or
// subscripts.
func isLvalue(expr ast.Expr) bool {
	_, ok := expr.(*ast.IdentExpr)
	return ok
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.isCurrAny(lexer.PLUS, lexer.MINUS, lexer.TILDE, lexer.XMARK) {
		op := p.curr
		p.read()

		right := p.parseUnaryExpr()

		return ast.Create(p.tree.Arena, &ast.PrefixExpr{
			StartToken: op,

			Op:    op,
			Right: right,
			Type:  p.freshIntType(),
		})
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch p.curr.Kind {
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.IDENT:
		return p.parseIdentExpr()
	case lexer.INT:
		return p.parseIntegerExpr()
	}

	p.unexpected(p.curr.Kind)
	panic("unreachable")
}

func (p *Parser) parseParenExpr() ast.Expr {
	p.expect(lexer.LPAREN)
	p.read()

	expr := p.parseExpr()

	p.expect(lexer.RPAREN)
	p.read()

	return expr
}

// parseIdentExpr resolves the name against the function scope. An unknown
// identifier is reported but still produces a reference node with a nil
// declaration so the surrounding rules keep going.
func (p *Parser) parseIdentExpr() *ast.IdentExpr {
	p.expect(lexer.IDENT)
	startToken := p.curr
	name := p.tree.Symbols.Intern(p.curr.Value)
	p.read()

	decl := p.locals.lookup(name)
	if decl == nil {
		p.eh.AddError(newSemanticError(
			fmt.Sprintf("unknown identifier '%s'", startToken.Value),
			p.fileName,
			startToken))
	}

	return ast.Create(p.tree.Arena, &ast.IdentExpr{
		StartToken: startToken,

		Name: name,
		Decl: decl,
		Type: p.freshIntType(),
	})
}

func (p *Parser) parseIntegerExpr() *ast.IntExpr {
	p.expect(lexer.INT)
	startToken := p.curr

	value, err := parseIntegerLiteral(p.curr.Value)
	if err != nil {
		p.eh.AddError(newSemanticError(
			fmt.Sprintf("invalid integer constant '%s'", p.curr.Value),
			p.fileName,
			startToken))
		p.eh.FailNow()
	}
	p.read()

	return ast.Create(p.tree.Arena, &ast.IntExpr{
		StartToken: startToken,

		Value: value,
		Type:  p.freshIntType(),
	})
}

// parseIntegerLiteral decodes decimal, octal (leading 0), hex (0x/0X) and
// binary (0b/0B) literals. Tick separators are ignored for the value.
func parseIntegerLiteral(text string) (uint64, error) {
	digits := strings.ReplaceAll(text, "'", "")

	base := 10
	switch {
	case strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X"):
		digits, base = digits[2:], 16
	case strings.HasPrefix(digits, "0b") || strings.HasPrefix(digits, "0B"):
		digits, base = digits[2:], 2
	case len(digits) > 1 && digits[0] == '0':
		digits, base = digits[1:], 8
	}

	return strconv.ParseUint(digits, base, 64)
}

// freshIntType allocates a new builtin int instance. Every expression and
// declaration gets its own type node; the placeholder typing policy is the
// extension point for a real type system.
func (p *Parser) freshIntType() ast.TypeNode {
	return ast.Create(p.tree.Arena, &ast.BuiltinType{Kind: ast.IntKind})
}

func (p *Parser) read() *lexer.Token {
	p.curr = p.scanner.Read()
	return p.curr
}

func (p *Parser) unread() *lexer.Token {
	p.curr = p.scanner.Unread()
	return p.curr
}

func (p *Parser) expect(kind lexer.TokenKind) {
	if p.curr.Kind != kind {
		p.eh.AddError(&UnexpectedExpectedError{
			Unexpected: p.curr.Kind,
			Expected:   kind,

			FileName: p.fileName,
			Line:     p.curr.Metadata.Line,
			Column:   p.curr.Metadata.Column,
			Length:   p.curr.Metadata.Length,
		})
		p.eh.FailNow()
	}
}

func (p *Parser) expectAny(kinds ...lexer.TokenKind) {
	found := p.isCurrAny(kinds...)
	if found {
		return
	}

	p.eh.AddError(&UnexpectedExpectedManyError{
		Unexpected: p.curr.Kind,
		Expected:   kinds,

		FileName: p.fileName,
		Line:     p.curr.Metadata.Line,
		Column:   p.curr.Metadata.Column,
		Length:   p.curr.Metadata.Length,
	})
	p.eh.FailNow()
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) unexpected(kind lexer.TokenKind) {
	p.eh.AddError(&UnexpectedError{
		Unexpected: kind,

		FileName: p.fileName,
		Line:     p.curr.Metadata.Line,
		Column:   p.curr.Metadata.Column,
		Length:   p.curr.Metadata.Length,
	})
	p.eh.FailNow()
}
