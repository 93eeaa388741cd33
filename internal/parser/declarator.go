package parser

import (
	"github.com/clauf-lang/clauf/internal/ast"
	"github.com/clauf-lang/clauf/internal/lexer"
)

// The declarator tree is ephemeral: it exists while a single declaration is
// parsed and is discarded once resolved into concrete declarations. Nothing
// in the AST ever references it.
type declarator interface {
	declaratorNode()
}

type nameDeclarator struct {
	startToken *lexer.Token
	name       ast.Symbol
}

// funcDeclarator marks its child as naming a function. No parameter list is
// supported.
type funcDeclarator struct {
	child declarator
}

func (*nameDeclarator) declaratorNode() {}
func (*funcDeclarator) declaratorNode() {}

// baseName unwraps a declarator chain down to the name it is built on. Every
// chain bottoms out at a name, the atom grammar guarantees that.
func baseName(decl declarator) *nameDeclarator {
	for {
		switch d := decl.(type) {
		case *nameDeclarator:
			return d
		case *funcDeclarator:
			decl = d.child
		}
	}
}

// parseDeclarator parses 'atom postfix*' where atom is a name or a
// parenthesized declarator and the only postfix is the '()' function marker.
func (p *Parser) parseDeclarator() declarator {
	var decl declarator
	switch p.curr.Kind {
	case lexer.IDENT:
		decl = &nameDeclarator{
			startToken: p.curr,
			name:       p.tree.Symbols.Intern(p.curr.Value),
		}
		p.read()
	case lexer.LPAREN:
		p.read()
		decl = p.parseDeclarator()
		p.expect(lexer.RPAREN)
		p.read()
	default:
		p.expectAny(lexer.IDENT, lexer.LPAREN)
		panic("unreachable")
	}

	for p.curr.Kind == lexer.LPAREN {
		p.read()
		p.expect(lexer.RPAREN)
		p.read()
		decl = &funcDeclarator{child: decl}
	}

	return decl
}

// resolveDeclarator turns a parsed declarator into a concrete declaration.
// Each declaration in a comma-separated list gets its own independently
// allocated type node even though the list shares one type specifier.
func (p *Parser) resolveDeclarator(decl declarator) ast.Decl {
	switch d := decl.(type) {
	case *nameDeclarator:
		return ast.Create(p.tree.Arena, &ast.VarDecl{
			StartToken: d.startToken,

			Name: d.name,
			Type: p.freshIntType(),
		})
	case *funcDeclarator:
		named, ok := d.child.(*nameDeclarator)
		if !ok {
			named = baseName(d)
			p.eh.AddError(newSemanticError(
				"function cannot return function",
				p.fileName,
				named.startToken))
		}

		fnType := ast.Create(p.tree.Arena, &ast.FuncType{ReturnType: p.freshIntType()})
		return ast.Create(p.tree.Arena, &ast.FuncDecl{
			StartToken: named.startToken,

			Name: named.name,
			Type: fnType,
		})
	default:
		panic("unreachable")
	}
}
