package parser

import "github.com/clauf-lang/clauf/internal/ast"

// localScope holds the bindings of one function. Blocks do not open nested
// scopes: every declaration in a function body, at any nesting depth,
// competes for this one table. The parser replaces it when a function
// definition reaches its body.
type localScope struct {
	bindings map[ast.Symbol]ast.Decl
}

func newLocalScope() *localScope {
	return &localScope{
		bindings: make(map[ast.Symbol]ast.Decl),
	}
}

// bind installs decl and returns the previously bound declaration, if any.
// The new binding always wins so later lookups resolve deterministically;
// the caller decides whether shadowing is an error.
func (s *localScope) bind(name ast.Symbol, decl ast.Decl) ast.Decl {
	shadowed := s.bindings[name]
	s.bindings[name] = decl
	return shadowed
}

func (s *localScope) lookup(name ast.Symbol) ast.Decl {
	return s.bindings[name]
}
