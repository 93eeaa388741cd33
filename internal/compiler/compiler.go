package compiler

import (
	"github.com/clauf-lang/clauf/internal/ast"
	"github.com/clauf-lang/clauf/internal/compiler_errors"
	"github.com/clauf-lang/clauf/internal/lexer"
	"github.com/clauf-lang/clauf/internal/parser"
)

// Compile runs the front end over src and returns the AST, or nil when the
// parse failed or any error severity diagnostic was recorded. A structurally
// complete tree built alongside semantic errors is discarded on purpose:
// callers must not infer success from anything but a non-nil result.
//
// Every call gets its own interner, arena and scope table. Nothing is shared
// between calls, so concurrent compilations need one handler and one call
// each, nothing more.
func Compile(fileName string, src []byte, eh compiler_errors.ErrorHandler) (result *ast.Ast) {
	// Syntax errors abort via ErrFailNow; this is the only recovery point.
	defer func() {
		if r := recover(); r != nil {
			if r != compiler_errors.ErrFailNow {
				panic(r)
			}
			result = nil
		}
	}()

	tree := ast.New()

	tokens := lexer.NewLexer(fileName, src, eh).Tokenize()
	sanitizedTokens := make([]lexer.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == lexer.ONELINE_COMMENT || token.Kind == lexer.MULTILINE_COMMENT {
			continue
		}

		sanitizedTokens = append(sanitizedTokens, token)
	}

	p := parser.NewParser(fileName, tree, lexer.NewTokenScanner(sanitizedTokens), eh)
	translationUnit := p.Parse()

	if eh.Errored() {
		return nil
	}

	tree.Arena.SetRoot(translationUnit)
	return tree
}
