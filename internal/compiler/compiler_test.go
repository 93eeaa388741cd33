package compiler

import (
	"io"
	"strings"
	"testing"

	"github.com/clauf-lang/clauf/internal/ast"
	"github.com/clauf-lang/clauf/internal/compiler_errors"
	"github.com/sanity-io/litter"
)

const validProgram = `
// two functions exercising most of the grammar
int first() {
	int x, y;
	x = 1 + 2 * 3;
	y = (x << 2) / 2;
	__clauf_print x, y;
}

/* the scope of 'first' is gone here */
int second() {
	int x;
	x = 0x1F;
	__clauf_assert x == 31;
	__clauf_assert 1 ? 1 : 0;
}
`

func compileSource(t *testing.T, src string) (*ast.Ast, *compiler_errors.CompilerErrorHandler) {
	t.Helper()

	eh := compiler_errors.NewErrorHandler(io.Discard)
	return Compile("test.c", []byte(src), eh), eh
}

func TestCompileValidProgram(t *testing.T) {
	tree, eh := compileSource(t, validProgram)

	if tree == nil {
		t.Fatalf("expected a result, got errors: %v", eh.Errors())
	}
	if eh.Errored() {
		t.Fatalf("unexpected errors: %v", eh.Errors())
	}

	unit := tree.Root()
	if unit == nil {
		t.Fatal("result should carry its root translation unit")
	}
	if len(unit.Funcs) != 2 {
		t.Fatalf("got %d functions, want 2", len(unit.Funcs))
	}
	for i, name := range []string{"first", "second"} {
		if got := tree.Symbols.Name(unit.Funcs[i].Name); got != name {
			t.Errorf("function %d named %q, want %q", i, got, name)
		}
	}
	if tree.Arena.NodeCount() == 0 {
		t.Error("arena should own the nodes of the compilation")
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	first, _ := compileSource(t, validProgram)
	second, _ := compileSource(t, validProgram)

	if first == nil || second == nil {
		t.Fatal("expected both runs to succeed")
	}

	a := litter.Sdump(first.Root())
	b := litter.Sdump(second.Root())
	if a != b {
		t.Error("two compilations of the same source should dump identically")
	}
}

func TestCompileEmptySource(t *testing.T) {
	tree, eh := compileSource(t, "")

	if tree == nil {
		t.Fatalf("empty source should compile, got errors: %v", eh.Errors())
	}
	if len(tree.Root().Funcs) != 0 {
		t.Errorf("got %d functions, want 0", len(tree.Root().Funcs))
	}
}

// Any error severity diagnostic withholds the result, even when the tree was
// structurally complete.
func TestCompileWithholdsResultOnError(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{
			"duplicate declaration",
			"int f() { int x; int x; }",
			"duplicate local declaration 'x'",
		},
		{
			"unknown identifier",
			"int f() { y = 1; }",
			"unknown identifier 'y'",
		},
		{
			"invalid declarator",
			"int f() { int g()(); }",
			"function cannot return function",
		},
		{
			"invalid assignment target",
			"int f() { 1 = 2; }",
			"assignable",
		},
		{
			"declarator without function marker",
			"int f { }",
			"does not name a function definition",
		},
		{
			"syntax error",
			"int f() { 1 + ; }",
			"unexpected token",
		},
		{
			"invalid integer constant",
			"int f() { __clauf_print 09; }",
			"invalid integer constant",
		},
		{
			"unterminated comment",
			"int f() { } /* trailing",
			"expected '*/'",
		},
		{
			"stray character",
			"int f() { @ }",
			"unexpected character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, eh := compileSource(t, tt.src)

			if tree != nil {
				t.Fatal("expected no result")
			}
			if !eh.Errored() {
				t.Fatal("expected a recorded error")
			}
			if got := eh.Errors()[0].GetMessage(); !strings.Contains(got, tt.message) {
				t.Errorf("error message %q does not mention %q", got, tt.message)
			}
		})
	}
}

// Semantic errors are recoverable, so several of them can be collected in a
// single run before the result is withheld.
func TestCompileCollectsSemanticErrors(t *testing.T) {
	tree, eh := compileSource(t, `
int f() {
	int x;
	int x;
	y = 1;
}
`)

	if tree != nil {
		t.Fatal("expected no result")
	}
	if got := len(eh.Errors()); got != 2 {
		t.Fatalf("got %d errors, want 2: %v", got, eh.Errors())
	}
}

func TestCompileScopesDoNotLeakAcrossFunctions(t *testing.T) {
	tree, eh := compileSource(t, `
int first() {
	int shared;
	shared = 1;
}

int second() {
	shared = 2;
}
`)

	if tree != nil {
		t.Fatal("expected no result")
	}
	if got := eh.Errors()[0].GetMessage(); !strings.Contains(got, "unknown identifier 'shared'") {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestCompileFiltersComments(t *testing.T) {
	tree, eh := compileSource(t, `
int /* inline */ f() {
	// declaration below
	int x;
	x = /* value */ 1;
}
`)

	if tree == nil {
		t.Fatalf("expected a result, got errors: %v", eh.Errors())
	}
}

func TestCompileIntrinsicStatement(t *testing.T) {
	tree, _ := compileSource(t, "int f() { __clauf_assert 1 == 1; }")

	if tree == nil {
		t.Fatal("expected a result")
	}

	body := tree.Root().Funcs[0].Body
	stmt, ok := body.Stmts[0].(*ast.BuiltinStmt)
	if !ok {
		t.Fatalf("expected BuiltinStmt, got %T", body.Stmts[0])
	}
	if stmt.Kind != ast.BuiltinAssert {
		t.Error("expected an assert builtin")
	}
	if _, ok := stmt.Expr.(*ast.BinaryExpr); !ok {
		t.Errorf("assert argument should be a BinaryExpr, got %T", stmt.Expr)
	}
}
