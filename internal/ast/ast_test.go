package ast

import "testing"

func TestSymbolInterner(t *testing.T) {
	si := NewSymbolInterner()

	x := si.Intern("x")
	y := si.Intern("y")
	if x == y {
		t.Error("distinct names must intern to distinct symbols")
	}

	if again := si.Intern("x"); again != x {
		t.Errorf("interning \"x\" twice gave %d then %d", x, again)
	}

	if got := si.Name(x); got != "x" {
		t.Errorf("Name(%d) = %q, want \"x\"", x, got)
	}
	if got := si.Name(y); got != "y" {
		t.Errorf("Name(%d) = %q, want \"y\"", y, got)
	}
}

func TestArenaOwnsNodes(t *testing.T) {
	arena := NewArena()

	node := Create(arena, &IntExpr{Value: 7})
	if node == nil || node.Value != 7 {
		t.Fatal("Create should return the registered node")
	}
	Create(arena, &BuiltinType{Kind: IntKind})

	if got := arena.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
}

func TestArenaRootSetOnce(t *testing.T) {
	arena := NewArena()
	if arena.Root() != nil {
		t.Fatal("fresh arena should have no root")
	}

	tu := Create(arena, &TranslationUnit{})
	arena.SetRoot(tu)
	if arena.Root() != tu {
		t.Fatal("Root() should return the installed translation unit")
	}

	defer func() {
		if recover() == nil {
			t.Error("setting the root twice should panic")
		}
	}()
	arena.SetRoot(tu)
}
