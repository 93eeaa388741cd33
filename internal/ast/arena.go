package ast

// Arena owns every node of one compilation. Nodes are registered at creation
// and reclaimed together when the Ast is dropped; nothing is freed
// individually.
type Arena struct {
	nodes []any
	root  *TranslationUnit
}

func NewArena() *Arena {
	return &Arena{
		nodes: make([]any, 0),
	}
}

// Create registers a freshly constructed node under arena ownership and
// returns it.
func Create[T any](a *Arena, node T) T {
	a.nodes = append(a.nodes, node)
	return node
}

// SetRoot installs the single top-level node. Setting it twice is a
// programmer error.
func (a *Arena) SetRoot(tu *TranslationUnit) {
	if a.root != nil {
		panic("Arena.SetRoot(): root already set")
	}
	a.root = tu
}

func (a *Arena) Root() *TranslationUnit {
	return a.root
}

func (a *Arena) NodeCount() int {
	return len(a.nodes)
}
