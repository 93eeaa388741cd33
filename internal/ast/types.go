package ast

import "fmt"

type TypeNode interface {
	TypeNode()
	TypeName() string
}

type BuiltinTypeKind int

const (
	IntKind BuiltinTypeKind = iota
)

type BuiltinType struct {
	Kind BuiltinTypeKind
}

type FuncType struct {
	ReturnType TypeNode
}

func (*BuiltinType) TypeNode() {}
func (*FuncType) TypeNode()    {}

func (t *BuiltinType) TypeName() string {
	switch t.Kind {
	case IntKind:
		return "int"
	default:
		panic(fmt.Sprintf("BuiltinType.TypeName(): received illegal type kind: %d", t.Kind))
	}
}

func (t *FuncType) TypeName() string {
	return fmt.Sprintf("%s()", t.ReturnType.TypeName())
}
