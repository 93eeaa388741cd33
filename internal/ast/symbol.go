package ast

// Symbol is an interned identifier. Two symbols compare equal exactly when
// their source text is equal, so scope lookups never compare strings.
type Symbol int32

type SymbolInterner struct {
	symbols map[string]Symbol
	names   []string
}

func NewSymbolInterner() *SymbolInterner {
	return &SymbolInterner{
		symbols: make(map[string]Symbol),
		names:   make([]string, 0),
	}
}

func (si *SymbolInterner) Intern(text string) Symbol {
	if sym, ok := si.symbols[text]; ok {
		return sym
	}

	sym := Symbol(len(si.names))
	si.names = append(si.names, text)
	si.symbols[text] = sym

	return sym
}

func (si *SymbolInterner) Name(sym Symbol) string {
	return si.names[sym]
}
