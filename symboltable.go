package main

// SymbolEntry represents a variable known to the translator
type SymbolEntry struct {
	Name       string
	Type       InferredType
	ScopeDepth int
	// Declared is set once the C declaration has been emitted.
	Declared bool
}

// Scope maps names declared in one block to their entries.
type Scope struct {
	symbols map[string]*SymbolEntry
	order   []string
}

func newScope() *Scope {
	return &Scope{symbols: make(map[string]*SymbolEntry)}
}

// Names returns the names declared in this scope in declaration order.
func (s *Scope) Names() []string {
	return s.order
}

// SymbolTable is a stack of scopes. Index 0 is the function body.
type SymbolTable struct {
	scopes []*Scope
}

// NewSymbolTable creates a symbol table holding the outermost scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []*Scope{newScope()}}
}

// EnterScope pushes a new, empty scope.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, newScope())
}

// ExitScope pops the innermost scope, dropping everything declared in it.
//
// Panics when asked to pop the outermost scope.
func (st *SymbolTable) ExitScope() {
	if len(st.scopes) == 1 {
		panic("ExitScope called on the outermost scope")
	}
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Depth returns the number of scopes above the outermost one.
func (st *SymbolTable) Depth() int {
	return len(st.scopes) - 1
}

// Current returns the innermost scope.
func (st *SymbolTable) Current() *Scope {
	return st.scopes[len(st.scopes)-1]
}

// Declare inserts or updates name in the innermost scope.
func (st *SymbolTable) Declare(name string, typ InferredType) *SymbolEntry {
	scope := st.Current()
	if entry, ok := scope.symbols[name]; ok {
		entry.Type = typ
		return entry
	}
	entry := &SymbolEntry{Name: name, Type: typ, ScopeDepth: st.Depth()}
	scope.symbols[name] = entry
	scope.order = append(scope.order, name)
	return entry
}

// Lookup finds name, innermost scope first. Returns nil if not found.
func (st *SymbolTable) Lookup(name string) *SymbolEntry {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if entry, ok := st.scopes[i].symbols[name]; ok {
			return entry
		}
	}
	return nil
}

// LookupLocal finds name in the innermost scope only.
func (st *SymbolTable) LookupLocal(name string) *SymbolEntry {
	return st.Current().symbols[name]
}

// MarkDeclared records that the declaration of name has been emitted.
//
// Panics if name is not visible.
func (st *SymbolTable) MarkDeclared(name string) {
	entry := st.Lookup(name)
	if entry == nil {
		panic("MarkDeclared: variable '" + name + "' not found")
	}
	entry.Declared = true
}
