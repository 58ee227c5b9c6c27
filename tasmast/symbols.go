package tasmast

import "fmt"

// Symbol is a text-substitution alias defined in a .symbols section:
// name -> body, where body is the whitespace-joined concatenation of the
// definition's parameter tokens.
type Symbol struct {
	Name string
	Body string
}

// SymbolTable holds the AST's unique-by-name symbol set. Grounded on the
// teacher's map-backed SymbolTable shape, simplified: Theft symbols are
// plain text substitutions, not relocatable values, so there is no
// forward-reference/relocation bookkeeping to carry over.
type SymbolTable struct {
	entries map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]*Symbol)}
}

// Define inserts a new symbol. Redefining an existing name is a semantic
// error per spec.md §3's uniqueness invariant.
func (t *SymbolTable) Define(name, body string) error {
	if _, exists := t.entries[name]; exists {
		return fmt.Errorf("duplicate symbol %q", name)
	}
	t.entries[name] = &Symbol{Name: name, Body: body}
	return nil
}

// Lookup returns the symbol by name, and whether it exists.
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	s, ok := t.entries[name]
	return s, ok
}

// Len reports the number of defined symbols.
func (t *SymbolTable) Len() int {
	return len(t.entries)
}
