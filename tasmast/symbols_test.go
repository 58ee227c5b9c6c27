package tasmast_test

import (
	"testing"

	"github.com/marie-eckert/tasm/tasmast"
)

func TestSymbolTableDefineAndLookup(t *testing.T) {
	st := tasmast.NewSymbolTable()
	if err := st.Define("ZERO", "$#0000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sym, ok := st.Lookup("ZERO")
	if !ok {
		t.Fatal("expected ZERO to be found")
	}
	if sym.Body != "$#0000" {
		t.Errorf("got body %q, want %q", sym.Body, "$#0000")
	}
}

func TestSymbolTableDuplicateIsError(t *testing.T) {
	st := tasmast.NewSymbolTable()
	if err := st.Define("ZERO", "$#0000"); err != nil {
		t.Fatal(err)
	}
	if err := st.Define("ZERO", "$#0001"); err == nil {
		t.Error("expected duplicate symbol definition to error")
	}
}

func TestSymbolTableLookupMissing(t *testing.T) {
	st := tasmast.NewSymbolTable()
	if _, ok := st.Lookup("NOPE"); ok {
		t.Error("expected missing symbol to not be found")
	}
}

func TestSymbolTableLenAcrossBranches(t *testing.T) {
	// Symbol lookup by name returns the same body regardless of which
	// branch/file defined it, since the table is shared by the AST root.
	ast := tasmast.NewAST()
	if err := ast.Symbols.Define("SHARED", "value"); err != nil {
		t.Fatal(err)
	}
	ast.AddBranch("a.asm")
	ast.AddBranch("b.asm")

	sym, ok := ast.Symbols.Lookup("SHARED")
	if !ok || sym.Body != "value" {
		t.Errorf("expected shared symbol visible across branches, got %v ok=%v", sym, ok)
	}
	if ast.Symbols.Len() != 1 {
		t.Errorf("expected 1 symbol, got %d", ast.Symbols.Len())
	}
}
