package tasmparse_test

import (
	"testing"

	"github.com/marie-eckert/tasm/diag"
	"github.com/marie-eckert/tasm/lexer"
	"github.com/marie-eckert/tasm/tasmast"
	"github.com/marie-eckert/tasm/tasmparse"
)

func parseLine(t *testing.T, ast *tasmast.AST, branch *tasmast.Branch, lineNo int, raw string) *tasmast.Expression {
	t.Helper()
	tok, err := lexer.Tokenize(raw)
	if err != nil {
		t.Fatalf("tokenize %q: %v", raw, err)
	}
	if tok.Skip {
		return nil
	}
	if perr := tasmparse.ParseLine(ast, branch, lineNo, raw, tok); perr != nil {
		t.Fatalf("parse %q: %v", raw, perr)
	}
	if len(branch.Expressions) == 0 {
		return nil
	}
	return branch.Expressions[len(branch.Expressions)-1]
}

func TestParseLineInstruction(t *testing.T) {
	ast := tasmast.NewAST()
	branch := ast.AddBranch("main.asm")
	exp := parseLine(t, ast, branch, 1, "ld a, $#00FFt")
	if exp.Kind != tasmast.ExpInstruction {
		t.Fatalf("kind = %v, want ExpInstruction", exp.Kind)
	}
	if exp.Instruction != "ld" {
		t.Errorf("instruction = %q, want ld", exp.Instruction)
	}
}

func TestParseLineLabel(t *testing.T) {
	ast := tasmast.NewAST()
	branch := ast.AddBranch("main.asm")
	exp := parseLine(t, ast, branch, 1, "start:")
	if exp.Kind != tasmast.ExpLabel {
		t.Fatalf("kind = %v, want ExpLabel", exp.Kind)
	}
	if exp.LabelName() != "start" {
		t.Errorf("LabelName = %q, want start", exp.LabelName())
	}
}

func TestParseLineDirective(t *testing.T) {
	ast := tasmast.NewAST()
	branch := ast.AddBranch("main.asm")
	exp := parseLine(t, ast, branch, 1, ".byte 5")
	if exp.Kind != tasmast.ExpDirective || exp.Directive != tasmast.DirByte {
		t.Fatalf("got kind=%v directive=%v", exp.Kind, exp.Directive)
	}
}

func TestParseLineTextSectionSwitchesState(t *testing.T) {
	ast := tasmast.NewAST()
	branch := ast.AddBranch("main.asm")
	parseLine(t, ast, branch, 1, ".text")
	if ast.CurrentSection != tasmast.SectionText {
		t.Errorf("section = %v, want SectionText", ast.CurrentSection)
	}
}

func TestParseLineSymbolDefinition(t *testing.T) {
	ast := tasmast.NewAST()
	branch := ast.AddBranch("main.asm")
	parseLine(t, ast, branch, 1, ".symbols")
	parseLine(t, ast, branch, 2, "ZERO $#0000")

	sym, ok := ast.Symbols.Lookup("ZERO")
	if !ok {
		t.Fatal("expected ZERO symbol to be defined")
	}
	if sym.Body != "$#0000" {
		t.Errorf("body = %q, want $#0000", sym.Body)
	}
}

func TestParseLineUnknownDirectiveIsError(t *testing.T) {
	ast := tasmast.NewAST()
	branch := ast.AddBranch("main.asm")
	tok, err := lexer.Tokenize(".bogus")
	if err != nil {
		t.Fatal(err)
	}
	perr := tasmparse.ParseLine(ast, branch, 1, ".bogus", tok)
	if perr == nil {
		t.Fatal("expected error for unknown directive")
	}
	if perr.Kind != diag.InvalidDirective {
		t.Errorf("kind = %v, want InvalidDirective", perr.Kind)
	}
}

func TestParseLineIncludeMissingPathIsError(t *testing.T) {
	ast := tasmast.NewAST()
	branch := ast.AddBranch("main.asm")
	tok, err := lexer.Tokenize(".inc")
	if err != nil {
		t.Fatal(err)
	}
	perr := tasmparse.ParseLine(ast, branch, 1, ".inc", tok)
	if perr == nil {
		t.Fatal("expected error for .inc with no path")
	}
}
