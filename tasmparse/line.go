// Package tasmparse implements the line parser (§4.2) and file parser
// (§4.3): classifying a tokenized line into a directive, label, or
// instruction expression, and walking a source file (and its includes)
// into the AST's branches.
package tasmparse

import (
	"strings"

	"github.com/marie-eckert/tasm/diag"
	"github.com/marie-eckert/tasm/lexer"
	"github.com/marie-eckert/tasm/tasmast"
)

// ParseLine classifies one tokenized line and appends the resulting
// expression (if any) to branch, or inserts a symbol definition into
// ast.Symbols when the AST is currently in the Symbols section.
func ParseLine(ast *tasmast.AST, branch *tasmast.Branch, lineNo int, raw string, line lexer.Line) *diag.Error {
	pos := diag.Position{File: branch.Path, Line: lineNo}

	if ast.CurrentSection == tasmast.SectionSymbols && !strings.HasPrefix(line.Keyword, ".") {
		body := strings.Join(line.Parameters, " ")
		if err := ast.Symbols.Define(line.Keyword, body); err != nil {
			return diag.NewErrorWithLine(pos, diag.InvalidParameter, err.Error(), raw)
		}
		return nil
	}

	if strings.HasPrefix(line.Keyword, ".") {
		return parseDirectiveLine(ast, branch, lineNo, raw, line, pos)
	}

	if strings.HasSuffix(line.Keyword, ":") {
		branch.Expressions = append(branch.Expressions, &tasmast.Expression{
			Line:       lineNo,
			Kind:       tasmast.ExpLabel,
			Parameters: []string{line.Keyword},
			RawLine:    raw,
		})
		return nil
	}

	// Otherwise, an instruction. Unknown mnemonics are recorded as-is;
	// the lookup failure surfaces in the translator, not here (§4.2).
	branch.Expressions = append(branch.Expressions, &tasmast.Expression{
		Line:        lineNo,
		Kind:        tasmast.ExpInstruction,
		Instruction: line.Keyword,
		Parameters:  line.Parameters,
		RawLine:     raw,
	})
	return nil
}

func parseDirectiveLine(ast *tasmast.AST, branch *tasmast.Branch, lineNo int, raw string, line lexer.Line, pos diag.Position) *diag.Error {
	name := strings.TrimPrefix(line.Keyword, ".")
	id, ok := tasmast.LookupDirective(name)
	if !ok {
		return diag.NewErrorWithLine(pos, diag.InvalidDirective, "unknown directive ."+name, raw)
	}

	switch id {
	case tasmast.DirTextSection:
		ast.CurrentSection = tasmast.SectionText
	case tasmast.DirSymbolsSection:
		ast.CurrentSection = tasmast.SectionSymbols
	case tasmast.DirInclude:
		if len(line.Parameters) == 0 {
			return diag.NewErrorWithLine(pos, diag.DirectiveMissingParameter, "inc requires a path", raw)
		}
	case tasmast.DirNullPad, tasmast.DirBytes, tasmast.DirPadding:
		if len(line.Parameters) == 0 {
			return diag.NewErrorWithLine(pos, diag.DirectiveMissingParameter, "directive requires a size parameter", raw)
		}
	case tasmast.DirByte:
		if len(line.Parameters) == 0 {
			return diag.NewErrorWithLine(pos, diag.DirectiveMissingParameter, "byte requires a value parameter", raw)
		}
	}

	branch.Expressions = append(branch.Expressions, &tasmast.Expression{
		Line:       lineNo,
		Kind:       tasmast.ExpDirective,
		Directive:  id,
		Parameters: line.Parameters,
		RawLine:    raw,
	})
	return nil
}
