package tasmast

import (
	"fmt"
	"io"
)

// Dump writes a plain-text listing of every branch's expressions,
// supplementing the core pipeline with the debugging aid the original
// source's debug_utils.c provided (a tree dumper) but the distilled
// spec omits.
func Dump(ast *AST, w io.Writer) {
	for _, b := range ast.Branches {
		fmt.Fprintf(w, "branch %s\n", b.Path)
		for _, exp := range b.Expressions {
			switch exp.Kind {
			case ExpLabel:
				fmt.Fprintf(w, "  %4d label %s = %#04x\n", exp.Line, exp.LabelName(), exp.LabelPosition)
			case ExpDirective:
				fmt.Fprintf(w, "  %4d directive .%s %v\n", exp.Line, DirectiveName(exp.Directive), exp.Parameters)
			case ExpInstruction:
				fmt.Fprintf(w, "  %4d instr %s %v\n", exp.Line, exp.Instruction, exp.Parameters)
			}
		}
	}
}
