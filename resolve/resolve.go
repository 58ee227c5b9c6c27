// Package resolve implements the size precomputer (§4.4) and label
// resolver (§4.5). Both walk the AST in identical branch/expression
// order and must agree on each expression's size contribution
// byte-for-byte; expressionSize is the single function both passes call
// so that agreement is structural rather than a convention to maintain
// by hand across two copies of the same switch.
package resolve

import (
	"fmt"
	"strconv"

	"github.com/marie-eckert/tasm/tasmast"
)

// expressionSize returns the number of bytes exp contributes to the
// output, per §4.4:
//   - a label contributes 0
//   - a directive's contribution depends on its kind
//   - an instruction contributes its opcode descriptor's Size
func expressionSize(exp *tasmast.Expression) (int, error) {
	switch exp.Kind {
	case tasmast.ExpLabel:
		return 0, nil

	case tasmast.ExpDirective:
		switch exp.Directive {
		case tasmast.DirByte:
			return 1, nil
		case tasmast.DirBytes, tasmast.DirPadding, tasmast.DirNullPad:
			if len(exp.Parameters) == 0 {
				return 0, fmt.Errorf("line %d: directive missing size parameter", exp.Line)
			}
			n, err := parseSizeInt(exp.Parameters[0])
			if err != nil {
				return 0, fmt.Errorf("line %d: %w", exp.Line, err)
			}
			return n, nil
		default:
			return 0, nil
		}

	case tasmast.ExpInstruction:
		d, ok := tasmast.LookupOpcode(exp.Instruction)
		if !ok {
			return 0, fmt.Errorf("line %d: unknown instruction %q", exp.Line, exp.Instruction)
		}
		return d.Size, nil
	}
	return 0, nil
}

// parseSizeInt parses a directive size parameter using the same base
// auto-detection strtol(..., 0) applies: a "0x" prefix selects hex, a
// bare leading "0" selects octal, otherwise decimal.
func parseSizeInt(tok string) (int, error) {
	n, err := strconv.ParseInt(tok, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size parameter %q: %w", tok, err)
	}
	return int(n), nil
}

// PrecomputeSize walks the AST summing each expression's size
// contribution, producing the total output buffer size (§4.4).
func PrecomputeSize(ast *tasmast.AST) (int, error) {
	total := 0
	var walkErr error
	ast.Walk(func(_ *tasmast.Branch, exp *tasmast.Expression) {
		if walkErr != nil {
			return
		}
		n, err := expressionSize(exp)
		if err != nil {
			walkErr = err
			return
		}
		total += n
	})
	if walkErr != nil {
		return 0, walkErr
	}
	return total, nil
}

// ResolveLabels performs the second walk (§4.5): identical order to
// PrecomputeSize, maintaining a running offset and assigning each label
// expression's LabelPosition as it is encountered.
func ResolveLabels(ast *tasmast.AST) error {
	offset := uint32(0)
	var walkErr error
	ast.Walk(func(_ *tasmast.Branch, exp *tasmast.Expression) {
		if walkErr != nil {
			return
		}
		if exp.Kind == tasmast.ExpLabel {
			exp.LabelPosition = offset
			return
		}
		n, err := expressionSize(exp)
		if err != nil {
			walkErr = err
			return
		}
		offset += uint32(n)
	})
	return walkErr
}
