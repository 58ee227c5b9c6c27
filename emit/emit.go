// Package emit implements the tree emitter (§4.8) and binary writer
// (§4.9): walking the fully resolved AST into a flat byte buffer, then
// writing that buffer to the requested output path.
package emit

import (
	"fmt"
	"os"

	"github.com/marie-eckert/tasm/encoder"
	"github.com/marie-eckert/tasm/tasmast"
)

// EmitTree walks branches/expressions in order, producing the final
// byte buffer. size must be the value PrecomputeSize returned for the
// same AST; a mismatch between the write index and size at the end is
// an internal error (§4.8 terminal-state invariant).
func EmitTree(ast *tasmast.AST, size int) ([]byte, error) {
	buf := make([]byte, size)
	idx := 0

	enc := encoder.NewEncoder(ast.CollectLabels())

	var emitErr error
	ast.Walk(func(_ *tasmast.Branch, exp *tasmast.Expression) {
		if emitErr != nil {
			return
		}

		switch exp.Kind {
		case tasmast.ExpLabel:
			return

		case tasmast.ExpInstruction:
			work, err := enc.EncodeInstruction(exp)
			if err != nil {
				emitErr = err
				return
			}
			if idx+len(work) > len(buf) {
				emitErr = fmt.Errorf("line %d: emission overruns output buffer", exp.Line)
				return
			}
			copy(buf[idx:], work)
			idx += len(work)

		case tasmast.ExpDirective:
			data, err := encoder.EncodeDirective(exp)
			if err != nil {
				emitErr = err
				return
			}
			if len(data) == 0 {
				return
			}
			if idx+len(data) > len(buf) {
				emitErr = fmt.Errorf("line %d: emission overruns output buffer", exp.Line)
				return
			}
			copy(buf[idx:], data)
			idx += len(data)
		}
	})
	if emitErr != nil {
		return nil, emitErr
	}

	if idx != len(buf) {
		return nil, fmt.Errorf("internal error: wrote %d bytes, expected %d", idx, len(buf))
	}

	return buf, nil
}

// Formatter wraps a raw byte buffer into an output container format.
// The only format implemented by core is the identity "rom" form; any
// other container (e.g. a wrapped TEF variant) is an external
// collaborator's concern, passed in by the caller as WriteROM's f.
type Formatter interface {
	Format(buf []byte) ([]byte, error)
}

// RawFormatter is the identity formatter: the output is exactly the
// byte sequence produced by EmitTree, in order, untransformed (§4.9).
type RawFormatter struct{}

func (RawFormatter) Format(buf []byte) ([]byte, error) {
	return buf, nil
}

// WriteROM writes buf to path using f to produce the container format.
// A nil f defaults to RawFormatter.
func WriteROM(path string, buf []byte, f Formatter) error {
	if f == nil {
		f = RawFormatter{}
	}
	out, err := f.Format(buf)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
