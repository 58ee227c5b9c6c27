package encoder

import (
	"fmt"
	"strconv"

	"github.com/marie-eckert/tasm/tasmast"
)

// EncodeDirective returns the data bytes a size-contributing directive
// expression emits (§4.8): the parameter value for byte, and zero-filled
// runs for bytes/padding/nullpadding. Section and include directives
// contribute nothing: for them it returns no bytes and no error.
func EncodeDirective(exp *tasmast.Expression) ([]byte, error) {
	switch exp.Directive {
	case tasmast.DirByte:
		if len(exp.Parameters) == 0 {
			return nil, WrapEncodingError(exp, fmt.Errorf("byte requires a value parameter"))
		}
		v, err := parseByteValue(exp.Parameters[0])
		if err != nil {
			return nil, WrapEncodingError(exp, err)
		}
		return []byte{v}, nil

	case tasmast.DirBytes, tasmast.DirPadding, tasmast.DirNullPad:
		if len(exp.Parameters) == 0 {
			return nil, WrapEncodingError(exp, fmt.Errorf("directive requires a size parameter"))
		}
		n, err := strconv.ParseInt(exp.Parameters[0], 0, 64)
		if err != nil {
			return nil, WrapEncodingError(exp, fmt.Errorf("invalid size parameter %q: %w", exp.Parameters[0], err))
		}
		// Both .padding and .nullpadding fill with zero bytes: nothing in
		// the original source or this spec ever writes a non-zero fill
		// pattern for .padding.
		return make([]byte, n), nil

	default:
		return nil, nil
	}
}

func parseByteValue(tok string) (byte, error) {
	if len(tok) == 3 && tok[0] == '\'' && tok[2] == '\'' {
		return tok[1], nil
	}
	n, err := strconv.ParseInt(tok, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q: %w", tok, err)
	}
	return byte(n), nil
}
