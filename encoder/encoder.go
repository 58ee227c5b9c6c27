// Package encoder implements the parameter translator (§4.7) and the
// directive data encoder it shares its byte-writing helpers with. It is
// the central encoding contract: one parameter token in, one or more
// bytes written into the caller-supplied instruction buffer, with the
// address-mode and register-selector bit fields (§4.7.1, §4.7.2) set on
// the byte the opcode descriptor names.
package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marie-eckert/tasm/tasmast"
)

const (
	addressModeBit = 0x80 // bit 7: immediate-mode flag
	registerShift  = 4    // bits 4-6: register selector field
)

// Encoder translates parameter tokens into instruction bytes. It holds
// the label table built by the resolver pass, but label references used
// as operands are not resolved against it: they are rejected as
// InvalidType by TranslateParameter.
type Encoder struct {
	Labels tasmast.LabelLookup
}

func NewEncoder(labels tasmast.LabelLookup) *Encoder {
	if labels == nil {
		labels = tasmast.LabelLookup{}
	}
	return &Encoder{Labels: labels}
}

// EncodeInstruction validates exp's parameter count against its opcode
// descriptor, allocates a zero-initialized work buffer of the
// descriptor's size, writes the opcode to byte 0, and translates each
// parameter into it in order (§4.8 step 2-3).
func (e *Encoder) EncodeInstruction(exp *tasmast.Expression) ([]byte, error) {
	desc, ok := tasmast.LookupOpcode(exp.Instruction)
	if !ok {
		return nil, WrapEncodingError(exp, fmt.Errorf("invalid instruction %q", exp.Instruction))
	}
	if len(exp.Parameters) != desc.ParamCount {
		return nil, WrapEncodingError(exp, fmt.Errorf(
			"%s expects %d parameter(s), got %d", desc.Mnemonic, desc.ParamCount, len(exp.Parameters)))
	}

	buf := make([]byte, desc.Size)
	buf[0] = desc.Opcode

	for _, param := range exp.Parameters {
		if err := e.TranslateParameter(buf, desc, param); err != nil {
			return nil, WrapEncodingError(exp, err)
		}
	}

	return buf, nil
}

// TranslateParameter writes one parameter token's encoding into buf,
// whose byte 0 already holds the raw opcode. Dispatch is by the token's
// first character, per §4.7.
func (e *Encoder) TranslateParameter(buf []byte, desc tasmast.OpcodeDescriptor, param string) error {
	if param == "" {
		return fmt.Errorf("empty parameter")
	}

	switch {
	case param[0] == '\'':
		return e.translateCharLiteral(buf, param)
	case param[0] == '$':
		return e.translateAddressOrImmediate(buf, desc, param)
	case len(param) == 1 && isRegisterLetter(param[0]):
		return e.translateRegister(buf, desc, param[0])
	default:
		// Not a recognized register letter, and not matching the $ or '
		// forms above: per §4.7 form 3 and §9's open question, this is
		// where an unresolved label reference would be encoded. The
		// spec explicitly directs treating it as InvalidType until a
		// test suite fixes the semantics, rather than guessing.
		return fmt.Errorf("invalid parameter type %q: %w", param, errInvalidType)
	}
}

var errInvalidType = fmt.Errorf("InvalidType")

func isRegisterLetter(c byte) bool {
	_, ok := tasmast.LookupRegister(c)
	return ok
}

// translateCharLiteral handles form 1: 'X', exactly 3 characters.
func (e *Encoder) translateCharLiteral(buf []byte, param string) error {
	if len(param) != 3 || param[2] != '\'' {
		return fmt.Errorf("invalid character literal %q: %w", param, errInvalidParameterFormat)
	}
	buf[1] = param[1]
	return nil
}

var errInvalidParameterFormat = fmt.Errorf("InvalidParameterFormat")

// translateAddressOrImmediate handles form 2: $HEX / $#HEX, with an
// optional trailing base postfix (t = decimal, b = binary, default hex).
func (e *Encoder) translateAddressOrImmediate(buf []byte, desc tasmast.OpcodeDescriptor, param string) error {
	body := param[1:]
	immediate := false
	if strings.HasPrefix(body, "#") {
		immediate = true
		body = body[1:]
	}
	if body == "" {
		return fmt.Errorf("empty address/immediate token: %w", errInvalidParameterFormat)
	}

	base := 16
	numeric := body
	switch body[len(body)-1] {
	case 't', 'T':
		base = 10
		numeric = body[:len(body)-1]
	case 'b', 'B':
		base = 2
		numeric = body[:len(body)-1]
	}

	v, err := strconv.ParseUint(numeric, base, 16)
	if err != nil {
		return fmt.Errorf("invalid numeric literal %q: %w", param, errInvalidParameterFormat)
	}

	buf[1] = byte((v >> 8) & 0xff)
	buf[2] = byte(v & 0xff)

	if immediate && desc.SetsAddressMode && desc.ModifierByte >= 0 && desc.ModifierByte < len(buf) {
		buf[desc.ModifierByte] |= addressModeBit
	}

	return nil
}

// translateRegister handles form 3: a single-character register
// selector a/c/d/e/f/g/h.
func (e *Encoder) translateRegister(buf []byte, desc tasmast.OpcodeDescriptor, letter byte) error {
	id, ok := tasmast.LookupRegister(letter)
	if !ok {
		return fmt.Errorf("unknown register %q: %w", string(letter), errInvalidRegister)
	}
	if desc.SetsRegister && desc.ModifierByte >= 0 && desc.ModifierByte < len(buf) {
		buf[desc.ModifierByte] |= id << registerShift
	}
	return nil
}

var errInvalidRegister = fmt.Errorf("InvalidRegister")
