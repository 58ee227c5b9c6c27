package tasmast

import "strings"

// OpcodeDescriptor is one entry of the static instruction table: mnemonic,
// opcode byte, instruction length, required parameter count, and which
// byte (if any) receives the address-mode and register-selector bit
// fields. Collapsing "which byte gets the modifier bits" into the
// descriptor itself (rather than a second dispatch table keyed by
// mnemonic) is the single source of truth the bit-twiddled encoding
// calls for.
type OpcodeDescriptor struct {
	Mnemonic   string
	Opcode     byte
	Size       int
	ParamCount int

	// ModifierByte is the index (within the instruction's own buffer)
	// that receives the address-mode flag and/or register id, or -1 if
	// this opcode accepts neither.
	ModifierByte int

	SetsAddressMode bool
	SetsRegister    bool
}

// opcodeTable is the 21-entry instruction table, transcribed byte for
// byte from the original source's inst_descriptors, including the
// intentional alias: BRN, BEQ and BNE all share opcode 0x02.
var opcodeTable = []OpcodeDescriptor{
	{Mnemonic: "LD", Opcode: 0x00, Size: 3, ParamCount: 2, ModifierByte: 0, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "ST", Opcode: 0x01, Size: 3, ParamCount: 2, ModifierByte: -1},
	{Mnemonic: "BRN", Opcode: 0x02, Size: 3, ParamCount: 1, ModifierByte: -1},
	{Mnemonic: "BEQ", Opcode: 0x02, Size: 3, ParamCount: 1, ModifierByte: -1},
	{Mnemonic: "BNE", Opcode: 0x02, Size: 3, ParamCount: 1, ModifierByte: -1},
	{Mnemonic: "CMP", Opcode: 0x03, Size: 3, ParamCount: 1, ModifierByte: 0, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "CAL", Opcode: 0x04, Size: 3, ParamCount: 1, ModifierByte: -1},
	{Mnemonic: "RTS", Opcode: 0x05, Size: 1, ParamCount: 0, ModifierByte: -1},
	{Mnemonic: "RTI", Opcode: 0x06, Size: 1, ParamCount: 0, ModifierByte: -1},
	{Mnemonic: "INT", Opcode: 0x07, Size: 1, ParamCount: 0, ModifierByte: -1},
	{Mnemonic: "DIN", Opcode: 0x08, Size: 1, ParamCount: 0, ModifierByte: -1},
	{Mnemonic: "EIN", Opcode: 0x09, Size: 1, ParamCount: 0, ModifierByte: -1},
	{Mnemonic: "OR", Opcode: 0x0a, Size: 4, ParamCount: 2, ModifierByte: 3, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "AND", Opcode: 0x0b, Size: 4, ParamCount: 2, ModifierByte: 3, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "INC", Opcode: 0x0c, Size: 4, ParamCount: 2, ModifierByte: 3, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "DEC", Opcode: 0x0d, Size: 4, ParamCount: 2, ModifierByte: 3, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "ADD", Opcode: 0x0e, Size: 4, ParamCount: 2, ModifierByte: 3, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "SUB", Opcode: 0x0f, Size: 4, ParamCount: 2, ModifierByte: 3, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "SHR", Opcode: 0x19, Size: 4, ParamCount: 2, ModifierByte: 3, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "SHL", Opcode: 0x29, Size: 4, ParamCount: 2, ModifierByte: 3, SetsAddressMode: true, SetsRegister: true},
	{Mnemonic: "NOP", Opcode: 0x39, Size: 1, ParamCount: 0, ModifierByte: -1},
}

// LookupOpcode finds an opcode descriptor by mnemonic, case-insensitive
// per the source syntax rule (§4.2/§6: mnemonics are case-insensitive).
func LookupOpcode(mnemonic string) (OpcodeDescriptor, bool) {
	for _, d := range opcodeTable {
		if strings.EqualFold(d.Mnemonic, mnemonic) {
			return d, true
		}
	}
	return OpcodeDescriptor{}, false
}

// registerIDs maps the single-character register selector to its 3-bit
// id, per the table in §4.7.
var registerIDs = map[byte]byte{
	'a': 0,
	'c': 1,
	'd': 2,
	'e': 3,
	'f': 4,
	'g': 5,
	'h': 6,
}

// LookupRegister maps a single lowercase register letter to its 3-bit id.
func LookupRegister(letter byte) (byte, bool) {
	id, ok := registerIDs[letter]
	return id, ok
}

// directiveTable maps directive mnemonic (without the leading '.') to its id.
var directiveTable = map[string]DirectiveID{
	"inc":         DirInclude,
	"nullpadding": DirNullPad,
	"byte":        DirByte,
	"bytes":       DirBytes,
	"padding":     DirPadding,
	"text":        DirTextSection,
	"symbols":     DirSymbolsSection,
}

// LookupDirective resolves a directive mnemonic (without the leading
// '.') to its id. Directive lookup is case-insensitive: the original
// source's get_dir compares against an un-lowercased copy of the input,
// which makes its lookup accidentally case-sensitive while the sibling
// get_inst is deliberately case-insensitive — nothing in this spec
// demonstrates the mismatch was intentional, so this implementation
// folds case here too, for consistency with instruction lookup.
func LookupDirective(mnemonic string) (DirectiveID, bool) {
	id, ok := directiveTable[strings.ToLower(mnemonic)]
	return id, ok
}

// DirectiveName returns the canonical mnemonic for a directive id, used
// for diagnostics.
func DirectiveName(id DirectiveID) string {
	for name, did := range directiveTable {
		if did == id {
			return name
		}
	}
	return "unknown"
}
