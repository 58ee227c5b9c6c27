package tasmast_test

import (
	"testing"

	"github.com/marie-eckert/tasm/tasmast"
)

func TestLookupOpcodeCaseInsensitive(t *testing.T) {
	d1, ok := tasmast.LookupOpcode("nop")
	if !ok {
		t.Fatal("expected nop to be found")
	}
	d2, ok := tasmast.LookupOpcode("NOP")
	if !ok {
		t.Fatal("expected NOP to be found")
	}
	if d1.Opcode != d2.Opcode || d1.Opcode != 0x39 {
		t.Errorf("expected opcode 0x39 for both cases, got %x / %x", d1.Opcode, d2.Opcode)
	}
}

func TestLookupOpcodeUnknown(t *testing.T) {
	if _, ok := tasmast.LookupOpcode("frobnicate"); ok {
		t.Error("expected unknown mnemonic to not be found")
	}
}

func TestBranchAliasSharesOpcode(t *testing.T) {
	mnemonics := []string{"BRN", "BEQ", "BNE"}
	for _, m := range mnemonics {
		d, ok := tasmast.LookupOpcode(m)
		if !ok {
			t.Fatalf("expected %s to be found", m)
		}
		if d.Opcode != 0x02 {
			t.Errorf("%s: expected opcode 0x02, got %#x", m, d.Opcode)
		}
	}
}

func TestOpcodeSizesAndParamCounts(t *testing.T) {
	tests := []struct {
		mnemonic   string
		size       int
		paramCount int
	}{
		{"NOP", 1, 0},
		{"RTS", 1, 0},
		{"LD", 3, 2},
		{"CMP", 3, 1},
		{"INT", 1, 0},
		{"BRN", 3, 1},
		{"CAL", 3, 1},
		{"OR", 4, 2},
		{"SHL", 4, 2},
	}
	for _, tt := range tests {
		d, ok := tasmast.LookupOpcode(tt.mnemonic)
		if !ok {
			t.Fatalf("%s not found", tt.mnemonic)
		}
		if d.Size != tt.size {
			t.Errorf("%s: size = %d, want %d", tt.mnemonic, d.Size, tt.size)
		}
		if d.ParamCount != tt.paramCount {
			t.Errorf("%s: paramCount = %d, want %d", tt.mnemonic, d.ParamCount, tt.paramCount)
		}
	}
}

func TestLookupRegister(t *testing.T) {
	tests := []struct {
		letter byte
		id     byte
	}{
		{'a', 0}, {'c', 1}, {'d', 2}, {'e', 3}, {'f', 4}, {'g', 5}, {'h', 6},
	}
	for _, tt := range tests {
		id, ok := tasmast.LookupRegister(tt.letter)
		if !ok {
			t.Fatalf("register %c not found", tt.letter)
		}
		if id != tt.id {
			t.Errorf("register %c: id = %d, want %d", tt.letter, id, tt.id)
		}
	}
	if _, ok := tasmast.LookupRegister('b'); ok {
		t.Error("'b' is not a register selector and should not resolve")
	}
}

func TestLookupDirectiveCaseInsensitive(t *testing.T) {
	id1, ok := tasmast.LookupDirective("byte")
	if !ok || id1 != tasmast.DirByte {
		t.Fatalf("expected DirByte, got %v ok=%v", id1, ok)
	}
	id2, ok := tasmast.LookupDirective("BYTE")
	if !ok || id2 != tasmast.DirByte {
		t.Fatalf("expected DirByte for uppercase, got %v ok=%v", id2, ok)
	}
}

func TestLookupDirectiveUnknown(t *testing.T) {
	if _, ok := tasmast.LookupDirective("bogus"); ok {
		t.Error("expected unknown directive to not be found")
	}
}
