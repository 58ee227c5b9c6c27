package lexer_test

import (
	"testing"

	"github.com/marie-eckert/tasm/lexer"
)

func TestTokenizeBlankLine(t *testing.T) {
	l, err := lexer.Tokenize("   ")
	if err != nil {
		t.Fatal(err)
	}
	if !l.Skip {
		t.Error("expected blank line to be skipped")
	}
}

func TestTokenizeCommentLine(t *testing.T) {
	l, err := lexer.Tokenize("  ; a full line comment")
	if err != nil {
		t.Fatal(err)
	}
	if !l.Skip {
		t.Error("expected comment-only line to be skipped")
	}
}

func TestTokenizeSimpleInstruction(t *testing.T) {
	l, err := lexer.Tokenize("nop")
	if err != nil {
		t.Fatal(err)
	}
	if l.Keyword != "nop" {
		t.Errorf("keyword = %q, want nop", l.Keyword)
	}
	if len(l.Parameters) != 0 {
		t.Errorf("expected no parameters, got %v", l.Parameters)
	}
}

func TestTokenizeParamsWithTrailingComma(t *testing.T) {
	l, err := lexer.Tokenize("ld a, $#00FFt")
	if err != nil {
		t.Fatal(err)
	}
	if l.Keyword != "ld" {
		t.Errorf("keyword = %q, want ld", l.Keyword)
	}
	want := []string{"a", "$#00FFt"}
	if len(l.Parameters) != len(want) {
		t.Fatalf("params = %v, want %v", l.Parameters, want)
	}
	for i := range want {
		if l.Parameters[i] != want[i] {
			t.Errorf("param %d = %q, want %q", i, l.Parameters[i], want[i])
		}
	}
}

func TestTokenizeInlineComment(t *testing.T) {
	l, err := lexer.Tokenize("nop ; trailing remark")
	if err != nil {
		t.Fatal(err)
	}
	if l.Keyword != "nop" {
		t.Errorf("keyword = %q, want nop", l.Keyword)
	}
	if len(l.Parameters) != 0 {
		t.Errorf("expected inline comment to suppress parameters, got %v", l.Parameters)
	}
}

func TestTokenizeSingleWordQuotedString(t *testing.T) {
	l, err := lexer.Tokenize(`.inc "b.asm"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Parameters) != 1 || l.Parameters[0] != "b.asm" {
		t.Errorf("params = %v, want [b.asm]", l.Parameters)
	}
}

func TestTokenizeMultiWordQuotedString(t *testing.T) {
	l, err := lexer.Tokenize(`.ascii "hello world"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Parameters) != 1 || l.Parameters[0] != "hello world" {
		t.Errorf("params = %v, want [hello world]", l.Parameters)
	}
}

func TestTokenizeQuotedStringWithEscapes(t *testing.T) {
	l, err := lexer.Tokenize(`.ascii "line\nbreak"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Parameters) != 1 || l.Parameters[0] != "line\nbreak" {
		t.Errorf("params = %v", l.Parameters)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := lexer.Tokenize(`.byte "hello`)
	if err == nil {
		t.Fatal("expected unterminated string error")
	}
	if _, ok := err.(lexer.ErrStringNotClosed); !ok {
		t.Errorf("expected ErrStringNotClosed, got %T: %v", err, err)
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	l, err := lexer.Tokenize("ld    a,   $#00FFt")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := l.String(), "ld a $#00FFt"; got != want {
		t.Errorf("round-trip = %q, want %q", got, want)
	}
}
