// Package tasmast defines the assembler's in-memory expression tree: the
// Expression/Branch/AST data model, the opcode and directive descriptor
// tables, the symbol table, and the symbol expander. It is the single
// source of truth every later pass (resolve, encoder, emit) walks.
package tasmast

// ExpKind classifies one parsed Expression.
type ExpKind int

const (
	ExpDirective ExpKind = iota
	ExpInstruction
	ExpLabel
)

func (k ExpKind) String() string {
	switch k {
	case ExpDirective:
		return "Directive"
	case ExpInstruction:
		return "Instruction"
	case ExpLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// DirectiveID identifies a recognized directive mnemonic.
type DirectiveID int

const (
	DirInvalid DirectiveID = iota
	DirInclude
	DirNullPad
	DirByte
	DirBytes
	DirPadding
	DirTextSection
	DirSymbolsSection
)

// Expression is one meaningful line of source: a directive, a label, or
// an instruction.
type Expression struct {
	Line int

	Kind ExpKind

	// Instruction is the raw mnemonic token, set when Kind == ExpInstruction.
	Instruction string

	// Directive identifies the directive, set when Kind == ExpDirective.
	Directive DirectiveID

	// Parameters holds the ordered operand/argument tokens. For a label
	// expression this has exactly one entry: the label name including
	// its trailing colon.
	Parameters []string

	// LabelPosition is the resolved byte offset, valid only once the
	// label resolver pass has run and only when Kind == ExpLabel.
	LabelPosition uint32

	// RawLine is the original source text, kept for diagnostics.
	RawLine string
}

// LabelName returns the label's name without its trailing colon. Valid
// only when Kind == ExpLabel.
func (e *Expression) LabelName() string {
	if len(e.Parameters) == 0 {
		return ""
	}
	name := e.Parameters[0]
	if len(name) > 0 && name[len(name)-1] == ':' {
		return name[:len(name)-1]
	}
	return name
}

// Branch is the expression sequence of one source file.
type Branch struct {
	Path        string
	Expressions []*Expression
}

// Section gates how subsequent lines of a branch are parsed.
type Section int

const (
	SectionNone Section = iota
	SectionText
	SectionSymbols
)

// AST is the root of the assembler's expression tree.
type AST struct {
	// Branches is ordered; Branches[0] is always the entry file.
	// Branches appended by include expansion follow in textual order.
	Branches []*Branch

	Symbols *SymbolTable

	CurrentSection Section
}

// NewAST constructs an empty AST ready for the entry file's branch.
func NewAST() *AST {
	return &AST{Symbols: NewSymbolTable()}
}

// AddBranch appends a new, empty branch for the given file path and
// returns it.
func (a *AST) AddBranch(path string) *Branch {
	b := &Branch{Path: path}
	a.Branches = append(a.Branches, b)
	return b
}

// Walk invokes fn for every expression across every branch, in branch
// order then expression order — the emission order every phase of the
// pipeline (precompute, resolve, emit) must agree on.
func (a *AST) Walk(fn func(branch *Branch, exp *Expression)) {
	for _, b := range a.Branches {
		for _, exp := range b.Expressions {
			fn(b, exp)
		}
	}
}

// LabelLookup maps a label name to its resolved byte offset. Populated
// from the label resolver pass's results and handed to the encoder,
// which currently rejects label-reference operands instead of looking
// them up here.
type LabelLookup map[string]uint32

// CollectLabels builds a LabelLookup from every resolved label
// expression in the AST.
func (a *AST) CollectLabels() LabelLookup {
	labels := make(LabelLookup)
	a.Walk(func(_ *Branch, exp *Expression) {
		if exp.Kind == ExpLabel {
			labels[exp.LabelName()] = exp.LabelPosition
		}
	})
	return labels
}
