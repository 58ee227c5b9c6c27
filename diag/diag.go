// Package diag defines the assembler's diagnostic surface: the error
// taxonomy, positions, and the Logger/Handler interfaces a CLI
// collaborator supplies. diag itself never colors or formats for a
// terminal — that stays an external concern, same as the original
// source's log.h split from assembler.c.
package diag

import "fmt"

// ErrorKind enumerates the surface-visible error taxonomy.
type ErrorKind int

const (
	InvalidInstruction ErrorKind = iota
	InvalidParameter
	MissingParameter
	InvalidDirective
	DirectiveMissingParameter
	StringNotClosed
	InvalidParameterFormat
	InvalidType
	InvalidRegister
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInstruction:
		return "InvalidInstruction"
	case InvalidParameter:
		return "InvalidParameter"
	case MissingParameter:
		return "MissingParameter"
	case InvalidDirective:
		return "InvalidDirective"
	case DirectiveMissingParameter:
		return "DirectiveMissingParameter"
	case StringNotClosed:
		return "StringNotClosed"
	case InvalidParameterFormat:
		return "InvalidParameterFormat"
	case InvalidType:
		return "InvalidType"
	case InvalidRegister:
		return "InvalidRegister"
	default:
		return "UnknownError"
	}
}

// Position identifies a source location by file and line. Theft assembly
// diagnostics are line-granular; there is no column to carry.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Error is one assembly diagnostic.
type Error struct {
	Pos     Position
	Kind    ErrorKind
	Message string
	// RawLine is the offending source line, included verbatim for the
	// handler to report alongside the error name.
	RawLine string
}

func (e *Error) Error() string {
	if e.RawLine != "" {
		return fmt.Sprintf("%s: %s: %s (%q)", e.Pos, e.Kind, e.Message, e.RawLine)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

func NewError(pos Position, kind ErrorKind, message string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message}
}

func NewErrorWithLine(pos Position, kind ErrorKind, message, rawLine string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message, RawLine: rawLine}
}

// ErrorList accumulates errors encountered across a phase, mirroring the
// teacher's own ErrorList shape so multiple diagnostics can be reported
// together rather than aborting on the first.
type ErrorList struct {
	Errors []*Error
}

func (l *ErrorList) AddError(e *Error) {
	l.Errors = append(l.Errors, e)
}

func (l *ErrorList) HasErrors() bool {
	return len(l.Errors) > 0
}

func (l *ErrorList) Error() string {
	if len(l.Errors) == 0 {
		return ""
	}
	s := ""
	for i, e := range l.Errors {
		if i > 0 {
			s += "\n"
		}
		s += e.Error()
	}
	return s
}

// Logger is the minimal leveled-logging contract the core calls into.
// Color and formatting belong to the CLI collaborator that implements
// it, matching the original's log.h interface (log_dbg/log_inf/log_wrn/
// log_err) without the ANSI escape codes that file applies.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Handler is invoked once per diagnostic. Returning false aborts the
// phase currently running, mirroring _handle_err's "return zero to
// abort" contract in the original source.
type Handler func(err *Error) (continue_ bool)

// Reporter's Handle method is a Handler that logs through Logger,
// accumulates every error
// into list, and either always continues (collect-and-report) or stops
// at the first error when FailFast is set.
type Reporter struct {
	Logger    Logger
	List      *ErrorList
	FailFast  bool
}

func NewReporter(logger Logger, failFast bool) *Reporter {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Reporter{Logger: logger, List: &ErrorList{}, FailFast: failFast}
}

func (r *Reporter) Handle(err *Error) bool {
	r.Logger.Errorf("%s", err.Kind)
	r.Logger.Errorf("%s", err.Error())
	if err.RawLine != "" {
		r.Logger.Errorf("  at %s: %s", err.Pos, err.RawLine)
	}
	r.List.AddError(err)
	return !r.FailFast
}
