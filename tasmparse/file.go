package tasmparse

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marie-eckert/tasm/diag"
	"github.com/marie-eckert/tasm/lexer"
	"github.com/marie-eckert/tasm/tasmast"
)

// ParseFile opens path, appends a new branch to ast, and parses it line
// by line, invoking handle on every diagnostic. Once the branch's own
// lines are fully consumed, its expressions are scanned in order for
// .inc directives; each is resolved (a relative path first against the
// including file's directory, then against each of searchDirs in order)
// and recursively parsed, appending
// further branches in textual order. This deferred-processing order is
// what guarantees emission order matches §4.3/§8 scenario 5: a file's
// own expressions are visible before any of its includes.
func ParseFile(path string, ast *tasmast.AST, searchDirs []string, handle diag.Handler) error {
	f, err := os.Open(path) // #nosec G304 -- path comes from source/CLI, not untrusted input
	if err != nil {
		e := diag.NewError(diag.Position{File: path, Line: 0}, diag.InvalidParameter, fmt.Sprintf("cannot open file: %v", err))
		handle(e)
		return e
	}
	defer f.Close()

	branch := ast.AddBranch(path)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		tok, tokErr := lexer.Tokenize(raw)
		if tokErr != nil {
			e := diag.NewErrorWithLine(diag.Position{File: path, Line: lineNo}, diag.StringNotClosed, tokErr.Error(), raw)
			if !handle(e) {
				return e
			}
			continue
		}
		if tok.Skip {
			continue
		}

		if perr := ParseLine(ast, branch, lineNo, raw, tok); perr != nil {
			if !handle(perr) {
				return perr
			}
		}
	}
	if err := scanner.Err(); err != nil {
		e := diag.NewError(diag.Position{File: path, Line: lineNo}, diag.InvalidParameter, fmt.Sprintf("read error: %v", err))
		handle(e)
		return e
	}

	// Only now scan this branch's own expressions for includes — after
	// every line of the current file has been parsed.
	baseDir := filepath.Dir(path)
	for _, exp := range branch.Expressions {
		if exp.Kind != tasmast.ExpDirective || exp.Directive != tasmast.DirInclude {
			continue
		}
		incPath := exp.Parameters[0]
		resolved := resolveInclude(incPath, baseDir, searchDirs)
		if err := ParseFile(resolved, ast, searchDirs, handle); err != nil {
			return err
		}
	}

	return nil
}

// resolveInclude tries the literal path first (relative to baseDir),
// then each search directory in order.
func resolveInclude(incPath, baseDir string, searchDirs []string) string {
	candidate := incPath
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(baseDir, incPath)
	}
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	for _, dir := range searchDirs {
		alt := filepath.Join(dir, incPath)
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}
	return candidate
}
