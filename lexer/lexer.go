// Package lexer tokenizes one source line into a keyword and its
// parameter tokens, respecting quoted strings and comments. Theft
// assembly is line-oriented, so unlike a whole-file character-stream
// lexer, Tokenize operates one line at a time and is called once per
// line by the file parser.
package lexer

import (
	"fmt"
	"strings"

	"github.com/marie-eckert/tasm/strutil"
)

// Line is the result of tokenizing one source line.
type Line struct {
	// Skip is true for a blank or comment-only line; Keyword and
	// Parameters are meaningless when Skip is true.
	Skip bool

	Keyword    string
	Parameters []string
}

// ErrStringNotClosed is returned when a line ends while still inside a
// quoted string.
type ErrStringNotClosed struct{}

func (ErrStringNotClosed) Error() string { return "unterminated quoted string" }

// Tokenize applies the rules of §4.1 to one raw source line.
func Tokenize(raw string) (Line, error) {
	trimmed := strutil.TrimSpace(raw)
	if trimmed == "" {
		return Line{Skip: true}, nil
	}
	if trimmed[0] == ';' {
		return Line{Skip: true}, nil
	}

	words := strings.Fields(trimmed)

	keyword := words[0]
	rest := words[1:]

	var params []string
	inString := false
	var stringParts []string

	flushString := func() {
		body := strutil.ConvertEscapes(strings.Join(stringParts, " "))
		params = append(params, body)
		stringParts = nil
		inString = false
	}

	for _, tok := range rest {
		if !inString && len(tok) > 0 && tok[0] == ';' {
			// Inline comment: stop tokenizing the rest of the line.
			break
		}

		if inString {
			stringParts = append(stringParts, tok)
			if strutil.HasUnescapedSuffix(tok, '"') {
				// Strip the terminating quote from the last part.
				last := stringParts[len(stringParts)-1]
				stringParts[len(stringParts)-1] = last[:len(last)-1]
				flushString()
			}
			continue
		}

		if len(tok) > 0 && tok[0] == '"' {
			body := tok[1:]
			if len(body) > 0 && strutil.HasUnescapedSuffix(body, '"') {
				params = append(params, strutil.ConvertEscapes(body[:len(body)-1]))
				continue
			}
			inString = true
			stringParts = []string{body}
			continue
		}

		params = append(params, strutil.StripTrailingComma(tok))
	}

	if inString {
		return Line{}, ErrStringNotClosed{}
	}

	return Line{Keyword: keyword, Parameters: params}, nil
}

// String renders a Line back to its normalized whitespace form (keyword
// plus space-joined parameters), the round-trip property §8 describes.
func (l Line) String() string {
	if l.Skip {
		return ""
	}
	if len(l.Parameters) == 0 {
		return l.Keyword
	}
	return fmt.Sprintf("%s %s", l.Keyword, strings.Join(l.Parameters, " "))
}
