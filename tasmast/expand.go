package tasmast

import "strings"

// ExpandSymbols walks every instruction and data-directive expression's
// parameter tokens and replaces any token that exactly matches a symbol
// name with that symbol's body (§4.6). A multi-token body is
// re-tokenized in place, so a single parameter slot can expand into
// several. Matching is whole-token only (a token must equal a symbol
// name exactly, not merely contain it) and one-shot: a token produced by
// expansion is not itself re-scanned for further symbol names, which is
// what keeps the operation idempotent when no symbol body names another
// symbol.
func ExpandSymbols(ast *AST) {
	ast.Walk(func(_ *Branch, exp *Expression) {
		if exp.Kind == ExpLabel {
			return
		}
		if len(exp.Parameters) == 0 {
			return
		}

		expanded := make([]string, 0, len(exp.Parameters))
		for _, tok := range exp.Parameters {
			sym, ok := ast.Symbols.Lookup(tok)
			if !ok {
				expanded = append(expanded, tok)
				continue
			}
			expanded = append(expanded, strings.Fields(sym.Body)...)
		}
		exp.Parameters = expanded
	})
}
