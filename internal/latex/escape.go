package latex

import "strings"

// escapeTable is a fixed one-to-one substitution table for every character
// LaTeX treats as control syntax. Characters outside the table pass through
// unchanged, so the mapping is total. It is deliberately not idempotent:
// escaping already-escaped text double-escapes, so callers must escape raw
// user text exactly once.
var escapeTable = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\^{}`,
	'\\': `\textbackslash{}`,
	'<':  `\textless{}`,
	'>':  `\textgreater{}`,
}

// Escape maps arbitrary text to LaTeX-safe text, preserving the visible
// content character for character.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := escapeTable[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
