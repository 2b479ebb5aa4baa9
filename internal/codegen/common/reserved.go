package common

import (
	"slices"
	"strings"
)

// Reserved lists identifiers a target language will not accept as member
// names, and the suffix appended to a camel-case name that hits one.
type Reserved struct {
	Words  []string
	Suffix string
}

var reservedWords = map[string]Reserved{
	"dart": {
		Words: []string{
			"with", "class", "enum", "var", "const", "final", "static", "void",
			"int", "double", "bool", "String", "List", "Map", "dynamic",
			"null", "true", "false",
			"assert", "break", "case", "catch", "continue", "default", "do",
			"else", "extends", "finally", "for", "if", "in", "is", "new",
			"rethrow", "return", "super", "switch", "this", "throw", "try",
			"while",
		},
		Suffix: "Value",
	},
	"js": {
		Words: []string{
			"break", "case", "catch", "class", "const", "continue", "debugger",
			"default", "delete", "do", "else", "enum", "export", "extends",
			"false", "finally", "for", "function", "if", "import", "in",
			"instanceof", "new", "null", "return", "super", "switch", "this",
			"throw", "true", "try", "typeof", "var", "void", "while", "with",
			"yield", "let", "static", "await",
		},
		Suffix: "Value",
	},
}

// ReservedWords returns the reserved table for language. Unknown languages
// get an empty table.
func ReservedWords(language string) Reserved {
	r, ok := reservedWords[strings.ToLower(language)]
	if !ok {
		return Reserved{Suffix: "Value"}
	}
	return Reserved{Words: slices.Clone(r.Words), Suffix: r.Suffix}
}

// With returns a copy of r extended by extra words.
func (r Reserved) With(extra ...string) Reserved {
	out := Reserved{Words: slices.Clone(r.Words), Suffix: r.Suffix}
	for _, w := range extra {
		if w != "" && !slices.Contains(out.Words, w) {
			out.Words = append(out.Words, w)
		}
	}
	return out
}
