package fsa

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CamelCase converts an action type into the identifier its creator is
// stored under in an ActionCreators set:
//
//	ACTION_ONE    → actionOne
//	user/created  → userCreated
//	fetchXMLData  → fetchXmlData
//
// It is the default identifier function; see WithIdentifier.
func CamelCase(s string) string {
	// Casers are stateful; build them per call.
	lower, title := cases.Lower(language.Und), cases.Title(language.Und)

	words := splitWords(s)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lower.String(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// splitWords breaks s on any rune that is not a letter or digit, and on case
// changes inside a run: "fooBar" → foo Bar, "XMLData" → XML Data.
func splitWords(s string) []string {
	var words []string
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words = append(words, splitCase(field)...)
	}
	return words
}

func splitCase(field string) []string {
	runes := []rune(field)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		default:
			continue
		}
		words = append(words, string(runes[start:i]))
		start = i
	}
	return append(words, string(runes[start:]))
}
