// Package reflection implements the pronoun-reflection transform: first-person
// phrasing is flipped to second-person and vice versa, one token at a time.
package reflection

import "strings"

// defaultTable maps lowercase source tokens to their reflected form.
//
// The multi-word keys ("i am", "you are", ...) are carried over from the
// original phrase list but can never match: lookup is performed per token,
// so a key containing a space is unreachable. This is observable behavior
// (reflecting "i am" yields "you am", not "you are") and is intentional;
// see DESIGN.md before "fixing" it.
var defaultTable = map[string]string{
	"i am":     "you are",
	"i'm":      "you are",
	"i have":   "you have",
	"i was":    "you were",
	"i":        "you",
	"me":       "you",
	"my":       "your",
	"you are":  "I am",
	"you have": "I have",
	"you were": "I was",
}

// Reflector substitutes tokens of a phrase using a fixed lookup table.
// The zero value is not usable; construct with New.
type Reflector struct {
	table map[string]string
}

// New creates a Reflector over the given token table. The table is copied,
// so later mutation by the caller has no effect.
func New(table map[string]string) *Reflector {
	t := make(map[string]string, len(table))
	for k, v := range table {
		t[k] = v
	}
	return &Reflector{table: t}
}

// Default is the process-wide reflector over the builtin table.
var Default = New(defaultTable)

// Reflect lowercases and whitespace-splits the phrase, substitutes each
// token found in the table, and rejoins with single spaces. Tokens absent
// from the table pass through unchanged. Total over any input; the empty
// string reflects to the empty string.
func (r *Reflector) Reflect(phrase string) string {
	words := strings.Fields(strings.ToLower(phrase))
	for i, w := range words {
		if mapped, ok := r.table[w]; ok {
			words[i] = mapped
		}
	}
	return strings.Join(words, " ")
}

// Reflect applies the default reflector.
func Reflect(phrase string) string {
	return Default.Reflect(phrase)
}

// DefaultTable returns a copy of the builtin token table.
func DefaultTable() map[string]string {
	t := make(map[string]string, len(defaultTable))
	for k, v := range defaultTable {
		t[k] = v
	}
	return t
}
