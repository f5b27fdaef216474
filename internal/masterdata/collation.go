// Package masterdata answers customer queries over an in-memory list and
// provides the German collation and case folding shared with the store.
package masterdata

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators and casers keep internal buffers and must not be shared between
// goroutines.
var (
	collators = sync.Pool{New: func() any { return collate.New(language.German) }}
	folders   = sync.Pool{New: func() any { c := cases.Fold(); return &c }}
)

// CompareGerman compares a and b under German collation rules and returns
// -1, 0 or +1.
func CompareGerman(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// Fold returns the Unicode case-folded form of s for case-insensitive
// matching.
func Fold(s string) string {
	c := folders.Get().(*cases.Caser)
	defer folders.Put(c)
	return c.String(s)
}

// ContainsFold reports whether haystack contains needle, ignoring case.
// needle must already be folded.
func ContainsFold(haystack, foldedNeedle string) bool {
	if foldedNeedle == "" {
		return true
	}
	return haystack != "" && strings.Contains(Fold(haystack), foldedNeedle)
}
