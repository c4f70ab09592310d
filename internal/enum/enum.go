// Package enum parses enumeration names case-insensitively.
package enum

import (
	"strings"

	"golang.org/x/text/cases"
)

// Table maps folded enumeration names to their values.
// Keys are written in lower case; lookups fold the input first.
type Table map[string]int

// Lookup returns the value registered for name, ignoring case and
// surrounding whitespace.
func (t Table) Lookup(name string) (int, bool) {
	v, ok := t[Fold(name)]
	return v, ok
}

// Fold returns the case-folded, trimmed form of s.
// A Caser keeps state, so each call folds with a fresh one.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
