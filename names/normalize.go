// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package names derives the lookup key used to detect duplicate participant
// names and to search or delete submissions by name.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds case and strips diacritics so that "José", "jose" and
// "JOSÉ" share one key. Leading, trailing and repeated whitespace is
// collapsed. It is defined for every input and Normalize(Normalize(x)) ==
// Normalize(x).
func Normalize(name string) string {
	// Casers and transformers keep state, so each call builds its own.
	// Fold maps lowercase Cherokee to uppercase; Lower settles it.
	folded := cases.Lower(language.Und).String(cases.Fold().String(name))

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, folded)
	if err != nil {
		stripped = folded
	}

	return strings.Join(strings.Fields(stripped), " ")
}
