/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Kebab converts a token name to a kebab-case CSS identifier.
// Dots become hyphens, then words split at lower-to-upper, underscore,
// hyphen, space and acronym boundaries.
//
//	Kebab("text.headings.h1.fontSize")     // "text-headings-h1-font-size"
//	Kebab("ColorPalette.primaryColor.100") // "color-palette-primary-color-100"
func Kebab(s string) string {
	words := splitWords(strings.ReplaceAll(s, ".", "-"))
	return lower.String(strings.Join(words, "-"))
}

// CSSVariableName returns the custom property name for a token name,
// e.g. "--color-primary" or "--ds-color-primary" with prefix "ds".
func CSSVariableName(name, prefix string) string {
	if prefix == "" {
		return "--" + Kebab(name)
	}
	return "--" + Kebab(prefix) + "-" + Kebab(name)
}

func splitWords(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if r == '-' || r == '_' || r == ' ' {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			// fooBar
			flush(i)
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// HTMLParser: the last capital of an acronym starts the next word
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}
