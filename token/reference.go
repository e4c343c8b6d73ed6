/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// ReferencePattern matches curly brace references: {color.purple.100}
// The first submatch is the referenced token name.
var ReferencePattern = regexp.MustCompile(`\{([^{}]*)\}`)

// HasReference reports whether s contains at least one reference.
func HasReference(s string) bool {
	return ReferencePattern.MatchString(s)
}

// References returns the referenced names in s, in order of appearance.
// Surrounding whitespace inside the braces is dropped.
func References(s string) []string {
	matches := ReferencePattern.FindAllStringSubmatch(s, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, strings.TrimSpace(m[1]))
	}
	return refs
}
