/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cssmath recognizes the subset of CSS arithmetic that figtok wraps
// in calc(). It does not evaluate anything: calc() does that in the browser.
//
// A body is accepted when it tokenizes and the token stream passes
// Validate. Binary operators need a space on both sides, units only follow
// numbers, the right side of a division is a non-zero unitless number, and
// a multiplicative chain carries at most one unit.
//
//	cssmath.IsExpression("100% - 50px")        // true
//	cssmath.IsExpression("(100% - 60px) / 4")  // true
//	cssmath.IsExpression("100px * 2px")        // false
//	cssmath.IsExpression("100px")              // false
package cssmath

// Check tokenizes and validates a calc body. It returns a *TokenizeError,
// a *ValidationError, or nil.
func Check(input string) error {
	tokens, err := Tokenize(input)
	if err != nil {
		return err
	}
	return Validate(tokens)
}

// IsExpression reports whether input is a two-sided arithmetic expression
// that can be wrapped in calc().
func IsExpression(input string) bool {
	return Check(input) == nil
}
