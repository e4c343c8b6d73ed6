/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"strings"
)

// Sentinel errors for resolution.
var (
	// ErrCyclicReference indicates a token whose value depends on itself.
	ErrCyclicReference = errors.New("cyclic reference")

	// ErrInvalidColorLiteral indicates a color token literal that is not #RRGGBB.
	ErrInvalidColorLiteral = errors.New("invalid color literal")

	// ErrAmbiguousReference indicates a name declared by several active tokens
	// when the resolver is configured to reject ambiguity.
	ErrAmbiguousReference = errors.New("ambiguous reference")

	// ErrCompositeValue indicates a request for the single value of a
	// composition or typography token.
	ErrCompositeValue = errors.New("composite token has no single value")
)

// CycleError reports the chain of token ids that closes a cycle.
// The first and last entries are the same id.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return ErrCyclicReference.Error() + ": " + strings.Join(e.Path, " -> ")
}

func (e *CycleError) Unwrap() error { return ErrCyclicReference }

// ColorError reports a malformed color literal.
type ColorError struct {
	TokenID string
	Literal string
	// Suggestion is the #RRGGBB form when the literal is some other valid CSS color.
	Suggestion string
}

func (e *ColorError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.TokenID)
	sb.WriteString(": ")
	sb.WriteString(ErrInvalidColorLiteral.Error())
	sb.WriteString(" ")
	sb.WriteString(`"` + e.Literal + `"`)
	if e.Suggestion != "" {
		sb.WriteString(" (use ")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

func (e *ColorError) Unwrap() error { return ErrInvalidColorLiteral }

// AmbiguityError lists the ids sharing a referenced name.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	return ErrAmbiguousReference.Error() + " {" + e.Name + "}: " + strings.Join(e.Candidates, ", ")
}

func (e *AmbiguityError) Unwrap() error { return ErrAmbiguousReference }
