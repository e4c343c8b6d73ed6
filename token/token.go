/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the figtok design token model: tokens and their
// value shapes, token sets, themes, and the read-only store that holds them.
package token

import (
	"errors"
	"fmt"
)

// ErrInvalidValue indicates a token value whose shape does not fit its kind.
var ErrInvalidValue = errors.New("invalid token value")

// Token is a single named design value.
type Token struct {
	// ID is globally unique: the set's dot name followed by Name,
	// e.g. "core.colors.color.purple.100".
	ID string `json:"id"`

	// Name is the dot path of the token inside its set, e.g. "color.purple.100".
	// References and CSS names are derived from it.
	Name string `json:"name"`

	// Set is the slug of the set that declares the token.
	Set string `json:"set"`

	// Kind is the token type.
	Kind Kind `json:"-"`

	// Description is optional documentation from the source file.
	Description string `json:"description,omitempty"`

	// Value holds one of Standard, Shadow or CompositionValue.
	Value Value `json:"-"`
}

// Value is the closed set of token value shapes.
// Implementations: Standard, Shadow, CompositionValue.
type Value interface {
	isValue()
}

// Standard is a single string value, either a literal or a string containing references.
type Standard struct {
	Raw string
}

// Shadow is an ordered list of shadow layers.
type Shadow struct {
	Layers []ShadowLayer
}

// CompositionValue is an ordered list of CSS properties. Used by the composition
// and typography kinds.
type CompositionValue struct {
	Properties []Property
}

func (Standard) isValue()    {}
func (Shadow) isValue()      {}
func (CompositionValue) isValue() {}

// ShadowKind distinguishes drop shadows from inner shadows.
type ShadowKind int

const (
	DropShadow ShadowKind = iota
	InnerShadow
)

// ParseShadowKind accepts the Tokens Studio aliases dropShadow and innerShadow.
func ParseShadowKind(s string) (ShadowKind, error) {
	switch s {
	case "dropShadow":
		return DropShadow, nil
	case "innerShadow":
		return InnerShadow, nil
	}
	return DropShadow, fmt.Errorf("%w: unknown shadow type %q", ErrInvalidValue, s)
}

func (k ShadowKind) String() string {
	if k == InnerShadow {
		return "innerShadow"
	}
	return "dropShadow"
}

// ShadowLayer is one layer of a box shadow. Every field may contain references.
type ShadowLayer struct {
	Color  string
	Kind   ShadowKind
	X      string
	Y      string
	Blur   string
	Spread string
}

// Property is one entry of a composition value.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Validate checks that the value shape matches the token kind.
func (t *Token) Validate() error {
	switch v := t.Value.(type) {
	case Standard:
		if t.Kind.IsComposite() {
			return fmt.Errorf("%w: %s token %s needs an object value", ErrInvalidValue, t.Kind, t.ID)
		}
	case Shadow:
		if t.Kind != BoxShadow {
			return fmt.Errorf("%w: %s token %s has shadow layers", ErrInvalidValue, t.Kind, t.ID)
		}
		if len(v.Layers) == 0 {
			return fmt.Errorf("%w: shadow token %s has no layers", ErrInvalidValue, t.ID)
		}
	case CompositionValue:
		if !t.Kind.IsComposite() {
			return fmt.Errorf("%w: %s token %s has an object value", ErrInvalidValue, t.Kind, t.ID)
		}
	case nil:
		return fmt.Errorf("%w: token %s has no value", ErrInvalidValue, t.ID)
	}
	return nil
}

// RawStrings returns every authored string of the token value in order.
// Used to find references without resolving them.
func (t *Token) RawStrings() []string {
	switch v := t.Value.(type) {
	case Standard:
		return []string{v.Raw}
	case Shadow:
		out := make([]string, 0, len(v.Layers)*5)
		for _, l := range v.Layers {
			out = append(out, l.X, l.Y, l.Blur, l.Spread, l.Color)
		}
		return out
	case CompositionValue:
		out := make([]string, 0, len(v.Properties))
		for _, p := range v.Properties {
			out = append(out, p.Value)
		}
		return out
	}
	return nil
}
