/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and shared helpers for output formatters.
package formatter

import (
	"fmt"
	"strings"

	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/token"
)

// Unit is the content of one output file.
type Unit struct {
	// Name is the output path without extension, slash-separated.
	Name string

	// Theme scopes reference lookup. Empty for set units.
	Theme string

	Mode   resolver.Mode
	Tokens []*token.Token
}

// Formatter renders a unit.
type Formatter interface {
	Format(unit Unit, r *resolver.Resolver) ([]byte, error)

	// Extension is the output file extension, including the dot.
	Extension() string
}

// Entry is a token with its resolved output.
// Exactly one of Value and Properties is meaningful, depending on Composite.
type Entry struct {
	Token      *token.Token
	Composite  bool
	Value      string
	Properties []token.Property
}

// Resolve computes the entries of unit in token order.
func Resolve(unit Unit, r *resolver.Resolver) ([]Entry, error) {
	entries := make([]Entry, 0, len(unit.Tokens))
	for _, tok := range unit.Tokens {
		e := Entry{Token: tok}
		switch tok.Value.(type) {
		case token.CompositionValue:
			props, err := r.Properties(tok, unit.Mode, unit.Theme)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", unit.Name, err)
			}
			e.Composite = true
			e.Properties = props
		default:
			v, err := r.Value(tok, unit.Mode, unit.Theme)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", unit.Name, err)
			}
			e.Value = DisplayValue(tok, v, unit.Mode)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// DisplayValue finishes a resolved value for output. Static color values are
// complete colors; in variable mode color tokens keep bare channels so they
// compose as rgb(var(--name)).
func DisplayValue(tok *token.Token, value string, mode resolver.Mode) string {
	if mode == resolver.StaticValues && tok.Kind == token.Color && !strings.HasPrefix(value, "rgb") {
		return "rgb(" + value + ")"
	}
	return value
}

// Key returns the flat output key of a token name, with an optional prefix.
func Key(name, prefix string) string {
	if prefix == "" {
		return token.Kebab(name)
	}
	return token.Kebab(prefix) + "-" + token.Kebab(name)
}

// FormatHeader formats a banner as a C-style block comment followed by a
// blank line. An empty header yields an empty string.
func FormatHeader(header string) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}
	lines := strings.Split(header, "\n")
	if len(lines) == 1 {
		return "/* " + lines[0] + " */\n\n"
	}
	var sb strings.Builder
	sb.WriteString("/*\n")
	for _, line := range lines {
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}
		sb.WriteString(" * " + line + "\n")
	}
	sb.WriteString(" */\n\n")
	return sb.String()
}
