/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css renders tokens as CSS custom properties and utility classes.
package css

import (
	"strings"

	"bennypowers.dev/figtok/convert/formatter"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/token"
)

// DefaultSelector scopes custom properties when Options.Selector is empty.
const DefaultSelector = ":root"

// Options configures the CSS formatter.
type Options struct {
	// Selector is the rule that holds custom properties.
	Selector string

	// Header is written as a block comment at the top of every file.
	Header string
}

// Formatter renders standard and shadow tokens as custom properties inside
// one rule, and composite tokens as one class rule each.
type Formatter struct {
	opts Options
}

// New creates a CSS formatter.
func New(opts Options) *Formatter {
	if opts.Selector == "" {
		opts.Selector = DefaultSelector
	}
	return &Formatter{opts: opts}
}

func (f *Formatter) Extension() string { return ".css" }

func (f *Formatter) Format(unit formatter.Unit, r *resolver.Resolver) ([]byte, error) {
	entries, err := formatter.Resolve(unit, r)
	if err != nil {
		return nil, err
	}
	prefix := r.Options().Prefix

	var vars, classes []formatter.Entry
	for _, e := range entries {
		if e.Composite {
			classes = append(classes, e)
		} else {
			vars = append(vars, e)
		}
	}

	var blocks []string
	if len(vars) > 0 {
		var sb strings.Builder
		sb.WriteString(f.opts.Selector + " {\n")
		for _, e := range vars {
			sb.WriteString("  " + token.CSSVariableName(e.Token.Name, prefix) + ": " + e.Value + ";\n")
		}
		sb.WriteString("}\n")
		blocks = append(blocks, sb.String())
	}
	for _, e := range classes {
		var sb strings.Builder
		sb.WriteString("." + formatter.Key(e.Token.Name, prefix) + " {\n")
		for _, p := range e.Properties {
			sb.WriteString("  " + token.Kebab(p.Name) + ": " + p.Value + ";\n")
		}
		sb.WriteString("}\n")
		blocks = append(blocks, sb.String())
	}

	return []byte(formatter.FormatHeader(f.opts.Header) + strings.Join(blocks, "\n")), nil
}
