/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/figtok/convert/formatter"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name        string `json:"name"`  // CSS variable name with prefix
	Token       string `json:"token"` // dotted token name
	Kind        string `json:"kind"`
	Set         string `json:"set"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	IsColor     bool   `json:"-"`
}

// ComputeRows transforms tokens into display rows. With resolved, values
// are fully resolved within theme; otherwise references are shown as
// written.
func ComputeRows(tokens []*token.Token, r *resolver.Resolver, theme string, resolved bool) ([]Row, error) {
	mode := resolver.CSSVariables
	if resolved {
		mode = resolver.StaticValues
	}
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		value, err := displayValue(tok, r, mode, theme, resolved)
		if err != nil {
			return nil, err
		}
		row := Row{
			Name:        token.CSSVariableName(tok.Name, r.Options().Prefix),
			Token:       tok.Name,
			Kind:        tok.Kind.String(),
			Set:         tok.Set,
			Value:       value,
			Description: tok.Description,
		}
		if tok.Kind == token.Color && !token.HasReference(value) {
			if _, err := csscolorparser.Parse(value); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func displayValue(tok *token.Token, r *resolver.Resolver, mode resolver.Mode, theme string, resolved bool) (string, error) {
	switch val := tok.Value.(type) {
	case token.CompositionValue:
		props := val.Properties
		if resolved {
			var err error
			if props, err = r.Properties(tok, mode, theme); err != nil {
				return "", err
			}
		}
		parts := make([]string, len(props))
		for i, p := range props {
			parts[i] = p.Name + ": " + p.Value
		}
		return strings.Join(parts, "; "), nil
	case token.Standard:
		if !resolved {
			return val.Raw, nil
		}
	}
	v, err := r.Value(tok, mode, theme)
	if err != nil {
		return "", err
	}
	return formatter.DisplayValue(tok, v, mode), nil
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, kind, val int) {
	name, kind, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		kind = max(kind, len(r.Kind))
		val = max(val, len(r.Value))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as aligned columns. With swatch, color values are
// preceded by a truecolor block.
func Table(w io.Writer, rows []Row, swatch bool) error {
	nameW, kindW, _ := ColumnWidths(rows)
	for _, r := range rows {
		prefix := ""
		if swatch && r.IsColor {
			prefix = ColorSwatch(r.Value)
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s\n", nameW, r.Name, kindW, r.Kind, prefix, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Names renders just the CSS variable names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as one markdown table per set.
func Markdown(w io.Writer, rows []Row) error {
	var order []string
	bySet := make(map[string][]Row)
	for _, r := range rows {
		if _, ok := bySet[r.Set]; !ok {
			order = append(order, r.Set)
		}
		bySet[r.Set] = append(bySet[r.Set], r)
	}

	var sb strings.Builder
	for i, set := range order {
		if i > 0 {
			sb.WriteString("\n")
		}
		group := bySet[set]
		nameW, kindW, valW := ColumnWidths(group)
		fmt.Fprintf(&sb, "## %s\n\n", toTitleCase(set))
		fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s |\n", nameW, "Name", kindW, "Kind", valW, "Value")
		fmt.Fprintf(&sb, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", kindW), strings.Repeat("-", valW))
		for _, r := range group {
			fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s |\n", nameW, r.Name, kindW, r.Kind, valW, escapePipes(r.Value))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// toTitleCase converts a set slug to a heading, e.g. "core" -> "Core".
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
