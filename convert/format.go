/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/figtok/convert/formatter"
	"bennypowers.dev/figtok/convert/formatter/css"
	"bennypowers.dev/figtok/convert/formatter/flatjson"
	"bennypowers.dev/figtok/convert/formatter/nestedjson"
	"bennypowers.dev/figtok/resolver"
)

// Format represents an output format.
type Format string

const (
	// FormatCSS outputs custom properties and composite classes (default).
	FormatCSS Format = "css"

	// FormatJSON outputs nested JSON following the token name segments.
	FormatJSON Format = "json"

	// FormatFlat outputs flat JSON keyed by kebab-case name.
	FormatFlat Format = "flat"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSS),
		string(FormatJSON),
		string(FormatFlat),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return FormatCSS, nil
	case "json", "nested":
		return FormatJSON, nil
	case "flat", "flat-json":
		return FormatFlat, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// ThemeMode is the resolution mode of theme units. CSS keeps references
// live as var() lookups; JSON has no variables, so values are inlined.
func (f Format) ThemeMode() resolver.Mode {
	if f == FormatCSS {
		return resolver.CSSVariables
	}
	return resolver.StaticValues
}

// NewFormatter returns the formatter for format.
func NewFormatter(format Format, opts Options) (formatter.Formatter, error) {
	switch format {
	case FormatCSS:
		return css.New(css.Options{Selector: opts.Selector, Header: opts.Header}), nil
	case FormatJSON:
		return nestedjson.New(), nil
	case FormatFlat:
		return flatjson.New(), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
