/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bennypowers.dev/figtok/parser"
	"bennypowers.dev/figtok/token"
)

func TestParseJSON_KeepsOrder(t *testing.T) {
	doc, err := parser.ParseJSON([]byte(`{
		// Tokens Studio export
		"zeta": 1,
		"alpha": {"b": true, "a": null},
		"mid": [1.5, "x"],
	}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	if got, want := doc.Keys(), []string{"zeta", "alpha", "mid"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	v, _ := doc.Get("zeta")
	if v != parser.Number("1") {
		t.Errorf("zeta = %#v, want Number(1)", v)
	}
	alpha, _ := doc.Get("alpha")
	if got := alpha.(*parser.Object).Keys(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("alpha keys = %v", got)
	}

	want := map[string]any{
		"zeta":  float64(1),
		"alpha": map[string]any{"b": true, "a": nil},
		"mid":   []any{1.5, "x"},
	}
	if diff := cmp.Diff(want, doc.Plain()); diff != "" {
		t.Errorf("Plain() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"a": }`},
		{"truncated", `{"a": {"b": 1}`},
		{"array root", `[1, 2]`},
		{"trailing data", `{"a": 1} {"b": 2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.ParseJSON([]byte(tt.input)); err == nil {
				t.Errorf("ParseJSON(%q) expected error", tt.input)
			}
		})
	}
}

func TestParseYAML_KeepsOrder(t *testing.T) {
	doc, err := parser.Parse([]byte(`
color:
  zed:
    type: color
    value: "#ffffff"
  able:
    type: color
    value: "{color.zed}"
weight: 400
enabled: true
`), "tokens.yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := doc.Keys(); !slices.Equal(got, []string{"color", "weight", "enabled"}) {
		t.Errorf("Keys() = %v", got)
	}
	color, _ := doc.Get("color")
	if got := color.(*parser.Object).Keys(); !slices.Equal(got, []string{"zed", "able"}) {
		t.Errorf("color keys = %v", got)
	}
	if v, _ := doc.Get("weight"); v != parser.Number("400") {
		t.Errorf("weight = %#v", v)
	}
	if v, _ := doc.Get("enabled"); v != true {
		t.Errorf("enabled = %#v", v)
	}
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := parser.Parse([]byte(`{}`), "tokens.toml")
	if !errors.Is(err, parser.ErrUnsupportedFormat) {
		t.Errorf("Parse() error = %v, want ErrUnsupportedFormat", err)
	}
}

func mustParse(t *testing.T, src string) *parser.Object {
	t.Helper()
	doc, err := parser.ParseJSON([]byte(src))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	return doc
}

func TestTokens(t *testing.T) {
	doc := mustParse(t, `{
		"color": {
			"primary": {"value": "#336699", "type": "color", "description": "Brand"},
			"text": {"$value": "{color.primary}", "$type": "color"}
		},
		"space": {
			"sm": {"value": 4, "type": "spacing"}
		},
		"shadow": {
			"card": {
				"type": "boxShadow",
				"value": [
					{"x": 0, "y": 2, "blur": 4, "spread": 0, "color": "#000000", "type": "dropShadow"},
					{"x": "0", "y": "1", "blur": "2", "color": "{color.primary}", "type": "innerShadow"}
				]
			},
			"flat": {"type": "boxShadow", "value": "none"}
		},
		"type": {
			"heading": {
				"type": "typography",
				"value": {"fontFamily": "{font.family}", "fontWeight": 700}
			}
		},
		"$extensions": {"ignored": true}
	}`)

	tokens, err := parser.Tokens("core/base", doc)
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}

	want := []*token.Token{
		{ID: "core.base.color.primary", Name: "color.primary", Kind: token.Color, Description: "Brand", Value: token.Standard{Raw: "#336699"}},
		{ID: "core.base.color.text", Name: "color.text", Kind: token.Color, Value: token.Standard{Raw: "{color.primary}"}},
		{ID: "core.base.space.sm", Name: "space.sm", Kind: token.Spacing, Value: token.Standard{Raw: "4"}},
		{ID: "core.base.shadow.card", Name: "shadow.card", Kind: token.BoxShadow, Value: token.Shadow{Layers: []token.ShadowLayer{
			{Kind: token.DropShadow, Color: "#000000", X: "0", Y: "2", Blur: "4", Spread: "0"},
			{Kind: token.InnerShadow, Color: "{color.primary}", X: "0", Y: "1", Blur: "2", Spread: "0"},
		}}},
		{ID: "core.base.shadow.flat", Name: "shadow.flat", Kind: token.BoxShadow, Value: token.Standard{Raw: "none"}},
		{ID: "core.base.type.heading", Name: "type.heading", Kind: token.Typography, Value: token.CompositionValue{Properties: []token.Property{
			{Name: "fontFamily", Value: "{font.family}"},
			{Name: "fontWeight", Value: "700"},
		}}},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("Tokens() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokens_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown kind", `{"a": {"type": "gradient", "value": "x"}}`, token.ErrUnknownKind},
		{"missing value", `{"a": {"type": "color"}}`, token.ErrInvalidValue},
		{"composite needs object", `{"a": {"type": "composition", "value": "x"}}`, token.ErrInvalidValue},
		{"scalar needs scalar", `{"a": {"type": "color", "value": {"r": 1}}}`, token.ErrInvalidValue},
		{"stray scalar", `{"a": 1}`, parser.ErrInvalidDocument},
		{"bad shadow type", `{"a": {"type": "boxShadow", "value": {"color": "#000000", "type": "glow"}}}`, token.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Tokens("core", mustParse(t, tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("Tokens() error = %v, want %v", err, tt.want)
			}
		})
	}
}
