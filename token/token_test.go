/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/figtok/token"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"global.color.purple.100", "global-color-purple-100"},
		{"text.headings.h1.fontSize", "text-headings-h1-font-size"},
		{"myCompositionToken", "my-composition-token"},
		{"ColorPalette.primaryColor.100", "color-palette-primary-color-100"},
		{"font_weight.Bold", "font-weight-bold"},
		{"spacing.x large", "spacing-x-large"},
		{"HTMLElement.size", "html-element-size"},
		{"already-kebab", "already-kebab"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := token.Kebab(tt.input); got != tt.expected {
				t.Errorf("Kebab(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCSSVariableName(t *testing.T) {
	if got := token.CSSVariableName("color.primaryColor", ""); got != "--color-primary-color" {
		t.Errorf("CSSVariableName() = %q", got)
	}
	if got := token.CSSVariableName("color.primary", "ds.core"); got != "--ds-core-color-primary" {
		t.Errorf("CSSVariableName() with prefix = %q", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range token.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			got, err := token.ParseKind(k.String())
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", k.String(), err)
			}
			if got != k {
				t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
			}
		})
	}

	t.Run("aliases", func(t *testing.T) {
		cases := map[string]token.Kind{
			"fontFamilies": token.FontFamily,
			"fontSizes":    token.FontSize,
			"fontWeights":  token.FontWeight,
			"lineHeights":  token.LineHeight,
			"boxShadow":    token.BoxShadow,
		}
		for alias, want := range cases {
			got, err := token.ParseKind(alias)
			if err != nil || got != want {
				t.Errorf("ParseKind(%q) = %v, %v; want %v", alias, got, err, want)
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := token.ParseKind("fontFamily")
		if !errors.Is(err, token.ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind, got %v", err)
		}
	})
}

func TestReferences(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"{test}", []string{"test"}},
		{"{ref.purple.1}", []string{"ref.purple.1"}},
		{"background-color: {ref.blue.1}", []string{"ref.blue.1"}},
		{"{spacing.base} * { spacing.scale }", []string{"spacing.base", "spacing.scale"}},
		{"{ref.pink.0", []string{}},
		{"radii.card}", []string{}},
		{"borderWidth.1}{", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := token.References(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("References(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if token.HasReference(tt.input) != (len(tt.want) > 0) {
				t.Errorf("HasReference(%q) disagrees with References", tt.input)
			}
		})
	}
}

func TestToken_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tok     token.Token
		wantErr bool
	}{
		{"standard color", token.Token{Kind: token.Color, Value: token.Standard{Raw: "#fff"}}, false},
		{"typography needs object", token.Token{Kind: token.Typography, Value: token.Standard{Raw: "x"}}, true},
		{"composition object", token.Token{Kind: token.Composition, Value: token.CompositionValue{}}, false},
		{"object on color", token.Token{Kind: token.Color, Value: token.CompositionValue{}}, true},
		{"shadow layers", token.Token{Kind: token.BoxShadow, Value: token.Shadow{Layers: []token.ShadowLayer{{}}}}, false},
		{"empty shadow", token.Token{Kind: token.BoxShadow, Value: token.Shadow{}}, true},
		{"missing value", token.Token{Kind: token.Color}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tok.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, token.ErrInvalidValue) {
				t.Errorf("Validate() error should wrap ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestTheme(t *testing.T) {
	th := &token.Theme{
		Name: "brand / dark",
		Sets: []token.ThemeSet{
			{Name: "semantic", State: token.Enabled},
			{Name: "core", State: token.Source},
			{Name: "legacy", State: token.Disabled},
			{Name: "dark", State: token.Enabled},
		},
	}

	if got, want := th.ActiveSets(), []string{"core", "semantic", "dark"}; !slices.Equal(got, want) {
		t.Errorf("ActiveSets() = %v, want %v", got, want)
	}
	if got := th.FileName(); got != "brand-dark" {
		t.Errorf("FileName() = %q, want %q", got, "brand-dark")
	}
}
