/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"regexp"
	"testing"

	"bennypowers.dev/figtok/token"
)

func TestFilterTokens(t *testing.T) {
	tokens := []*token.Token{
		{Name: "color.primary", Set: "core", Kind: token.Color, Value: token.Standard{Raw: "#336699"}},
		{Name: "color.secondary", Set: "brand", Kind: token.Color, Value: token.Standard{Raw: "{color.primary}"}, Description: "Accent"},
		{Name: "spacing.small", Set: "core", Kind: token.Spacing, Value: token.Standard{Raw: "4px"}},
		{Name: "spacing.large", Set: "core", Kind: token.Spacing, Value: token.Standard{Raw: "{spacing.small} * 4"}},
		{Name: "type.body", Set: "brand", Kind: token.Typography, Value: token.CompositionValue{Properties: []token.Property{
			{Name: "fontFamily", Value: "Inter"},
		}}},
	}

	names := func(toks []*token.Token) []string {
		out := make([]string, len(toks))
		for i, tok := range toks {
			out[i] = tok.Name
		}
		return out
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filters", Filter{}, []string{"color.primary", "color.secondary", "spacing.small", "spacing.large", "type.body"}},
		{"by kind", Filter{Kind: "color"}, []string{"color.primary", "color.secondary"}},
		{"by set", Filter{Set: "brand"}, []string{"color.secondary", "type.body"}},
		{"search name", Filter{Search: "SPACING"}, []string{"spacing.small", "spacing.large"}},
		{"search value", Filter{Search: "{color.primary}"}, []string{"color.secondary"}},
		{"search description", Filter{Search: "accent"}, []string{"color.secondary"}},
		{"search composite property", Filter{Search: "inter"}, []string{"type.body"}},
		{"regex", Filter{Pattern: regexp.MustCompile(`\*\s*\d`)}, []string{"spacing.large"}},
		{"kind and set", Filter{Kind: "spacing", Set: "brand"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(filterTokens(tokens, tt.filter))
			if len(got) != len(tt.want) {
				t.Fatalf("filterTokens() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("filterTokens()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatchString(t *testing.T) {
	if !matchString("Color.Primary", "primary", nil) {
		t.Error("expected case-insensitive substring match")
	}
	if matchString("color.primary", "primary", regexp.MustCompile(`^primary`)) {
		t.Error("expected regex to take precedence over substring")
	}
}
