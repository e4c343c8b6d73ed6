/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"testing"

	"bennypowers.dev/figtok/convert/formatter"
	"bennypowers.dev/figtok/convert/formatter/css"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/token"
)

func fixture(t *testing.T, prefix string) (formatter.Unit, *resolver.Resolver) {
	t.Helper()
	store := token.NewStore()
	tokens := []*token.Token{
		{ID: "core.size.sm", Name: "size.sm", Kind: token.Sizing, Value: token.Standard{Raw: "4px"}},
		{ID: "core.heading", Name: "heading", Kind: token.Typography, Value: token.CompositionValue{Properties: []token.Property{
			{Name: "fontSize", Value: "{size.sm}"},
		}}},
	}
	if err := store.AddSet("core", tokens); err != nil {
		t.Fatal(err)
	}
	r, err := resolver.New(store, resolver.Options{Prefix: prefix})
	if err != nil {
		t.Fatal(err)
	}
	return formatter.Unit{Name: "core", Mode: resolver.CSSVariables, Tokens: tokens}, r
}

func TestFormat_Defaults(t *testing.T) {
	unit, r := fixture(t, "")
	got, err := css.New(css.Options{}).Format(unit, r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := ":root {\n  --size-sm: 4px;\n}\n\n.heading {\n  font-size: var(--size-sm);\n}\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_SelectorHeaderPrefix(t *testing.T) {
	unit, r := fixture(t, "ds")
	f := css.New(css.Options{Selector: ":host", Header: "Tokens"})
	got, err := f.Format(unit, r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "/* Tokens */\n\n:host {\n  --ds-size-sm: 4px;\n}\n\n.ds-heading {\n  font-size: var(--ds-size-sm);\n}\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if f.Extension() != ".css" {
		t.Errorf("Extension() = %q", f.Extension())
	}
}
