/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/figtok/load"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/testutil"
	"bennypowers.dev/figtok/token"
	"bennypowers.dev/figtok/validator"
)

func std(id string, kind token.Kind, raw string) *token.Token {
	name := id[strings.Index(id, ".")+1:]
	return &token.Token{ID: id, Name: name, Kind: kind, Value: token.Standard{Raw: raw}}
}

type finding struct {
	Severity validator.Severity
	TokenID  string
}

func findings(diags []validator.ValidationError) []finding {
	out := make([]finding, len(diags))
	for i, d := range diags {
		out[i] = finding{d.Severity, d.TokenID}
	}
	return out
}

func TestValidate(t *testing.T) {
	store := token.NewStore()
	require.NoError(t, store.AddSet("core", []*token.Token{
		std("core.color.ok", token.Color, "#ffffff"),
		std("core.color.bad", token.Color, "red"),
		std("core.a", token.Other, "{b}"),
		std("core.b", token.Other, "{a}"),
		std("core.size.broken", token.Sizing, "{nope}"),
		std("core.math", token.Sizing, "4px * 2px"),
		{ID: "core.heading", Name: "heading", Kind: token.Typography, Value: token.CompositionValue{Properties: []token.Property{
			{Name: "fontSize", Value: "16px"},
		}}},
		std("core.alias", token.Other, "{heading}"),
	}))
	require.NoError(t, store.AddSet("extra", []*token.Token{
		std("extra.color.ok", token.Color, "#000000"),
	}))
	r, err := resolver.New(store, resolver.Options{})
	require.NoError(t, err)

	diags := validator.Validate(store, r)
	require.Equal(t, []finding{
		{validator.Error, "core.color.bad"},
		{validator.Warning, "core.math"},
		{validator.Error, "core.a"},
		{validator.Warning, "core.color.ok"},
		{validator.Warning, "core.size.broken"},
		{validator.Warning, "core.alias"},
	}, findings(diags))

	assert.Equal(t, "use #ff0000", diags[0].Suggestion)
	assert.Contains(t, diags[1].Message, "without calc()")
	assert.Contains(t, diags[2].Message, "core.a -> core.b -> core.a")
	assert.Contains(t, diags[3].Message, "core.color.ok, extra.color.ok")
	assert.Contains(t, diags[4].Message, "{nope}")
	assert.Contains(t, diags[4].Suggestion, resolver.BrokenRef)
	assert.Equal(t, "core", diags[5].Set)

	errs, warnings := validator.Count(diags)
	assert.Equal(t, 2, errs)
	assert.Equal(t, 4, warnings)
}

func TestValidate_PerTheme(t *testing.T) {
	store := token.NewStore()
	require.NoError(t, store.AddSet("base", []*token.Token{
		std("base.text", token.Color, "{brand}"),
	}))
	require.NoError(t, store.AddSet("brand", []*token.Token{
		std("brand.brand", token.Color, "#336699"),
	}))
	require.NoError(t, store.AddTheme(&token.Theme{Name: "Branded", Sets: []token.ThemeSet{
		{Name: "base", State: token.Enabled},
		{Name: "brand", State: token.Enabled},
	}}))
	require.NoError(t, store.AddTheme(&token.Theme{Name: "Plain", Sets: []token.ThemeSet{
		{Name: "base", State: token.Enabled},
	}}))
	r, err := resolver.New(store, resolver.Options{})
	require.NoError(t, err)

	diags := validator.Validate(store, r)
	require.Len(t, diags, 1)
	assert.Equal(t, validator.Warning, diags[0].Severity)
	assert.Equal(t, "base.text", diags[0].TokenID)
	assert.Contains(t, diags[0].Message, "in theme Plain")
}

func TestValidate_OverrideReferencingItsOwnName(t *testing.T) {
	store := token.NewStore()
	require.NoError(t, store.AddSet("base", []*token.Token{
		std("base.spacing", token.Spacing, "4px"),
	}))
	require.NoError(t, store.AddSet("compact", []*token.Token{
		std("compact.spacing", token.Spacing, "{spacing}"),
	}))
	require.NoError(t, store.AddTheme(&token.Theme{Name: "Compact", Sets: []token.ThemeSet{
		{Name: "base", State: token.Enabled},
		{Name: "compact", State: token.Enabled},
	}}))
	r, err := resolver.New(store, resolver.Options{})
	require.NoError(t, err)

	diags := validator.Validate(store, r)
	require.Equal(t, []finding{{validator.Warning, "base.spacing"}}, findings(diags))
	assert.Contains(t, diags[0].Message, "base.spacing, compact.spacing")

	override, err := store.Lookup("compact.spacing")
	require.NoError(t, err)
	v, err := r.Value(override, resolver.StaticValues, "Compact")
	require.NoError(t, err)
	assert.Equal(t, "4px", v)
}

func TestValidate_CleanFixture(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/studio", "/tokens")
	store, err := load.Load(t.Context(), "/tokens", load.Options{FS: mfs})
	require.NoError(t, err)
	r, err := resolver.New(store, resolver.Options{})
	require.NoError(t, err)

	assert.Empty(t, validator.Validate(store, r))
}

func TestValidationError_Error(t *testing.T) {
	e := &validator.ValidationError{
		Set:        "core",
		TokenID:    "core.color.bad",
		Message:    `invalid color "red"`,
		Suggestion: "use #ff0000",
	}
	assert.Equal(t, `core: core.color.bad: invalid color "red" (use #ff0000)`, e.Error())
}
