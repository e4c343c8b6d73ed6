/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"encoding/json"
	"errors"
	"path"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bennypowers.dev/figtok/convert"
	"bennypowers.dev/figtok/internal/mapfs"
	"bennypowers.dev/figtok/load"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/testutil"
	"bennypowers.dev/figtok/token"
)

func loadFixture(t *testing.T, fixture, entry string, opts resolver.Options) (*token.Store, *resolver.Resolver) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, path.Join("fixtures", fixture), "/src")
	store, err := load.Load(t.Context(), path.Join("/src", entry), load.Options{FS: mfs})
	if err != nil {
		t.Fatalf("failed to load %s: %v", fixture, err)
	}
	r, err := resolver.New(store, opts)
	if err != nil {
		t.Fatalf("resolver.New() error = %v", err)
	}
	return store, r
}

func outputPaths(outputs []convert.Output) []string {
	paths := make([]string, len(outputs))
	for i, o := range outputs {
		paths[i] = o.Path
	}
	return paths
}

func TestBuild_ThemesCSS(t *testing.T) {
	store, r := loadFixture(t, "studio", "", resolver.Options{})

	outputs, err := convert.Build(t.Context(), store, r, convert.Options{Format: convert.FormatCSS})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := outputPaths(outputs), []string{"Light.css", "Brand-Dark.css"}; !slices.Equal(got, want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	for _, o := range outputs {
		testutil.Golden(t, path.Join("golden/studio-css", o.Path), o.Data)
	}
}

func TestBuild_ThemesJSON(t *testing.T) {
	store, r := loadFixture(t, "studio", "", resolver.Options{})

	outputs, err := convert.Build(t.Context(), store, r, convert.Options{
		Format: convert.FormatJSON,
		Themes: []string{"Light"},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := outputPaths(outputs); !slices.Equal(got, []string{"Light.json"}) {
		t.Fatalf("paths = %v", got)
	}
	testutil.Golden(t, "golden/studio-json/Light.json", outputs[0].Data)
}

func TestBuild_SetsCSS(t *testing.T) {
	store, r := loadFixture(t, "single", "tokens.json", resolver.Options{})

	outputs, err := convert.Build(t.Context(), store, r, convert.Options{Format: convert.FormatCSS})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := outputPaths(outputs), []string{"global.css", "components/card.css"}; !slices.Equal(got, want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	for _, o := range outputs {
		testutil.Golden(t, path.Join("golden/single-css", o.Path), o.Data)
	}
}

func TestBuild_FlatWithPrefix(t *testing.T) {
	store, r := loadFixture(t, "single", "tokens.json", resolver.Options{Prefix: "ds"})

	outputs, err := convert.Build(t.Context(), store, r, convert.Options{
		Format: convert.FormatFlat,
		Sets:   []string{"global"},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(outputs) != 1 || outputs[0].Path != "global.json" {
		t.Fatalf("outputs = %v", outputPaths(outputs))
	}

	var got map[string]any
	if err := json.Unmarshal(outputs[0].Data, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	want := map[string]any{
		"ds-color-brand":  "rgb(255, 107, 53)",
		"ds-color-accent": "rgb(255, 107, 53)",
		"ds-radius-sm":    "2px",
		"ds-radius-md":    "calc(2px * 2)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flat output mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_SetFilterInsideThemes(t *testing.T) {
	store, _ := loadFixture(t, "studio", "", resolver.Options{})

	units, err := convert.Plan(store, convert.Options{
		Format: convert.FormatCSS,
		Sets:   []string{"theme/*"},
		Themes: []string{"Brand*"},
	})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1", len(units))
	}
	u := units[0]
	if u.Name != "Brand-Dark" || u.Theme != "Brand / Dark" || u.Mode != resolver.CSSVariables {
		t.Errorf("unit = %+v", u)
	}
	var names []string
	for _, tok := range u.Tokens {
		names = append(names, tok.ID)
	}
	if want := []string{"theme.dark.surface.bg", "theme.dark.surface.fg"}; !slices.Equal(names, want) {
		t.Errorf("tokens = %v, want %v", names, want)
	}
}

func TestPlan_ThemePatterns(t *testing.T) {
	store, _ := loadFixture(t, "studio", "", resolver.Options{})

	tests := []struct {
		pattern string
		want    []string
	}{
		{"*", []string{"Light", "Brand-Dark"}},
		{"Brand*", []string{"Brand-Dark"}},
		{"Brand / *", []string{"Brand-Dark"}},
		{"Brand-Dark", []string{"Brand-Dark"}},
		{"Light", []string{"Light"}},
		{"Dark", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			units, err := convert.Plan(store, convert.Options{Format: convert.FormatCSS, Themes: []string{tt.pattern}})
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}
			var got []string
			for _, u := range units {
				got = append(got, u.Name)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Plan(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPlan_BadPattern(t *testing.T) {
	store, _ := loadFixture(t, "studio", "", resolver.Options{})
	if _, err := convert.Plan(store, convert.Options{Sets: []string{"[oops"}}); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestBuild_Collision(t *testing.T) {
	store := token.NewStore()
	if err := store.AddSet("core", nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a/b", "a / b"} {
		if err := store.AddTheme(&token.Theme{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	r, err := resolver.New(store, resolver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = convert.Build(t.Context(), store, r, convert.Options{Format: convert.FormatCSS})
	if !errors.Is(err, convert.ErrOutputCollision) {
		t.Errorf("Build() error = %v, want ErrOutputCollision", err)
	}
}

func TestBuild_InvalidColorIsFatal(t *testing.T) {
	store := token.NewStore()
	err := store.AddSet("core", []*token.Token{
		{ID: "core.bad", Name: "bad", Kind: token.Color, Value: token.Standard{Raw: "blue"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	r, err := resolver.New(store, resolver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = convert.Build(t.Context(), store, r, convert.Options{Format: convert.FormatCSS})
	if !errors.Is(err, resolver.ErrInvalidColorLiteral) {
		t.Errorf("Build() error = %v, want ErrInvalidColorLiteral", err)
	}
}

func TestWrite(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/out/stale.css", "old", 0o644)

	outputs := []convert.Output{
		{Path: "Light.css", Data: []byte("a")},
		{Path: "components/card.css", Data: []byte("b")},
	}

	if err := convert.Write(mfs, "/out", outputs, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := []string{"/out/Light.css", "/out/components/card.css", "/out/stale.css"}
	if got := mfs.Files(); !slices.Equal(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}

	if err := convert.Write(mfs, "/out", outputs, true); err != nil {
		t.Fatalf("Write(clean) error = %v", err)
	}
	want = []string{"/out/Light.css", "/out/components/card.css"}
	if got := mfs.Files(); !slices.Equal(got, want) {
		t.Errorf("Files() after clean = %v, want %v", got, want)
	}
	data, _ := mfs.ReadFile("/out/components/card.css")
	if string(data) != "b" {
		t.Errorf("card.css = %q", data)
	}
}

func TestWrite_RefusesRoot(t *testing.T) {
	mfs := mapfs.New()
	for _, dir := range []string{"/", "."} {
		if err := convert.Write(mfs, dir, nil, true); !errors.Is(err, convert.ErrUnsafeOutput) {
			t.Errorf("Write(%q) error = %v, want ErrUnsafeOutput", dir, err)
		}
	}
}
