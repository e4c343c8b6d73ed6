/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert turns a token store into output files.
//
// When the store has themes, every theme becomes one file holding the
// theme's active tokens. Otherwise every set becomes one file with
// statically resolved values.
package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/figtok/convert/formatter"
	"bennypowers.dev/figtok/fs"
	"bennypowers.dev/figtok/internal/logger"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/token"
)

var (
	// ErrOutputCollision indicates two units that map to the same file.
	ErrOutputCollision = errors.New("output path collision")

	// ErrUnsafeOutput indicates an output directory that must not be cleaned.
	ErrUnsafeOutput = errors.New("refusing to clean output directory")
)

// Options configures a build.
type Options struct {
	Format Format

	// Sets are doublestar patterns over set slugs. Only tokens of matching
	// sets are emitted; with themes, references still resolve against every
	// active set. Empty means all.
	Sets []string

	// Themes are doublestar patterns matched against the theme name and
	// against its file name, so "Brand*" selects "Brand / Dark" through
	// "Brand-Dark". Empty means all.
	Themes []string

	// Selector scopes CSS custom properties.
	Selector string

	// Header is written as a comment at the top of CSS files.
	Header string
}

// Output is one rendered file.
type Output struct {
	// Path is relative to the output directory and slash-separated.
	Path string
	Data []byte
}

// Plan lists the units to render.
func Plan(store *token.Store, opts Options) ([]formatter.Unit, error) {
	for _, p := range append(append([]string{}, opts.Sets...), opts.Themes...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, p)
		}
	}

	var units []formatter.Unit
	if len(store.Themes()) > 0 {
		for _, th := range store.Themes() {
			if !matchTheme(opts.Themes, th) {
				continue
			}
			active, err := store.ActiveTokens(th.Name)
			if err != nil {
				return nil, err
			}
			var tokens []*token.Token
			for _, tok := range active {
				if matchAny(opts.Sets, tok.Set) {
					tokens = append(tokens, tok)
				}
			}
			units = append(units, formatter.Unit{
				Name:   th.FileName(),
				Theme:  th.Name,
				Mode:   opts.Format.ThemeMode(),
				Tokens: tokens,
			})
		}
		return units, nil
	}

	for _, set := range store.Sets() {
		if !matchAny(opts.Sets, set.Name) {
			continue
		}
		tokens, err := store.SetTokens(set.Name)
		if err != nil {
			return nil, err
		}
		units = append(units, formatter.Unit{
			Name:   set.Name,
			Mode:   resolver.StaticValues,
			Tokens: tokens,
		})
	}
	return units, nil
}

func matchAny(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

func matchTheme(patterns []string, th *token.Theme) bool {
	return matchAny(patterns, th.Name) || matchAny(patterns, th.FileName())
}

// Build renders every planned unit.
func Build(ctx context.Context, store *token.Store, r *resolver.Resolver, opts Options) ([]Output, error) {
	f, err := NewFormatter(opts.Format, opts)
	if err != nil {
		return nil, err
	}
	units, err := Plan(store, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(units))
	outputs := make([]Output, 0, len(units))
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := u.Name + f.Extension()
		if prev, ok := seen[path]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrOutputCollision, prev, describe(u), path)
		}
		seen[path] = describe(u)

		data, err := f.Format(u, r)
		if err != nil {
			return nil, err
		}
		logger.Debug("rendered %s (%d tokens, %s)", path, len(u.Tokens), u.Mode)
		outputs = append(outputs, Output{Path: path, Data: data})
	}
	return outputs, nil
}

func describe(u formatter.Unit) string {
	if u.Theme != "" {
		return "theme " + u.Theme
	}
	return "set " + u.Name
}

// Write stores outputs under outDir. With clean, outDir is removed first so
// files of deleted sets or themes do not linger.
func Write(filesystem fs.FileSystem, outDir string, outputs []Output, clean bool) error {
	if clean {
		abs, err := filepath.Abs(outDir)
		if err != nil {
			return err
		}
		if abs == filepath.Dir(abs) || filepath.Clean(outDir) == "." {
			return fmt.Errorf("%w: %s", ErrUnsafeOutput, outDir)
		}
		if err := filesystem.RemoveAll(outDir); err != nil {
			return fmt.Errorf("failed to clean %s: %w", outDir, err)
		}
	}
	if err := filesystem.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}
	for _, o := range outputs {
		path := filepath.Join(outDir, filepath.FromSlash(o.Path))
		if err := filesystem.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if err := filesystem.WriteFile(path, o.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
