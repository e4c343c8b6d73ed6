/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads Tokens Studio exports into a token store.
//
// Two layouts are supported. A single JSON or YAML file holds every set as a
// top-level key, next to optional "$metadata" and "$themes" keys. A directory
// holds one JSON file per set, plus optional "$metadata.json" and
// "$themes.json" files.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/figtok/fs"
	"bennypowers.dev/figtok/internal/logger"
	"bennypowers.dev/figtok/parser"
	"bennypowers.dev/figtok/token"
)

const (
	metadataKey = "$metadata"
	themesKey   = "$themes"
)

var (
	// ErrMissingSet indicates a set named by the metadata that has no content.
	ErrMissingSet = errors.New("token set not found")

	// ErrInvalidMetadata indicates a malformed $metadata or $themes document.
	ErrInvalidMetadata = errors.New("invalid metadata")
)

// Options configures how tokens are loaded.
type Options struct {
	// FS is the filesystem to read from. Defaults to the OS filesystem.
	FS fs.FileSystem
}

// Load reads the sets and themes found at entry.
// An entry with a .json, .yaml or .yml extension is read as a single file,
// anything else as a directory.
func Load(ctx context.Context, entry string, opts Options) (*token.Store, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	switch strings.ToLower(filepath.Ext(entry)) {
	case ".json", ".yaml", ".yml":
		return loadFile(ctx, filesystem, entry)
	}
	return loadDir(ctx, filesystem, entry)
}

func loadFile(ctx context.Context, filesystem fs.FileSystem, path string) (*token.Store, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := parser.Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var order []string
	if meta, ok := doc.Get(metadataKey); ok {
		if order, err = setOrder(meta); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		for _, key := range doc.Keys() {
			if !strings.HasPrefix(key, "$") {
				order = append(order, key)
			}
		}
	}

	store := token.NewStore()
	for _, slug := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, ok := doc.Get(slug)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %s", path, ErrMissingSet, slug)
		}
		set, ok := v.(*parser.Object)
		if !ok {
			return nil, fmt.Errorf("%s: %w: set %s is not an object", path, parser.ErrInvalidDocument, slug)
		}
		if err := addSet(store, slug, set); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if themes, ok := doc.Get(themesKey); ok {
		if err := addThemes(store, themes); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return store, nil
}

func loadDir(ctx context.Context, filesystem fs.FileSystem, dir string) (*token.Store, error) {
	order, err := dirSetOrder(filesystem, dir)
	if err != nil {
		return nil, err
	}

	store := token.NewStore()
	for _, slug := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, filepath.FromSlash(slug)+".json")
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMissingSet, slug, err)
		}
		doc, err := parser.ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := addSet(store, slug, doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	themesPath := filepath.Join(dir, themesKey+".json")
	if filesystem.Exists(themesPath) {
		data, err := filesystem.ReadFile(themesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", themesPath, err)
		}
		themes, err := parser.DecodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", themesPath, err)
		}
		if err := addThemes(store, themes); err != nil {
			return nil, fmt.Errorf("%s: %w", themesPath, err)
		}
	}
	return store, nil
}

// dirSetOrder reads the set order from $metadata.json, or falls back to
// every JSON file under dir in lexical order.
func dirSetOrder(filesystem fs.FileSystem, dir string) ([]string, error) {
	metaPath := filepath.Join(dir, metadataKey+".json")
	if filesystem.Exists(metaPath) {
		data, err := filesystem.ReadFile(metaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", metaPath, err)
		}
		meta, err := parser.ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", metaPath, err)
		}
		order, err := setOrder(meta)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", metaPath, err)
		}
		return order, nil
	}

	files, err := fs.Glob(filesystem, dir, "**/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list token sets in %s: %w", dir, err)
	}
	logger.Debug("no %s.json in %s, loading %d files as sets", metadataKey, dir, len(files))

	var order []string
	for _, f := range files {
		if strings.HasPrefix(filepath.Base(f), "$") {
			continue
		}
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			return nil, err
		}
		order = append(order, strings.TrimSuffix(filepath.ToSlash(rel), ".json"))
	}
	return order, nil
}

func setOrder(meta any) ([]string, error) {
	obj, ok := meta.(*parser.Object)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidMetadata, metadataKey)
	}
	raw, ok := obj.Get("tokenSetOrder")
	if !ok {
		return nil, fmt.Errorf("%w: %s has no tokenSetOrder", ErrInvalidMetadata, metadataKey)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: tokenSetOrder must be a list", ErrInvalidMetadata)
	}
	order := make([]string, 0, len(list))
	for _, v := range list {
		slug, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: tokenSetOrder entries must be strings", ErrInvalidMetadata)
		}
		order = append(order, slug)
	}
	return order, nil
}

func addSet(store *token.Store, slug string, doc *parser.Object) error {
	tokens, err := parser.Tokens(slug, doc)
	if err != nil {
		return err
	}
	if err := store.AddSet(slug, tokens); err != nil {
		return err
	}
	logger.Debug("loaded set %s (%d tokens)", slug, len(tokens))
	return nil
}

func addThemes(store *token.Store, raw any) error {
	list, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("%w: %s must be a list", ErrInvalidMetadata, themesKey)
	}
	for i, v := range list {
		theme, err := parseTheme(v)
		if err != nil {
			return fmt.Errorf("theme %d: %w", i, err)
		}
		if err := store.AddTheme(theme); err != nil {
			return err
		}
	}
	return nil
}

func parseTheme(v any) (*token.Theme, error) {
	obj, ok := v.(*parser.Object)
	if !ok {
		return nil, fmt.Errorf("%w: theme must be an object", ErrInvalidMetadata)
	}
	rawName, _ := obj.Get("name")
	name, ok := parser.Text(rawName)
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: theme has no name", ErrInvalidMetadata)
	}
	theme := &token.Theme{Name: name}
	if g, ok := obj.Get("group"); ok {
		theme.Group, _ = parser.Text(g)
	}

	rawSets, ok := obj.Get("selectedTokenSets")
	if !ok {
		return theme, nil
	}
	sets, ok := rawSets.(*parser.Object)
	if !ok {
		return nil, fmt.Errorf("%w: theme %s: selectedTokenSets must be an object", ErrInvalidMetadata, name)
	}
	for _, slug := range sets.Keys() {
		v, _ := sets.Get(slug)
		s, _ := parser.Text(v)
		state, err := token.ParseSetState(s)
		if err != nil {
			return nil, fmt.Errorf("theme %s: set %s: %w", name, slug, err)
		}
		theme.Sets = append(theme.Sets, token.ThemeSet{Name: slug, State: state})
	}
	return theme, nil
}
