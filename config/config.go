/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for figtok.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/figtok/resolver"
)

// Config represents the figtok project configuration.
type Config struct {
	// Entry is the token directory or single export file.
	Entry string `yaml:"entry" json:"entry"`

	// Output is the build directory.
	Output string `yaml:"output" json:"output"`

	// Format is the output format name.
	Format string `yaml:"format" json:"format"`

	// Prefix is the global CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Sets restricts output to set slugs matching these globs.
	Sets Patterns `yaml:"sets" json:"sets"`

	// Themes restricts output to theme names matching these globs.
	Themes Patterns `yaml:"themes" json:"themes"`

	// Ambiguity is "first" or "error".
	Ambiguity string `yaml:"ambiguity" json:"ambiguity"`

	// CacheSize bounds the resolver's value cache. Negative disables it.
	CacheSize int `yaml:"cacheSize" json:"cacheSize"`

	// Selector scopes CSS custom properties.
	Selector string `yaml:"selector" json:"selector"`

	// Header is written as a comment at the top of CSS files.
	Header string `yaml:"header" json:"header"`
}

// Patterns is a list of globs, written either as a single string or a list.
type Patterns []string

// UnmarshalYAML handles both string and list forms.
func (p *Patterns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = Patterns{node.Value}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*p = list
	return nil
}

// UnmarshalJSON handles both string and list forms.
func (p *Patterns) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Patterns{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*p = list
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Entry:     "./tokens",
		Output:    "./build",
		Format:    "css",
		Ambiguity: "first",
	}
}

// ResolverOptions returns resolver.Options with configuration applied.
func (c *Config) ResolverOptions() (resolver.Options, error) {
	ambiguity, err := resolver.ParseAmbiguity(c.Ambiguity)
	if err != nil {
		return resolver.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return resolver.Options{
		Prefix:    c.Prefix,
		Ambiguity: ambiguity,
		CacheSize: c.CacheSize,
	}, nil
}
