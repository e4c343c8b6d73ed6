/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strings"
)

// Set is a named, ordered group of tokens, usually one source file.
type Set struct {
	// Name is the set slug, e.g. "core/colors".
	Name string

	// IDs lists the token ids in declaration order.
	IDs []string
}

// DotName returns the slug with "/" replaced by ".", the prefix of every token id in the set.
func (s *Set) DotName() string {
	return strings.ReplaceAll(s.Name, "/", ".")
}

// SetState is the state of a token set inside a theme.
type SetState int

const (
	Disabled SetState = iota
	Enabled
	Source
)

// ParseSetState parses "disabled", "enabled" or "source".
func ParseSetState(s string) (SetState, error) {
	switch s {
	case "disabled":
		return Disabled, nil
	case "enabled":
		return Enabled, nil
	case "source":
		return Source, nil
	}
	return Disabled, fmt.Errorf("unknown token set state %q", s)
}

func (s SetState) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Source:
		return "source"
	default:
		return "disabled"
	}
}

// ThemeSet pairs a set slug with its state in a theme.
type ThemeSet struct {
	Name  string
	State SetState
}

// Theme is a named selection of token sets.
type Theme struct {
	Name string

	// Group is the optional Tokens Studio theme group.
	Group string

	// Sets in declaration order. Disabled sets are removed when the theme is
	// added to a Store.
	Sets []ThemeSet
}

// ActiveSets returns the set slugs the theme draws tokens from:
// source sets first, then enabled sets, each in declaration order.
func (t *Theme) ActiveSets() []string {
	var source, enabled []string
	for _, s := range t.Sets {
		switch s.State {
		case Source:
			source = append(source, s.Name)
		case Enabled:
			enabled = append(enabled, s.Name)
		}
	}
	return append(source, enabled...)
}

// FileName returns the output base name for the theme: the name split on "/",
// each part trimmed, joined with "-".
func (t *Theme) FileName() string {
	parts := strings.Split(t.Name, "/")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, "-")
}
