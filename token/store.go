/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenNotFound indicates a lookup for an id that is not in the store.
	ErrTokenNotFound = errors.New("token not found")

	// ErrUnknownTheme indicates a theme name that is not in the store.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrUnknownSet indicates a set slug that is not in the store.
	ErrUnknownSet = errors.New("unknown token set")

	// ErrDuplicate indicates a token id, set or theme declared twice.
	ErrDuplicate = errors.New("duplicate declaration")
)

// Store holds every token, set and theme of a build.
// It is filled once by the loader and only read afterwards; all iteration
// follows declaration order.
type Store struct {
	tokens     map[string]*Token
	order      []string
	sets       []*Set
	setIndex   map[string]*Set
	themes     []*Theme
	themeIndex map[string]*Theme
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		tokens:     make(map[string]*Token),
		setIndex:   make(map[string]*Set),
		themeIndex: make(map[string]*Theme),
	}
}

// AddSet adds a set and its tokens. Tokens keep the given order.
func (s *Store) AddSet(name string, tokens []*Token) error {
	if _, ok := s.setIndex[name]; ok {
		return fmt.Errorf("%w: set %q", ErrDuplicate, name)
	}
	set := &Set{Name: name, IDs: make([]string, 0, len(tokens))}
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if _, ok := s.tokens[tok.ID]; ok || seen[tok.ID] {
			return fmt.Errorf("%w: token %q", ErrDuplicate, tok.ID)
		}
		seen[tok.ID] = true
	}
	for _, tok := range tokens {
		tok.Set = name
		s.tokens[tok.ID] = tok
		s.order = append(s.order, tok.ID)
		set.IDs = append(set.IDs, tok.ID)
	}
	s.sets = append(s.sets, set)
	s.setIndex[name] = set
	return nil
}

// AddTheme adds a theme. Disabled sets are dropped; every remaining set must exist.
func (s *Store) AddTheme(theme *Theme) error {
	if _, ok := s.themeIndex[theme.Name]; ok {
		return fmt.Errorf("%w: theme %q", ErrDuplicate, theme.Name)
	}
	kept := make([]ThemeSet, 0, len(theme.Sets))
	for _, ts := range theme.Sets {
		if ts.State == Disabled {
			continue
		}
		if _, ok := s.setIndex[ts.Name]; !ok {
			return fmt.Errorf("theme %q: %w: %q", theme.Name, ErrUnknownSet, ts.Name)
		}
		kept = append(kept, ts)
	}
	stored := &Theme{Name: theme.Name, Group: theme.Group, Sets: kept}
	s.themes = append(s.themes, stored)
	s.themeIndex[theme.Name] = stored
	return nil
}

// Lookup returns the token with the given id.
func (s *Store) Lookup(id string) (*Token, error) {
	tok, ok := s.tokens[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTokenNotFound, id)
	}
	return tok, nil
}

// ActiveTokens returns the tokens visible under a theme.
// An empty theme name selects every token in set declaration order.
// Otherwise tokens of the theme's source sets come first, then its enabled sets.
func (s *Store) ActiveTokens(theme string) ([]*Token, error) {
	if theme == "" {
		return s.Tokens(), nil
	}
	th, ok := s.themeIndex[theme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	var out []*Token
	for _, name := range th.ActiveSets() {
		for _, id := range s.setIndex[name].IDs {
			out = append(out, s.tokens[id])
		}
	}
	return out, nil
}

// SetTokens returns the tokens of one set in declaration order.
func (s *Store) SetTokens(name string) ([]*Token, error) {
	set, ok := s.setIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	out := make([]*Token, len(set.IDs))
	for i, id := range set.IDs {
		out[i] = s.tokens[id]
	}
	return out, nil
}

// Tokens returns every token in declaration order.
func (s *Store) Tokens() []*Token {
	out := make([]*Token, len(s.order))
	for i, id := range s.order {
		out[i] = s.tokens[id]
	}
	return out
}

// Sets returns the sets in declaration order.
func (s *Store) Sets() []*Set { return s.sets }

// Set returns the set with the given slug.
func (s *Store) Set(name string) (*Set, bool) {
	set, ok := s.setIndex[name]
	return set, ok
}

// Themes returns the themes in declaration order.
func (s *Store) Themes() []*Theme { return s.themes }

// Theme returns the theme with the given name.
func (s *Store) Theme(name string) (*Theme, bool) {
	th, ok := s.themeIndex[name]
	return th, ok
}

// Len returns the number of tokens.
func (s *Store) Len() int { return len(s.order) }
