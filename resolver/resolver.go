/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver computes formatted token values and expands {name}
// references, either into CSS custom property lookups or into the fully
// resolved value of the referenced token.
package resolver

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/figtok/cssmath"
	"bennypowers.dev/figtok/internal/logger"
	"bennypowers.dev/figtok/token"
)

// BrokenRef replaces a reference to a name no active token declares.
const BrokenRef = "BROKEN_REF"

// DefaultCacheSize is the number of static values memoized when
// Options.CacheSize is zero.
const DefaultCacheSize = 4096

// Mode selects how references are expanded.
type Mode int

const (
	// CSSVariables turns {a.b} into var(--a-b).
	CSSVariables Mode = iota
	// StaticValues substitutes the referenced token's computed value.
	StaticValues
)

func (m Mode) String() string {
	if m == StaticValues {
		return "static"
	}
	return "variables"
}

// Ambiguity selects what happens when several active tokens share a name.
type Ambiguity int

const (
	// AmbiguityFirst picks the first token in declaration order.
	AmbiguityFirst Ambiguity = iota
	// AmbiguityReject fails the resolution with an *AmbiguityError.
	AmbiguityReject
)

// ParseAmbiguity parses "first" or "error". The empty string means "first".
func ParseAmbiguity(s string) (Ambiguity, error) {
	switch s {
	case "", "first":
		return AmbiguityFirst, nil
	case "error":
		return AmbiguityReject, nil
	}
	return AmbiguityFirst, fmt.Errorf("unknown ambiguity policy %q (want first or error)", s)
}

// Options configures a Resolver.
type Options struct {
	// Prefix is prepended to generated custom property names.
	Prefix string

	Ambiguity Ambiguity

	// CacheSize bounds the static value cache. Zero means DefaultCacheSize,
	// a negative size disables caching.
	CacheSize int
}

type cacheKey struct {
	id     string
	theme  string
	nested bool
}

// Resolver computes token values against a read-only store.
// It is safe for concurrent use.
type Resolver struct {
	store *token.Store
	opts  Options
	cache *lru.Cache[cacheKey, string]

	mu      sync.Mutex
	indexes map[string]map[string][]*token.Token
	noted   map[string]bool
}

// New creates a resolver over store.
func New(store *token.Store, opts Options) (*Resolver, error) {
	r := &Resolver{
		store:   store,
		opts:    opts,
		indexes: make(map[string]map[string][]*token.Token),
		noted:   make(map[string]bool),
	}
	size := opts.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	if size > 0 {
		cache, err := lru.New[cacheKey, string](size)
		if err != nil {
			return nil, fmt.Errorf("failed to create value cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// Store returns the store the resolver reads from.
func (r *Resolver) Store() *token.Store { return r.store }

// Options returns the resolver configuration.
func (r *Resolver) Options() Options { return r.opts }

// Resolve expands every {name} reference in s.
// In StaticValues mode an unknown name becomes BrokenRef; that is not an error.
func (r *Resolver) Resolve(s string, mode Mode, theme string) (string, error) {
	return r.enrich(s, mode, theme, &visits{})
}

// Value returns the formatted value of a standard or shadow token.
// Composite tokens fail with ErrCompositeValue; use Properties.
func (r *Resolver) Value(tok *token.Token, mode Mode, theme string) (string, error) {
	return r.value(tok, mode, theme, false, &visits{})
}

// Properties returns the resolved properties of a composite token in declaration order.
func (r *Resolver) Properties(tok *token.Token, mode Mode, theme string) ([]token.Property, error) {
	comp, ok := tok.Value.(token.CompositionValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a composite token", token.ErrInvalidValue, tok.ID)
	}
	out := make([]token.Property, len(comp.Properties))
	for i, p := range comp.Properties {
		v, err := r.enrich(p.Value, mode, theme, &visits{})
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", tok.ID, p.Name, err)
		}
		out[i] = token.Property{Name: p.Name, Value: v}
	}
	return out, nil
}

// visits is the stack of token ids entered by one top-level resolution.
type visits struct {
	stack []string
}

func (v *visits) enter(id string) error {
	if i := slices.Index(v.stack, id); i >= 0 {
		path := append(slices.Clone(v.stack[i:]), id)
		return &CycleError{Path: path}
	}
	v.stack = append(v.stack, id)
	return nil
}

func (v *visits) leave() {
	v.stack = v.stack[:len(v.stack)-1]
}

func (r *Resolver) value(tok *token.Token, mode Mode, theme string, nested bool, seen *visits) (string, error) {
	if err := seen.enter(tok.ID); err != nil {
		return "", err
	}
	defer seen.leave()

	key := cacheKey{id: tok.ID, theme: theme, nested: nested}
	cacheable := r.cache != nil && mode == StaticValues
	if cacheable {
		if v, ok := r.cache.Get(key); ok {
			return v, nil
		}
	}

	var (
		v   string
		err error
	)
	switch val := tok.Value.(type) {
	case token.Standard:
		v, err = r.standard(tok, val, mode, theme, nested, seen)
	case token.Shadow:
		v, err = r.shadow(tok, val, mode, theme, seen)
	case token.CompositionValue:
		return "", fmt.Errorf("%s: %w", tok.ID, ErrCompositeValue)
	default:
		return "", fmt.Errorf("%w: token %s has no value", token.ErrInvalidValue, tok.ID)
	}
	if err != nil {
		return "", err
	}

	if cssmath.IsExpression(v) {
		v = "calc(" + v + ")"
	}
	if cacheable {
		r.cache.Add(key, v)
	}
	return v, nil
}

func (r *Resolver) standard(tok *token.Token, val token.Standard, mode Mode, theme string, nested bool, seen *visits) (string, error) {
	if token.HasReference(val.Raw) {
		v, err := r.enrich(val.Raw, mode, theme, seen)
		if err != nil {
			return "", err
		}
		if tok.Kind == token.Color && !nested && !strings.HasPrefix(v, "rgb") {
			v = "rgb(" + v + ")"
		}
		return v, nil
	}
	if tok.Kind == token.Color {
		if strings.HasPrefix(strings.TrimSpace(val.Raw), "rgb") {
			return val.Raw, nil
		}
		return hexChannels(tok.ID, val.Raw)
	}
	return val.Raw, nil
}

func (r *Resolver) shadow(tok *token.Token, val token.Shadow, mode Mode, theme string, seen *visits) (string, error) {
	layers := make([]string, len(val.Layers))
	for i, l := range val.Layers {
		color := l.Color
		switch {
		case strings.HasPrefix(color, "rgb"):
		case token.HasReference(color) && mode == StaticValues:
			c, err := r.enrich(color, mode, theme, seen)
			if err != nil {
				return "", err
			}
			if !strings.HasPrefix(c, "rgb") {
				c = "rgb(" + c + ")"
			}
			color = c
		case token.HasReference(color):
			color = "rgb(" + color + ")"
		default:
			c, err := cssColor(tok.ID, color)
			if err != nil {
				return "", err
			}
			color = c
		}
		inset := ""
		if l.Kind == token.InnerShadow {
			inset = "inset "
		}
		layers[i] = fmt.Sprintf("%s%spx %spx %spx %spx %s", inset, l.X, l.Y, l.Blur, l.Spread, color)
	}
	return r.enrich(strings.Join(layers, ", "), mode, theme, seen)
}

func (r *Resolver) enrich(s string, mode Mode, theme string, seen *visits) (string, error) {
	matches := token.ReferencePattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}
	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(s[last:m[0]])
		name := strings.TrimSpace(s[m[2]:m[3]])
		sub, err := r.substitute(name, mode, theme, seen)
		if err != nil {
			return "", err
		}
		sb.WriteString(sub)
		last = m[1]
	}
	sb.WriteString(s[last:])
	return sb.String(), nil
}

func (r *Resolver) substitute(name string, mode Mode, theme string, seen *visits) (string, error) {
	if mode == CSSVariables {
		return "var(" + token.CSSVariableName(name, r.opts.Prefix) + ")", nil
	}
	target, err := r.find(name, theme)
	if err != nil {
		return "", err
	}
	if target == nil {
		logger.Warn("unresolved reference {%s}", name)
		return BrokenRef, nil
	}
	if _, ok := target.Value.(token.CompositionValue); ok {
		logger.Warn("reference {%s} points at %s token %s, which has no single value", name, target.Kind, target.ID)
		return BrokenRef, nil
	}
	return r.value(target, mode, theme, true, seen)
}

// find returns the first active token named name, or nil.
func (r *Resolver) find(name, theme string) (*token.Token, error) {
	idx, err := r.index(theme)
	if err != nil {
		return nil, err
	}
	candidates := idx[name]
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0], nil
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}
	if r.opts.Ambiguity == AmbiguityReject {
		return nil, &AmbiguityError{Name: name, Candidates: ids}
	}
	r.noteAmbiguity(theme, name, ids)
	return candidates[0], nil
}

func (r *Resolver) noteAmbiguity(theme, name string, ids []string) {
	r.mu.Lock()
	key := theme + "\x00" + name
	first := !r.noted[key]
	r.noted[key] = true
	r.mu.Unlock()
	if first {
		logger.Warn("{%s} matches %s; using %s", name, strings.Join(ids, ", "), ids[0])
	}
}

// index maps names to the active tokens of theme, in declaration order.
func (r *Resolver) index(theme string) (map[string][]*token.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.indexes[theme]; ok {
		return idx, nil
	}
	tokens, err := r.store.ActiveTokens(theme)
	if err != nil {
		return nil, err
	}
	idx := make(map[string][]*token.Token, len(tokens))
	for _, t := range tokens {
		idx[t.Name] = append(idx[t.Name], t)
	}
	r.indexes[theme] = idx
	return idx, nil
}
