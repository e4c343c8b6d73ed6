/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports problems in a token store that would otherwise
// surface as broken or surprising output.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"bennypowers.dev/figtok/cssmath"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/token"
)

// Severity ranks a diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// ValidationError is one diagnostic.
type ValidationError struct {
	Severity Severity
	// Set is the slug of the set declaring the token.
	Set     string
	TokenID string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Set != "" {
		sb.WriteString(e.Set)
		sb.WriteString(": ")
	}
	if e.TokenID != "" {
		sb.WriteString(e.TokenID)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Count returns the number of errors and warnings in diags.
func Count(diags []ValidationError) (errs, warnings int) {
	for _, d := range diags {
		if d.Severity == Error {
			errs++
		} else {
			warnings++
		}
	}
	return errs, warnings
}

// spacedOperator matches a binary operator written the way calc() wants it.
var spacedOperator = regexp.MustCompile(`\s[-+*/]\s`)

// Validate checks every token of store. Per-token checks run first in
// declaration order, followed by reference checks for each theme, or for
// the whole store when it has no themes.
func Validate(store *token.Store, r *resolver.Resolver) []ValidationError {
	v := &validation{store: store, r: r, seen: make(map[string]bool)}
	for _, tok := range store.Tokens() {
		v.literal(tok)
	}

	scopes := []string{""}
	if themes := store.Themes(); len(themes) > 0 {
		scopes = scopes[:0]
		for _, th := range themes {
			scopes = append(scopes, th.Name)
		}
	}
	for _, scope := range scopes {
		v.references(scope)
	}
	return v.diags
}

type validation struct {
	store *token.Store
	r     *resolver.Resolver
	diags []ValidationError
	seen  map[string]bool
}

func (v *validation) report(key string, d ValidationError) {
	if v.seen[key] {
		return
	}
	v.seen[key] = true
	v.diags = append(v.diags, d)
}

// literal checks what a token says about itself: its color literals, and
// arithmetic that will not be wrapped in calc().
func (v *validation) literal(tok *token.Token) {
	if _, ok := tok.Value.(token.CompositionValue); ok {
		return
	}
	// Variable mode never follows references, so only the token's own
	// literals are checked here.
	value, err := v.r.Value(tok, resolver.CSSVariables, "")
	if err != nil {
		d := ValidationError{Severity: Error, Set: tok.Set, TokenID: tok.ID, Message: err.Error()}
		var colorErr *resolver.ColorError
		if errors.As(err, &colorErr) {
			d.Message = fmt.Sprintf("invalid color %q", colorErr.Literal)
			if colorErr.Suggestion != "" {
				d.Suggestion = "use " + colorErr.Suggestion
			} else {
				d.Suggestion = "use a #RRGGBB hex color"
			}
		}
		v.report("literal\x00"+tok.ID, d)
		return
	}

	if _, ok := tok.Value.(token.Standard); !ok {
		return
	}
	if strings.HasPrefix(value, "calc(") || !spacedOperator.MatchString(value) {
		return
	}
	if err := cssmath.Check(value); err != nil {
		v.report("math\x00"+tok.ID, ValidationError{
			Severity:   Warning,
			Set:        tok.Set,
			TokenID:    tok.ID,
			Message:    fmt.Sprintf("%q is emitted without calc(): %v", value, err),
			Suggestion: "fix the expression or quote it as plain text",
		})
	}
}

func (v *validation) references(scope string) {
	tokens, err := v.store.ActiveTokens(scope)
	if err != nil {
		v.report("scope\x00"+scope, ValidationError{Severity: Error, Message: err.Error()})
		return
	}
	byName := make(map[string][]*token.Token, len(tokens))
	byID := make(map[string]*token.Token, len(tokens))
	var names []string
	for _, tok := range tokens {
		if _, ok := byName[tok.Name]; !ok {
			names = append(names, tok.Name)
		}
		byName[tok.Name] = append(byName[tok.Name], tok)
		byID[tok.ID] = tok
	}
	where := ""
	if scope != "" {
		where = " in theme " + scope
	}

	graph := resolver.BuildGraph(tokens)
	if cycle := graph.FindCycle(); cycle != nil {
		members := slices.Clone(cycle[:len(cycle)-1])
		slices.Sort(members)
		first := byID[cycle[0]]
		v.report("cycle\x00"+strings.Join(members, "\x00"), ValidationError{
			Severity:   Error,
			Set:        first.Set,
			TokenID:    first.ID,
			Message:    fmt.Sprintf("cyclic reference%s: %s", where, strings.Join(cycle, " -> ")),
			Suggestion: "break the cycle with a literal value",
		})
	}

	for _, name := range names {
		if candidates := byName[name]; len(candidates) > 1 {
			ids := make([]string, len(candidates))
			for i, c := range candidates {
				ids[i] = c.ID
			}
			v.report("ambiguous\x00"+strings.Join(ids, "\x00"), ValidationError{
				Severity:   Warning,
				Set:        candidates[0].Set,
				TokenID:    candidates[0].ID,
				Message:    fmt.Sprintf("name %s is declared by %s%s", name, strings.Join(ids, ", "), where),
				Suggestion: "references resolve to " + ids[0],
			})
		}
	}

	for _, tok := range tokens {
		for _, raw := range tok.RawStrings() {
			for _, ref := range token.References(raw) {
				v.reference(tok, ref, byName[ref], where)
			}
		}
	}
}

func (v *validation) reference(tok *token.Token, ref string, targets []*token.Token, where string) {
	if len(targets) == 0 {
		v.report("missing\x00"+tok.ID+"\x00"+ref+where, ValidationError{
			Severity:   Warning,
			Set:        tok.Set,
			TokenID:    tok.ID,
			Message:    fmt.Sprintf("unresolved reference {%s}%s", ref, where),
			Suggestion: "static output will contain " + resolver.BrokenRef,
		})
		return
	}
	target := targets[0]
	if _, ok := target.Value.(token.CompositionValue); ok {
		v.report("composite\x00"+tok.ID+"\x00"+target.ID, ValidationError{
			Severity:   Warning,
			Set:        tok.Set,
			TokenID:    tok.ID,
			Message:    fmt.Sprintf("reference {%s} points at %s token %s, which has no single value", ref, target.Kind, target.ID),
			Suggestion: "reference one of its properties' source tokens instead",
		})
	}
}
