/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson renders tokens as a flat JSON object keyed by kebab-case name.
package flatjson

import (
	"encoding/json"

	"bennypowers.dev/figtok/convert/formatter"
	"bennypowers.dev/figtok/resolver"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Extension() string { return ".json" }

// Format converts tokens to flat key-value JSON. Composite tokens map to an
// object of their properties.
func (f *Formatter) Format(unit formatter.Unit, r *resolver.Resolver) ([]byte, error) {
	entries, err := formatter.Resolve(unit, r)
	if err != nil {
		return nil, err
	}
	prefix := r.Options().Prefix

	result := make(map[string]any, len(entries))
	for _, e := range entries {
		key := formatter.Key(e.Token.Name, prefix)
		if !e.Composite {
			result[key] = e.Value
			continue
		}
		props := make(map[string]string, len(e.Properties))
		for _, p := range e.Properties {
			props[p.Name] = p.Value
		}
		result[key] = props
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
