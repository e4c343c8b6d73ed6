/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package nestedjson renders tokens as a nested JSON object keyed by name segments.
package nestedjson

import (
	"encoding/json"
	"strings"

	"bennypowers.dev/figtok/convert/formatter"
	"bennypowers.dev/figtok/resolver"
)

// Formatter outputs nested JSON.
type Formatter struct{}

// New creates a nested JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Extension() string { return ".json" }

func (f *Formatter) Format(unit formatter.Unit, r *resolver.Resolver) ([]byte, error) {
	tree, err := Tree(unit, r)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Tree builds the nested object for unit. "a.b.c" becomes {a: {b: {c: v}}};
// composite tokens hold an object of property to value. A later token
// replaces whatever an earlier one left at the same path.
func Tree(unit formatter.Unit, r *resolver.Resolver) (map[string]any, error) {
	entries, err := formatter.Resolve(unit, r)
	if err != nil {
		return nil, err
	}
	root := make(map[string]any)
	for _, e := range entries {
		var leaf any = e.Value
		if e.Composite {
			props := make(map[string]any, len(e.Properties))
			for _, p := range e.Properties {
				props[p.Name] = p.Value
			}
			leaf = props
		}
		insert(root, strings.Split(e.Token.Name, "."), leaf)
	}
	return root, nil
}

func insert(node map[string]any, path []string, leaf any) {
	for _, key := range path[:len(path)-1] {
		child, ok := node[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[key] = child
		}
		node = child
	}
	node[path[len(path)-1]] = leaf
}
