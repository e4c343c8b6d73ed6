/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"slices"

	"bennypowers.dev/figtok/token"
)

// Graph is the directed graph of references between tokens, keyed by id.
// A reference points at the first token in declaration order that carries
// the referenced name, which is the token the resolver substitutes.
type Graph struct {
	nodes        []string
	targets      map[string]string
	dependencies map[string][]string
	dependents   map[string][]string
	missing      []string
}

// BuildGraph builds a reference graph from tokens in declaration order.
func BuildGraph(tokens []*token.Token) *Graph {
	g := &Graph{
		targets:      make(map[string]string),
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
	}

	for _, tok := range tokens {
		g.nodes = append(g.nodes, tok.ID)
		if _, ok := g.targets[tok.Name]; !ok {
			g.targets[tok.Name] = tok.ID
		}
	}

	missing := make(map[string]bool)
	for _, tok := range tokens {
		for _, raw := range tok.RawStrings() {
			for _, ref := range token.References(raw) {
				dep, ok := g.targets[ref]
				if !ok {
					if !missing[ref] {
						missing[ref] = true
						g.missing = append(g.missing, ref)
					}
					continue
				}
				if slices.Contains(g.dependencies[tok.ID], dep) {
					continue
				}
				g.dependencies[tok.ID] = append(g.dependencies[tok.ID], dep)
				g.dependents[dep] = append(g.dependents[dep], tok.ID)
			}
		}
	}

	return g
}

// Nodes returns the token ids in declaration order.
func (g *Graph) Nodes() []string { return g.nodes }

// Target returns the id a reference to name resolves to.
func (g *Graph) Target(name string) (string, bool) {
	id, ok := g.targets[name]
	return id, ok
}

// Dependencies returns the ids the given token references.
func (g *Graph) Dependencies(id string) []string {
	if deps, ok := g.dependencies[id]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the ids of tokens that reference the given token.
func (g *Graph) Dependents(id string) []string {
	if deps, ok := g.dependents[id]; ok {
		return deps
	}
	return []string{}
}

// Missing returns referenced names that no token declares, in order of first use.
func (g *Graph) Missing() []string { return g.missing }

// FindCycle returns the first cycle found walking nodes in declaration
// order, or nil. The first and last ids of the path are equal.
func (g *Graph) FindCycle() []string {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)

	for _, node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, onPath, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *Graph) findCycleDFS(node string, visited, onPath map[string]bool, path []string) []string {
	if onPath[node] {
		start := slices.Index(path, node)
		if start == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q on path but not in %v", node, path))
		}
		return append(slices.Clone(path[start:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	onPath[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, onPath, path); cycle != nil {
			return cycle
		}
	}

	onPath[node] = false
	return nil
}

// Order returns ids with dependencies before dependents.
// It fails with a *CycleError when the graph has a cycle.
func (g *Graph) Order() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, &CycleError{Path: cycle}
	}

	visited := make(map[string]bool)
	result := make([]string, 0, len(g.nodes))
	for _, node := range g.nodes {
		if !visited[node] {
			g.orderDFS(node, visited, &result)
		}
	}
	return result, nil
}

func (g *Graph) orderDFS(node string, visited map[string]bool, out *[]string) {
	visited[node] = true
	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.orderDFS(dep, visited, out)
		}
	}
	*out = append(*out, node)
}
