/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser decodes Tokens Studio documents into ordered trees and
// extracts design tokens from them.
//
// Tokens Studio exports are order-sensitive: token sets, themes and the
// tokens inside a set are all emitted in the order the author wrote them.
// Object therefore keeps its keys in document order.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrInvalidDocument indicates a document that decodes but has the wrong shape.
	ErrInvalidDocument = errors.New("invalid token document")
)

// Number is a numeric literal kept in its authored form.
type Number string

// Object is a decoded mapping with keys in document order.
// Values are *Object, []any, string, Number, bool or nil.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores a value. A repeated key keeps its first position.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Keys returns the keys in document order.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// First returns the value of the first present key among keys.
func (o *Object) First(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := o.values[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether any of keys is present.
func (o *Object) Has(keys ...string) bool {
	_, ok := o.First(keys...)
	return ok
}

// Plain converts the object into map[string]any, dropping key order.
// Numbers become float64 where they parse, as encoding/json would produce.
func (o *Object) Plain() map[string]any {
	out := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		out[k] = plain(o.values[k])
	}
	return out
}

func plain(v any) any {
	switch x := v.(type) {
	case *Object:
		return x.Plain()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	case Number:
		if f, err := parseFloat(string(x)); err == nil {
			return f
		}
		return string(x)
	}
	return v
}

// Parse decodes an object document according to the extension of name.
func Parse(data []byte, name string) (*Object, error) {
	root, err := Decode(data, name)
	if err != nil {
		return nil, err
	}
	obj, ok := root.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: %s: root must be an object", ErrInvalidDocument, name)
	}
	return obj, nil
}

// Decode decodes a document of any root shape according to the extension of name.
func Decode(data []byte, name string) (any, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

// Text returns the literal text of a scalar value.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case Number:
		return string(x), true
	case bool:
		if x {
			return "true", true
		}
		return "false", true
	}
	return "", false
}
