/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strings"

	"bennypowers.dev/figtok/token"
)

// Tokens extracts the tokens of one set in document order.
// An object with a "type" or "$type" key is a token, any other object is a
// group whose key becomes a segment of the token name. Keys starting with
// "$" are metadata and are skipped.
func Tokens(set string, doc *Object) ([]*token.Token, error) {
	x := &extractor{prefix: strings.ReplaceAll(set, "/", ".")}
	if err := x.walk(doc, nil); err != nil {
		return nil, fmt.Errorf("set %s: %w", set, err)
	}
	return x.tokens, nil
}

type extractor struct {
	prefix string
	tokens []*token.Token
}

func (x *extractor) walk(group *Object, path []string) error {
	for _, key := range group.Keys() {
		if strings.HasPrefix(key, "$") {
			continue
		}
		v, _ := group.Get(key)
		child, ok := v.(*Object)
		current := append(path[:len(path):len(path)], key)
		if !ok {
			return fmt.Errorf("%w: %s is neither a token nor a group", ErrInvalidDocument, strings.Join(current, "."))
		}
		if !child.Has("type", "$type") {
			if err := x.walk(child, current); err != nil {
				return err
			}
			continue
		}
		tok, err := x.token(child, strings.Join(current, "."))
		if err != nil {
			return err
		}
		x.tokens = append(x.tokens, tok)
	}
	return nil
}

func (x *extractor) token(def *Object, name string) (*token.Token, error) {
	rawKind, _ := def.First("type", "$type")
	kindName, ok := rawKind.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: type must be a string", ErrInvalidDocument, name)
	}
	kind, err := token.ParseKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	tok := &token.Token{
		ID:   x.prefix + "." + name,
		Name: name,
		Kind: kind,
	}
	if d, ok := def.First("description", "$description"); ok {
		tok.Description, _ = Text(d)
	}

	raw, ok := def.First("value", "$value")
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: %s has no value", token.ErrInvalidValue, name)
	}

	switch {
	case kind == token.BoxShadow:
		tok.Value, err = shadowValue(name, raw)
	case kind.IsComposite():
		tok.Value, err = compositeValue(name, raw)
	default:
		s, ok := Text(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %s token %s needs a scalar value", token.ErrInvalidValue, kind, name)
		}
		tok.Value = token.Standard{Raw: s}
	}
	if err != nil {
		return nil, err
	}
	if err := tok.Validate(); err != nil {
		return nil, err
	}
	return tok, nil
}

func shadowValue(name string, raw any) (token.Value, error) {
	if s, ok := Text(raw); ok {
		return token.Standard{Raw: s}, nil
	}
	var defs []any
	switch v := raw.(type) {
	case *Object:
		defs = []any{v}
	case []any:
		defs = v
	default:
		return nil, fmt.Errorf("%w: shadow %s", token.ErrInvalidValue, name)
	}
	layers := make([]token.ShadowLayer, 0, len(defs))
	for i, d := range defs {
		obj, ok := d.(*Object)
		if !ok {
			return nil, fmt.Errorf("%w: shadow %s layer %d is not an object", token.ErrInvalidValue, name, i)
		}
		layer, err := shadowLayer(obj)
		if err != nil {
			return nil, fmt.Errorf("shadow %s layer %d: %w", name, i, err)
		}
		layers = append(layers, layer)
	}
	return token.Shadow{Layers: layers}, nil
}

func shadowLayer(obj *Object) (token.ShadowLayer, error) {
	field := func(key, fallback string) string {
		if v, ok := obj.Get(key); ok {
			if s, ok := Text(v); ok {
				return s
			}
		}
		return fallback
	}
	kind, err := token.ParseShadowKind(field("type", "dropShadow"))
	if err != nil {
		return token.ShadowLayer{}, err
	}
	color := field("color", "")
	if color == "" {
		return token.ShadowLayer{}, fmt.Errorf("%w: missing color", token.ErrInvalidValue)
	}
	return token.ShadowLayer{
		Kind:   kind,
		Color:  color,
		X:      field("x", "0"),
		Y:      field("y", "0"),
		Blur:   field("blur", "0"),
		Spread: field("spread", "0"),
	}, nil
}

func compositeValue(name string, raw any) (token.Value, error) {
	obj, ok := raw.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: %s needs an object value", token.ErrInvalidValue, name)
	}
	props := make([]token.Property, 0, obj.Len())
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		s, ok := Text(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s must be a scalar", token.ErrInvalidValue, name, key)
		}
		props = append(props, token.Property{Name: key, Value: s})
	}
	return token.CompositionValue{Properties: props}, nil
}
