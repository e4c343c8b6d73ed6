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

// ErrUnknownKind indicates a token type that figtok does not support.
var ErrUnknownKind = errors.New("unknown token type")

// Kind is the type of a design token.
type Kind int

const (
	BorderRadius Kind = iota
	BorderWidth
	BoxShadow
	Color
	Composition
	Dimension
	FontFamily
	FontSize
	FontWeight
	LetterSpacing
	LineHeight
	Opacity
	Sizing
	Spacing
	Typography
	Other
)

// kindNames holds the input alias for each kind, as written by Tokens Studio.
var kindNames = [...]string{
	BorderRadius:  "borderRadius",
	BorderWidth:   "borderWidth",
	BoxShadow:     "boxShadow",
	Color:         "color",
	Composition:   "composition",
	Dimension:     "dimension",
	FontFamily:    "fontFamilies",
	FontSize:      "fontSizes",
	FontWeight:    "fontWeights",
	LetterSpacing: "letterSpacing",
	LineHeight:    "lineHeights",
	Opacity:       "opacity",
	Sizing:        "sizing",
	Spacing:       "spacing",
	Typography:    "typography",
	Other:         "other",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// ParseKind returns the Kind for a Tokens Studio type alias.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindsByName[s]; ok {
		return k, nil
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// String returns the input alias of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsComposite reports whether tokens of this kind bundle several CSS properties.
func (k Kind) IsComposite() bool {
	return k == Composition || k == Typography
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}
