/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// hexChannels converts "#RRGGBB" into "R, G, B".
func hexChannels(id, literal string) (string, error) {
	lit := strings.TrimSpace(literal)
	if !hexColorPattern.MatchString(lit) {
		return "", colorError(id, literal)
	}
	c, err := colorful.Hex(lit)
	if err != nil {
		return "", colorError(id, literal)
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("%d, %d, %d", r, g, b), nil
}

// cssColor formats any CSS color literal as rgb() or rgba().
// Used for shadow layer colors, which are emitted as complete colors.
func cssColor(id, literal string) (string, error) {
	c, err := csscolorparser.Parse(strings.TrimSpace(literal))
	if err != nil {
		return "", colorError(id, literal)
	}
	r, g, b, _ := c.RGBA255()
	if c.A < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.A, 'f', -1, 64)), nil
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), nil
}

func colorError(id, literal string) *ColorError {
	e := &ColorError{TokenID: id, Literal: literal}
	if c, err := csscolorparser.Parse(strings.TrimSpace(literal)); err == nil && c.A == 1 {
		e.Suggestion = c.HexString()
	}
	return e
}
