/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package query provides the query command for figtok.
package query

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"

	"bennypowers.dev/figtok/convert/formatter"
	"bennypowers.dev/figtok/convert/formatter/nestedjson"
	"bennypowers.dev/figtok/fs"
	"bennypowers.dev/figtok/internal/cli"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/token"
)

// Cmd is the query cobra command.
var Cmd = &cobra.Command{
	Use:   "query <jsonpath> [entry]",
	Short: "Query resolved tokens with JSONPath",
	Long: `Evaluate a JSONPath expression against the nested JSON a build would
produce for one theme or set.

Without --theme or --set the first theme is used, or every token when the
export has no themes.

Examples:
  figtok query '$.color.blue'
  figtok query --theme 'Brand / Dark' '$.surface.*'
  figtok query '$..fontFamily'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: run,
}

func init() {
	Cmd.Flags().String("theme", "", "Resolve within this theme")
	Cmd.Flags().String("set", "", "Only include tokens of this set")
}

func run(cmd *cobra.Command, args []string) error {
	theme, _ := cmd.Flags().GetString("theme")
	set, _ := cmd.Flags().GetString("set")

	if _, err := jp.ParseString(args[0]); err != nil {
		return fmt.Errorf("invalid JSONPath %q: %w", args[0], err)
	}

	s := cli.Current(args[1:])
	store, r, err := s.Load(cmd.Context(), fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	unit, err := Unit(store, theme, set)
	if err != nil {
		return err
	}
	tree, err := nestedjson.Tree(unit, r)
	if err != nil {
		return err
	}

	results, err := Evaluate(tree, args[0])
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling results: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

// Unit selects the tokens to query. Values are always static.
func Unit(store *token.Store, theme, set string) (formatter.Unit, error) {
	if theme == "" && set == "" && len(store.Themes()) > 0 {
		theme = store.Themes()[0].Name
	}
	tokens, err := store.ActiveTokens(theme)
	if err != nil {
		return formatter.Unit{}, err
	}
	if set != "" {
		if _, ok := store.Set(set); !ok {
			return formatter.Unit{}, fmt.Errorf("%w: %q", token.ErrUnknownSet, set)
		}
		filtered := tokens[:0:0]
		for _, tok := range tokens {
			if tok.Set == set {
				filtered = append(filtered, tok)
			}
		}
		tokens = filtered
	}

	name := set
	if theme != "" {
		name = theme
	}
	return formatter.Unit{Name: name, Theme: theme, Mode: resolver.StaticValues, Tokens: tokens}, nil
}

// Evaluate parses expr and returns every match in tree.
func Evaluate(tree any, expr string) ([]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", expr, err)
	}
	return x.Get(tree), nil
}
