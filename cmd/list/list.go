/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for figtok.
package list

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/figtok/cmd/render"
	"bennypowers.dev/figtok/fs"
	"bennypowers.dev/figtok/internal/cli"
	"bennypowers.dev/figtok/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [entry]",
	Short: "List tokens",
	Long: `List the tokens of a Tokens Studio export with optional filtering.

With --theme only the theme's active sets are listed and references resolve
within the theme.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("theme", "", "List the active tokens of this theme")
	Cmd.Flags().String("set", "", "List only tokens of this set")
	Cmd.Flags().String("kind", "", "Filter by token kind")
	Cmd.Flags().String("search", "", "Only tokens whose name, value or description contains this text")
	Cmd.Flags().Bool("regex", false, "Treat --search as a regular expression")
	Cmd.Flags().Bool("resolved", false, "Show resolved values")
	Cmd.Flags().Bool("swatch", false, "Show a color swatch next to color values")
	Cmd.Flags().String("format", "table", "Output format: table, json, names, markdown")
}

// Filter selects tokens.
type Filter struct {
	Set    string
	Kind   string
	Search string
	// Pattern replaces Search matching when set.
	Pattern *regexp.Regexp
}

func run(cmd *cobra.Command, args []string) error {
	theme, _ := cmd.Flags().GetString("theme")
	set, _ := cmd.Flags().GetString("set")
	kind, _ := cmd.Flags().GetString("kind")
	search, _ := cmd.Flags().GetString("search")
	useRegex, _ := cmd.Flags().GetBool("regex")
	resolved, _ := cmd.Flags().GetBool("resolved")
	swatch, _ := cmd.Flags().GetBool("swatch")
	format, _ := cmd.Flags().GetString("format")

	filter := Filter{Set: set, Kind: kind, Search: search}
	if kind != "" {
		if _, err := token.ParseKind(kind); err != nil {
			return err
		}
	}
	if useRegex && search != "" {
		pattern, err := regexp.Compile(search)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		filter.Pattern = pattern
	}

	s := cli.Current(args)
	store, r, err := s.Load(cmd.Context(), fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	tokens, err := store.ActiveTokens(theme)
	if err != nil {
		return err
	}

	rows, err := render.ComputeRows(filterTokens(tokens, filter), r, theme, resolved)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, rows)
	case "names":
		return render.Names(out, rows)
	case "markdown":
		return render.Markdown(out, rows)
	case "table":
		return render.Table(out, rows, swatch)
	}
	return fmt.Errorf("unknown format %q: expected table, json, names or markdown", format)
}

// filterTokens returns the tokens that pass every non-empty criterion of f.
func filterTokens(tokens []*token.Token, f Filter) []*token.Token {
	filtered := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if f.Set != "" && tok.Set != f.Set {
			continue
		}
		if f.Kind != "" && tok.Kind.String() != f.Kind {
			continue
		}
		if (f.Search != "" || f.Pattern != nil) && !matchToken(tok, f) {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

func matchToken(tok *token.Token, f Filter) bool {
	fields := append([]string{tok.Name, tok.Description}, tok.RawStrings()...)
	for _, s := range fields {
		if matchString(s, f.Search, f.Pattern) {
			return true
		}
	}
	return false
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}
