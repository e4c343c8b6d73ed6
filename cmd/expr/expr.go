/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package expr provides the expr command for figtok.
package expr

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/figtok/cssmath"
)

// ErrNotExpression is returned for input that would not be wrapped in calc().
var ErrNotExpression = errors.New("not a calc expression")

// Cmd is the expr cobra command.
var Cmd = &cobra.Command{
	Use:   "expr <expression>",
	Short: "Check whether a value is wrapped in calc()",
	Long: `Tokenize and validate an arithmetic value the way build does. Accepted
values are printed wrapped in calc(); rejected values exit non-zero with the
reason.

Examples:
  figtok expr '100% - 50px'
  figtok expr --tokens '(var(--space) * 2) / 3'`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("tokens", false, "Print the token stream")
}

func run(cmd *cobra.Command, args []string) error {
	showTokens, _ := cmd.Flags().GetBool("tokens")
	return Explain(cmd.OutOrStdout(), args[0], showTokens)
}

// Explain writes the verdict for input, preceded by its tokens when
// showTokens is set.
func Explain(w io.Writer, input string, showTokens bool) error {
	tokens, err := cssmath.Tokenize(input)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotExpression, err)
	}
	if showTokens {
		for _, tok := range tokens {
			if tok.Kind == cssmath.Whitespace {
				continue
			}
			if _, err := fmt.Fprintf(w, "%3d  %-10s %s\n", tok.Pos, tok.Kind, tok.Text); err != nil {
				return err
			}
		}
	}
	if err := cssmath.Validate(tokens); err != nil {
		return fmt.Errorf("%w: %w", ErrNotExpression, err)
	}
	_, err = fmt.Fprintf(w, "calc(%s)\n", input)
	return err
}
