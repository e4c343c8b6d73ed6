/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for figtok.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/figtok/fs"
	"bennypowers.dev/figtok/internal/cli"
	"bennypowers.dev/figtok/validator"
)

// ErrValidationFailed is returned when diagnostics fail the run.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [entry]",
	Short: "Validate design tokens",
	Long: `Check a Tokens Studio export for reference cycles, invalid colors,
unresolved or ambiguous references, and arithmetic that will not be wrapped
in calc().`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	s := cli.Current(args)
	store, r, err := s.Load(cmd.Context(), fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	diags := validator.Validate(store, r)
	out := cmd.OutOrStdout()
	if err := report(out, diags); err != nil {
		return err
	}
	return verdict(out, diags, store.Len(), strict)
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	hint         = color.New(color.Faint)
)

// report prints one line per diagnostic, followed by its suggestion.
func report(w io.Writer, diags []validator.ValidationError) error {
	for _, d := range diags {
		label := warningLabel
		if d.Severity == validator.Error {
			label = errorLabel
		}
		location := d.TokenID
		if d.Set != "" && location != "" {
			location = d.Set + ": " + location
		}
		if location != "" {
			location += ": "
		}
		if _, err := fmt.Fprintf(w, "%s %s%s\n", label.Sprint(d.Severity.String()+":"), location, d.Message); err != nil {
			return err
		}
		if d.Suggestion != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", hint.Sprint("hint: "+d.Suggestion)); err != nil {
				return err
			}
		}
	}
	return nil
}

func verdict(w io.Writer, diags []validator.ValidationError, tokens int, strict bool) error {
	errs, warnings := validator.Count(diags)
	switch {
	case errs > 0:
		return fmt.Errorf("%w: %d errors, %d warnings", ErrValidationFailed, errs, warnings)
	case strict && warnings > 0:
		return fmt.Errorf("%w: %d warnings (strict)", ErrValidationFailed, warnings)
	case warnings > 0:
		_, err := fmt.Fprintf(w, "%d tokens, %d warnings.\n", tokens, warnings)
		return err
	}
	_, err := fmt.Fprintf(w, "%d tokens, all valid.\n", tokens)
	return err
}
