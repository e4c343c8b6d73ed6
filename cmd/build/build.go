/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for figtok.
package build

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bennypowers.dev/figtok/convert"
	"bennypowers.dev/figtok/fs"
	"bennypowers.dev/figtok/internal/cli"
	"bennypowers.dev/figtok/internal/logger"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [entry]",
	Short: "Compile tokens to CSS or JSON",
	Long: `Compile a Tokens Studio export into one file per theme, or one file per
set when the export has no themes.

Entry is a token directory or a single .json/.yaml export (default ./tokens).

Output Formats:
  css   CSS custom properties and composite classes (default)
  json  Nested JSON with resolved values
  flat  Flat JSON keyed by kebab-case name

Examples:
  # Build CSS for every theme into ./build
  figtok build

  # Nested JSON for brand themes only
  figtok build -f json --themes 'Brand*' -o dist/json

  # Rebuild whenever a token file changes
  figtok build --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "./build", "Output directory")
	Cmd.Flags().StringP("format", "f", "css", "Output format: "+strings.Join(convert.ValidFormats(), ", "))
	Cmd.Flags().Bool("no-clean", false, "Keep existing files in the output directory")
	Cmd.Flags().BoolP("watch", "w", false, "Rebuild when token files change")
	Cmd.Flags().StringSlice("sets", nil, "Only emit tokens of sets matching these globs")
	Cmd.Flags().StringSlice("themes", nil, "Only emit themes matching these globs")
	Cmd.Flags().String("selector", "", "Selector holding CSS custom properties (default :root)")
	Cmd.Flags().String("header", "", "Comment written at the top of CSS files")
	Cmd.Flags().Duration("debounce", 200*time.Millisecond, "Quiet period before a watch rebuild")
}

func run(cmd *cobra.Command, args []string) error {
	if err := cli.Bind(cmd, "output", "format", "sets", "themes", "selector", "header"); err != nil {
		return err
	}
	noClean, _ := cmd.Flags().GetBool("no-clean")
	watch, _ := cmd.Flags().GetBool("watch")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	s := cli.Current(args)
	filesystem := fs.NewOSFileSystem()
	rebuild := func(ctx context.Context) error {
		return Run(ctx, filesystem, s, !noClean)
	}

	if !watch {
		return rebuild(cmd.Context())
	}

	if err := rebuild(cmd.Context()); err != nil {
		logger.Warn("build failed: %v", err)
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := NewWatcher(s.Entry, s.Output, debounce, rebuild)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// Run loads, compiles and writes one build.
func Run(ctx context.Context, filesystem fs.FileSystem, s cli.Settings, clean bool) error {
	format, err := convert.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	store, r, err := s.Load(ctx, filesystem)
	if err != nil {
		return err
	}
	outputs, err := convert.Build(ctx, store, r, convert.Options{
		Format:   format,
		Sets:     s.Sets,
		Themes:   s.Themes,
		Selector: s.Selector,
		Header:   s.Header,
	})
	if err != nil {
		return err
	}
	if err := convert.Write(filesystem, s.Output, outputs, clean); err != nil {
		return err
	}
	logger.Info("wrote %d files to %s", len(outputs), s.Output)
	return nil
}
