/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for figtok.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"bennypowers.dev/figtok/cmd/build"
	"bennypowers.dev/figtok/cmd/expr"
	"bennypowers.dev/figtok/cmd/list"
	"bennypowers.dev/figtok/cmd/query"
	"bennypowers.dev/figtok/cmd/validate"
	"bennypowers.dev/figtok/cmd/version"
	"bennypowers.dev/figtok/fs"
	"bennypowers.dev/figtok/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "figtok",
	Short: "Compile Tokens Studio design tokens to CSS and JSON",
	Long: `figtok compiles design tokens exported from Tokens Studio for Figma into
CSS custom properties and JSON, one file per theme or token set.

Settings are read from .config/figtok.{yaml,yml,json}, overridden by
FIGTOK_* environment variables, overridden by flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cli.Setup(cmd, fs.NewOSFileSystem(), ".")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text, json")
	rootCmd.PersistentFlags().String("prefix", "", "CSS variable prefix")
	rootCmd.PersistentFlags().String("ambiguity", "first", "Names declared by several active sets: first, error")
	rootCmd.PersistentFlags().Int("cache-size", 0, "Resolved value cache entries (0 default, negative disables)")

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(expr.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(query.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
