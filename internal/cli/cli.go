/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli holds the setup shared by figtok commands: merging the
// config file, environment and flags, configuring the logger, and loading
// tokens.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/figtok/config"
	"bennypowers.dev/figtok/fs"
	"bennypowers.dev/figtok/internal/logger"
	"bennypowers.dev/figtok/load"
	"bennypowers.dev/figtok/resolver"
	"bennypowers.dev/figtok/token"
)

// EnvPrefix namespaces environment overrides, e.g. FIGTOK_OUTPUT.
const EnvPrefix = "FIGTOK"

// Settings is the merged configuration of one invocation.
type Settings struct {
	Entry     string
	Output    string
	Format    string
	Prefix    string
	Sets      []string
	Themes    []string
	Ambiguity string
	CacheSize int
	Selector  string
	Header    string
}

// Setup seeds viper from .config/figtok.* in dir, enables FIGTOK_*
// environment overrides and applies the logging flags of cmd.
func Setup(cmd *cobra.Command, filesystem fs.FileSystem, dir string) error {
	cfg, err := config.Load(filesystem, dir)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	} else {
		logger.Debug("using %s", config.Path(filesystem, dir))
	}

	viper.SetDefault("entry", cfg.Entry)
	viper.SetDefault("output", cfg.Output)
	viper.SetDefault("format", cfg.Format)
	viper.SetDefault("prefix", cfg.Prefix)
	viper.SetDefault("sets", []string(cfg.Sets))
	viper.SetDefault("themes", []string(cfg.Themes))
	viper.SetDefault("ambiguity", cfg.Ambiguity)
	viper.SetDefault("cache-size", cfg.CacheSize)
	viper.SetDefault("selector", cfg.Selector)
	viper.SetDefault("header", cfg.Header)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for _, name := range []string{"prefix", "ambiguity", "cache-size"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(name, f); err != nil {
				return err
			}
		}
	}

	return configureLogging(cmd.Flags())
}

func configureLogging(flags *pflag.FlagSet) error {
	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")
	format, _ := flags.GetString("log-format")

	level := logger.LevelInfo
	switch {
	case verbose && quiet:
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	case verbose:
		level = logger.LevelDebug
	case quiet:
		level = logger.LevelError
	}
	if format == "" {
		format = string(logger.FormatText)
	}
	return logger.Configure(level, logger.Format(format))
}

// Bind makes the named flags of cmd override config and environment values.
// Flag names double as viper keys.
func Bind(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		if err := viper.BindPFlag(name, f); err != nil {
			return err
		}
	}
	return nil
}

// Current returns the merged settings. A positional entry argument wins
// over every other source.
func Current(args []string) Settings {
	s := Settings{
		Entry:     viper.GetString("entry"),
		Output:    viper.GetString("output"),
		Format:    viper.GetString("format"),
		Prefix:    viper.GetString("prefix"),
		Sets:      viper.GetStringSlice("sets"),
		Themes:    viper.GetStringSlice("themes"),
		Ambiguity: viper.GetString("ambiguity"),
		CacheSize: viper.GetInt("cache-size"),
		Selector:  viper.GetString("selector"),
		Header:    viper.GetString("header"),
	}
	if len(args) > 0 && args[0] != "" {
		s.Entry = args[0]
	}
	return s
}

// ResolverOptions converts the settings into resolver options.
func (s Settings) ResolverOptions() (resolver.Options, error) {
	cfg := config.Config{Prefix: s.Prefix, Ambiguity: s.Ambiguity, CacheSize: s.CacheSize}
	return cfg.ResolverOptions()
}

// Load reads the token store at s.Entry and creates its resolver.
func (s Settings) Load(ctx context.Context, filesystem fs.FileSystem) (*token.Store, *resolver.Resolver, error) {
	opts, err := s.ResolverOptions()
	if err != nil {
		return nil, nil, err
	}
	store, err := load.Load(ctx, s.Entry, load.Options{FS: filesystem})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", s.Entry, err)
	}
	r, err := resolver.New(store, opts)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("loaded %d tokens in %d sets and %d themes from %s",
		store.Len(), len(store.Sets()), len(store.Themes()), s.Entry)
	return store, r, nil
}
