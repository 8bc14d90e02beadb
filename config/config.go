// SPDX-License-Identifier: MIT

// Package config resolves snagraph runtime settings from .snagraph.yaml (or
// .toml), SNAGRAPH_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/sna/analysis"
	"github.com/katalvlaran/sna/centrality"
)

// EnvPrefix prefixes every environment override, e.g. SNAGRAPH_LOG_LEVEL.
const EnvPrefix = "SNAGRAPH"

// ErrInvalid indicates a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config holds all runtime configuration for one snagraph invocation.
type Config struct {
	Weights       bool      `mapstructure:"weights"`
	Inverted      bool      `mapstructure:"inverted"`
	DropIsolates  bool      `mapstructure:"drop_isolates"`
	Relation      string    `mapstructure:"relation"`
	Damping       float64   `mapstructure:"damping"`
	Epsilon       float64   `mapstructure:"epsilon"`
	MaxIterations int       `mapstructure:"max_iterations"`
	LargeWalks    bool      `mapstructure:"large_walks"`
	Output        string    `mapstructure:"output"`
	Log           LogConfig `mapstructure:"log"`
}

// New returns a viper instance that looks for .snagraph.{yaml,toml} in the
// working and home directories (or reads file when non-empty) and honors
// SNAGRAPH_* variables. A missing default file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".snagraph")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading: %w", err)
		}
	}

	return v, nil
}

// Load applies defaults for anything the file, environment or bound flags
// left unset, decodes v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	v.SetDefault("weights", false)
	v.SetDefault("inverted", false)
	v.SetDefault("drop_isolates", false)
	v.SetDefault("relation", "")
	v.SetDefault("damping", centrality.DefaultDamping)
	v.SetDefault("epsilon", centrality.DefaultEpsilon)
	v.SetDefault("max_iterations", centrality.DefaultMaxIterations)
	v.SetDefault("large_walks", false)
	v.SetDefault("output", "table")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings no command could honor.
func (c Config) Validate() error {
	switch {
	case !(c.Damping > 0 && c.Damping < 1):
		return fmt.Errorf("%w: damping %g not in (0,1)", ErrInvalid, c.Damping)
	case !(c.Epsilon > 0):
		return fmt.Errorf("%w: epsilon %g", ErrInvalid, c.Epsilon)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max_iterations %d", ErrInvalid, c.MaxIterations)
	case c.Output != "table" && c.Output != "plain":
		return fmt.Errorf("%w: output %q (table|plain)", ErrInvalid, c.Output)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return fmt.Errorf("%w: log.format %q (text|json)", ErrInvalid, c.Log.Format)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// Analysis returns the per-call policy record.
func (c Config) Analysis() analysis.Config {
	return analysis.Config{
		ConsiderWeights: c.Weights,
		InvertWeights:   c.Inverted,
		DropIsolates:    c.DropIsolates,
	}
}

// SessionOptions maps the numeric settings onto analysis session options.
func (c Config) SessionOptions(logger *slog.Logger) []analysis.Option {
	opts := []analysis.Option{
		analysis.WithLogger(logger),
		analysis.WithDamping(c.Damping),
		analysis.WithIteration(c.Epsilon, c.MaxIterations),
	}
	if c.LargeWalks {
		opts = append(opts, analysis.WithLargeAllowed())
	}

	return opts
}

// Logger builds the configured slog logger writing to w.
// An unparsable log level fails with ErrInvalid.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}
