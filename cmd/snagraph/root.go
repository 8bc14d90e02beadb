// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sna/analysis"
	"github.com/katalvlaran/sna/config"
	"github.com/katalvlaran/sna/snapshot"
)

// app is the state shared by subcommands once the snapshot is loaded.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	session *analysis.Session
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"weights":       "weights",
	"inverted":      "inverted",
	"drop-isolates": "drop_isolates",
	"relation":      "relation",
	"output":        "output",
	"log-level":     "log.level",
	"large-walks":   "large_walks",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "snagraph",
		Short:         "Social network analysis over graph snapshots",
		Long:          "snagraph computes prominence, distance, cohesion and equivalence figures for a graph stored as a YAML or TOML snapshot.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .snagraph.yaml)")
	pf.Bool("weights", false, "use tie values instead of counting ties")
	pf.Bool("inverted", false, "read tie values as strengths (length = 1/w)")
	pf.Bool("drop-isolates", false, "leave isolated vertices out")
	pf.String("relation", "", "relation to analyze (default: first)")
	pf.String("output", "table", "output style: table|plain")
	pf.String("log-level", "warn", "log level: debug|info|warn|error")
	pf.Bool("large-walks", false, "allow total walks on large graphs")

	root.AddCommand(
		newProminenceCmd(a),
		newDistancesCmd(a),
		newCohesionCmd(a),
		newSimilarityCmd(a),
		newClusterCmd(a),
		newMatrixCmd(a),
	)

	return root
}

// setup resolves configuration and loads the snapshot named by args[0].
func (a *app) setup(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("config")
	v, err := config.New(file)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	if a.cfg, err = config.Load(v); err != nil {
		return err
	}
	if a.logger, err = a.cfg.Logger(cmd.ErrOrStderr()); err != nil {
		return err
	}

	g, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	if a.cfg.Relation != "" {
		i := slices.Index(g.Relations(), a.cfg.Relation)
		if i < 0 {
			return fmt.Errorf("relation %q not in %v", a.cfg.Relation, g.Relations())
		}
		if err := g.SetActiveRelation(i); err != nil {
			return err
		}
	}
	a.session = analysis.NewSession(g, a.cfg.SessionOptions(a.logger)...)
	a.logger.Info("snapshot loaded",
		slog.String("file", args[0]),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("ties", g.EdgeCount()),
		slog.String("session", a.session.ID()),
	)

	return nil
}

// bindFlags lets explicitly set flags override file and environment values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	return nil
}

// snapshotCmd builds a subcommand that takes one snapshot path.
func snapshotCmd(a *app, use, short string, run func(cmd *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <snapshot>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, args); err != nil {
				return err
			}
			return run(cmd)
		},
	}
}
