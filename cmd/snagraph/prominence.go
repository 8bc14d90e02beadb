// SPDX-License-Identifier: MIT

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sna/centrality"
	"github.com/katalvlaran/sna/core"
)

func newProminenceCmd(a *app) *cobra.Command {
	var indices []string
	var raw bool
	cmd := snapshotCmd(a, "prominence", "Centrality and prestige indices with centralization", func(cmd *cobra.Command) error {
		chosen, err := parseIndices(indices)
		if err != nil {
			return err
		}
		rep := a.report(cmd.OutOrStdout())
		g := a.session.Graph()

		var sets []*centrality.ScoreSet
		for _, idx := range chosen {
			set, err := a.session.Prominence(cmd.Context(), a.cfg.Analysis(), idx)
			if err != nil {
				rep.failure(idx.Title(), err)
				continue
			}
			sets = append(sets, set)
		}
		if len(sets) == 0 {
			return nil
		}

		// per-vertex scores; every set shares the same active vertex set
		headers := []string{"vertex"}
		for _, s := range sets {
			headers = append(headers, s.Index.String())
		}
		rows := make([][]string, len(sets[0].Vertices))
		for i, id := range sets[0].Vertices {
			row := []string{label(g, id)}
			for _, s := range sets {
				if raw {
					row = append(row, num(s.Raw[i]))
				} else {
					row = append(row, num(s.Standardized[i]))
				}
			}
			rows[i] = row
		}
		if raw {
			rep.title("Raw scores")
		} else {
			rep.title("Standardized scores")
		}
		rep.table(headers, rows)

		summary := make([][]string, 0, len(sets))
		for _, s := range sets {
			summary = append(summary, []string{
				s.Index.Title(),
				num(s.Max), ids(s.MaxVertices),
				num(s.Min), ids(s.MinVertices),
				num(s.Mean), num(s.Variance),
				num(s.Centralization),
			})
		}
		rep.title("Summary")
		rep.table([]string{"index", "max", "at", "min", "at", "mean", "variance", "centralization"}, summary)

		return nil
	})
	cmd.Flags().StringSliceVar(&indices, "index", nil, "indices by code or name (default: all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print raw instead of standardized scores")

	return cmd
}

func parseIndices(names []string) ([]centrality.Index, error) {
	if len(names) == 0 {
		return centrality.Indices(), nil
	}
	out := make([]centrality.Index, 0, len(names))
	for _, n := range names {
		idx, err := centrality.ParseIndex(n)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}

	return out, nil
}

func ids(xs []core.VertexID) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
