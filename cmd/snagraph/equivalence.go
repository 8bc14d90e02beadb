// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sna/analysis"
	"github.com/katalvlaran/sna/equivalence"
)

// pairFlags selects the pair table shared by similarity and cluster.
type pairFlags struct {
	measure  string
	location string
	diagonal bool
}

func (p *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.measure, "measure", "pearson",
		"pearson | match:exact|jaccard|hamming|cosine|euclidean | dist:euclidean|manhattan|jaccard|hamming")
	cmd.Flags().StringVar(&p.location, "location", "rows", "profile location: rows|columns|both")
	cmd.Flags().BoolVar(&p.diagonal, "diagonal", false, "include the diagonal cells in profiles")
}

// table computes the selected pair table; similarity reports whether larger
// values mean closer vertices.
func (p *pairFlags) table(ctx context.Context, a *app) (tab *equivalence.PairTable, similarity bool, err error) {
	loc, err := equivalence.ParseLocation(p.location)
	if err != nil {
		return nil, false, err
	}
	prof := analysis.Profile{Location: loc, IncludeDiagonal: p.diagonal}
	cfg := a.cfg.Analysis()

	kind, name, _ := strings.Cut(strings.ToLower(strings.TrimSpace(p.measure)), ":")
	switch kind {
	case "pearson":
		tab, err = a.session.Pearson(ctx, cfg, prof)
		return tab, true, err
	case "match":
		m, perr := equivalence.ParseMeasure(name)
		if perr != nil {
			return nil, false, perr
		}
		tab, err = a.session.Similarity(ctx, cfg, m, prof)
		return tab, true, err
	case "dist":
		m, perr := equivalence.ParseMetric(name)
		if perr != nil {
			return nil, false, perr
		}
		tab, err = a.session.Dissimilarity(ctx, cfg, m, prof)
		return tab, false, err
	}

	return nil, false, fmt.Errorf("%w: measure %q", equivalence.ErrUnknownChoice, p.measure)
}

func newSimilarityCmd(a *app) *cobra.Command {
	var pf pairFlags
	cmd := snapshotCmd(a, "similarity", "Structural equivalence: correlation, matching or distance tables", func(cmd *cobra.Command) error {
		tab, _, err := pf.table(cmd.Context(), a)
		if err != nil {
			return err
		}
		rep := a.report(cmd.OutOrStdout())
		rep.title("Pair table (" + pf.measure + ", " + pf.location + ")")
		rep.matrix(tab.Vertices, tab.Values)

		return nil
	})
	pf.register(cmd)

	return cmd
}

func newClusterCmd(a *app) *cobra.Command {
	var pf pairFlags
	var linkage string
	var cut int
	cmd := snapshotCmd(a, "cluster", "Hierarchical clustering of a pair table", func(cmd *cobra.Command) error {
		lk, err := equivalence.ParseLinkage(linkage)
		if err != nil {
			return err
		}
		tab, similarity, err := pf.table(cmd.Context(), a)
		if err != nil {
			return err
		}
		dg, err := a.session.Cluster(cmd.Context(), tab, lk, similarity)
		if err != nil {
			return err
		}

		rep := a.report(cmd.OutOrStdout())
		rows := make([][]string, 0, len(dg.Merges))
		n := len(dg.Labels)
		for k, m := range dg.Merges {
			rows = append(rows, []string{
				strconv.Itoa(n + k), strconv.Itoa(m.A), strconv.Itoa(m.B),
				num(m.Height), strconv.Itoa(m.Size), ids(m.Members),
			})
		}
		rep.title("Merges (" + lk.String() + " linkage, " + pf.measure + ")")
		rep.table([]string{"cluster", "a", "b", "height", "size", "members"}, rows)

		if cut > 0 {
			groups, err := dg.Cut(cut)
			if err != nil {
				return err
			}
			rows = rows[:0]
			for i, grp := range groups {
				rows = append(rows, []string{strconv.Itoa(i + 1), ids(grp)})
			}
			rep.title(fmt.Sprintf("Partition into %d clusters", cut))
			rep.table([]string{"#", "members"}, rows)
		}

		return nil
	})
	pf.register(cmd)
	cmd.Flags().StringVar(&linkage, "linkage", "average", "linkage: single|complete|average")
	cmd.Flags().IntVar(&cut, "cut", 0, "also print the partition into this many clusters")

	return cmd
}
