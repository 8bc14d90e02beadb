// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sna/cohesion"
)

func newCohesionCmd(a *app) *cobra.Command {
	var triads, backbone bool
	cmd := snapshotCmd(a, "cohesion", "Clustering, reciprocity, symmetry, cliques and triads", func(cmd *cobra.Command) error {
		ctx, cfg := cmd.Context(), a.cfg.Analysis()
		rep := a.report(cmd.OutOrStdout())
		g := a.session.Graph()

		cl, err := a.session.Clustering(ctx, cfg)
		if err != nil {
			return err
		}
		rc, err := a.session.Reciprocity(ctx, cfg)
		if err != nil {
			return err
		}
		sym, err := a.session.Symmetric(ctx, cfg)
		if err != nil {
			return err
		}
		lc, err := a.session.LineConnectivity(ctx, cfg)
		if err != nil {
			return err
		}
		bb, err := a.session.Backbone(ctx, cfg)
		if err != nil {
			return err
		}
		rep.title("Cohesion")
		rep.pairs(
			"network clustering", num(cl.Network),
			"line connectivity", num(lc.Graph),
			"weak components", strconv.Itoa(bb.Components),
			"arc reciprocity", num(rc.Arc),
			"dyad reciprocity", num(rc.Dyad),
			"symmetric", strconv.FormatBool(sym),
		)

		rows := make([][]string, 0, len(cl.Vertices))
		for i, id := range cl.Vertices {
			cc := "n/a"
			if cl.Defined[i] {
				cc = num(cl.Local[i])
			}
			rows = append(rows, []string{label(g, id), cc})
		}
		rep.title("Local clustering")
		rep.table([]string{"vertex", "clustering"}, rows)

		cq, err := a.session.Cliques(ctx, cfg)
		if err != nil {
			return err
		}
		rows = rows[:0]
		for i, c := range cq.Cliques {
			rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(len(c)), ids(c)})
		}
		rep.title("Maximal cliques")
		rep.table([]string{"#", "size", "members"}, rows)

		if backbone {
			rows = rows[:0]
			for _, e := range bb.Ties {
				rows = append(rows, []string{label(g, e.From), label(g, e.To), num(e.Weight)})
			}
			rep.title("Backbone (total " + num(bb.Total) + ")")
			rep.table([]string{"from", "to", "value"}, rows)
		}

		if triads {
			tc, err := a.session.Triads(ctx, cfg)
			if err != nil {
				return err
			}
			rows = rows[:0]
			for t := cohesion.T003; t <= cohesion.T300; t++ {
				rows = append(rows, []string{t.String(), strconv.FormatInt(tc.Count(t), 10)})
			}
			rep.title("Triad census (" + strconv.FormatInt(tc.Total, 10) + " triples)")
			rep.table([]string{"class", "count"}, rows)
		}

		return nil
	})
	cmd.Flags().BoolVar(&triads, "triads", false, "include the 16-class triad census")
	cmd.Flags().BoolVar(&backbone, "backbone", false, "list the maximum spanning forest")

	return cmd
}
