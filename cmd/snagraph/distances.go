// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newDistancesCmd(a *app) *cobra.Command {
	var showMatrix bool
	cmd := snapshotCmd(a, "distances", "Geodesic distances, diameter, radius and connectedness", func(cmd *cobra.Command) error {
		rep := a.report(cmd.OutOrStdout())
		sum, err := a.session.DistanceSummary(cmd.Context(), a.cfg.Analysis())
		if err != nil {
			return err
		}

		rep.title("Distances (" + a.cfg.Analysis().String() + ")")
		if sum.Defined {
			rep.pairs(
				"connectedness", sum.Connectedness.String(),
				"diameter", num(sum.Diameter),
				"average distance", num(sum.AverageDistance),
				"radius", num(sum.Radius),
			)
		} else {
			rep.pairs("connectedness", sum.Connectedness.String(), "diameter", "undefined")
		}

		g := a.session.Graph()
		rows := make([][]string, 0, len(sum.Result.View.IDs()))
		for _, id := range sum.Result.View.IDs() {
			rows = append(rows, []string{label(g, id), num(sum.Eccentricities[id])})
		}
		rep.title("Eccentricity")
		rep.table([]string{"vertex", "eccentricity"}, rows)

		if showMatrix {
			ids := sum.Result.View.IDs()
			m := make([][]string, len(ids))
			headers := append([]string{""}, make([]string, len(ids))...)
			for j, id := range ids {
				headers[j+1] = label(g, id)
			}
			for i := range ids {
				row := []string{headers[i+1]}
				for j := range ids {
					row = append(row, num(sum.Result.At(i, j)))
				}
				m[i] = row
			}
			rep.title("Distance matrix")
			rep.table(headers, m)
		}

		return nil
	})
	cmd.Flags().BoolVar(&showMatrix, "matrix", false, "print the full distance matrix")

	return cmd
}
