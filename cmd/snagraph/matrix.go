// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sna/analysis"
	"github.com/katalvlaran/sna/matrix"
)

func newMatrixCmd(a *app) *cobra.Command {
	var kind string
	var walks int
	var total bool
	cmd := snapshotCmd(a, "matrix", "Adjacency-derived matrices and walk counts", func(cmd *cobra.Command) error {
		ctx, cfg := cmd.Context(), a.cfg.Analysis()
		var (
			m     *matrix.Dense
			title string
			err   error
		)
		switch {
		case total:
			title = "Total walks"
			m, err = a.session.TotalWalks(ctx, cfg)
		case walks > 0:
			title = fmt.Sprintf("Walks of length %d", walks)
			m, err = a.session.Walks(ctx, cfg, walks)
		default:
			k, perr := analysis.ParseMatrixKind(kind)
			if perr != nil {
				return perr
			}
			title = k.String() + " matrix"
			m, err = a.session.Matrix(ctx, cfg, k)
		}
		if err != nil {
			return err
		}

		rep := a.report(cmd.OutOrStdout())
		rep.title(title)
		rep.matrix(a.session.Graph().View(cfg.DropIsolates).IDs(), m)

		return nil
	})
	cmd.Flags().StringVar(&kind, "kind", "adjacency", "adjacency|degree|laplacian|cocitation|reachability|inverse")
	cmd.Flags().IntVar(&walks, "walks", 0, "count walks of exactly this length instead")
	cmd.Flags().BoolVar(&total, "total-walks", false, "sum walks of every length 1..n-1 instead")

	return cmd
}
