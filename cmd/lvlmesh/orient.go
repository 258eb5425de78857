package main

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmesh/meshio"
	"github.com/katalvlaran/lvlmesh/normals"
)

var (
	orientIn       string
	orientOut      string
	orientK        int
	orientMaxAngle float64
	orientEstimate bool
)

var orientCmd = &cobra.Command{
	Use:   "orient",
	Short: "Orient point-set normals to a consistent side",
	Long: `Orient reads an XYZ point set, flips its normals so they all point
to the same side of the sampled surface, and writes the result. With
--estimate the normals are first recomputed from scratch by a PCA plane
fit per point, which also serves inputs that carry no normals at all.`,
	Run: runOrient,
}

func init() {
	rootCmd.AddCommand(orientCmd)

	orientCmd.Flags().StringVar(&orientIn, "in", "", "input XYZ point set")
	orientCmd.Flags().StringVar(&orientOut, "out", "", "output XYZ point set")
	_ = orientCmd.MarkFlagRequired("in")
	_ = orientCmd.MarkFlagRequired("out")
	orientCmd.Flags().IntVar(&orientK, "k", normals.DefaultK, "neighbors per point")
	orientCmd.Flags().Float64Var(&orientMaxAngle, "max-angle", 45,
		"angle in degrees within which a propagated normal counts as robust")
	orientCmd.Flags().BoolVar(&orientEstimate, "estimate", false,
		"recompute normals by PCA before orienting")
}

func runOrient(cmd *cobra.Command, args []string) {
	f, err := os.Open(orientIn)
	if err != nil {
		fatal("%v", err)
	}
	pts, ns, err := meshio.ReadXYZ(f)
	f.Close()
	if err != nil {
		fatal("%v", errors.Wrapf(err, "read %s", orientIn))
	}

	if orientEstimate || ns == nil {
		if ns == nil && !orientEstimate {
			fmt.Println("Input carries no normals; estimating them first")
		}
		ns, err = normals.Estimate(pts, normals.EstimateOptions{K: orientK})
		if err != nil {
			fatal("estimate: %v", err)
		}
	}

	robust, err := normals.Orient(pts, ns, normals.OrientOptions{
		K:        orientK,
		MaxAngle: orientMaxAngle * math.Pi / 180,
	})
	if err != nil {
		fatal("orient: %v", err)
	}
	fmt.Printf("Oriented %d normals, %d robust\n", len(ns), robust)

	out, err := os.Create(orientOut)
	if err != nil {
		fatal("%v", err)
	}
	if err := meshio.WriteXYZ(out, pts, ns); err != nil {
		out.Close()
		fatal("%v", errors.Wrapf(err, "write %s", orientOut))
	}
	if err := out.Close(); err != nil {
		fatal("%v", errors.Wrapf(err, "close %s", orientOut))
	}
}
