package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmesh/repair"
	"github.com/katalvlaran/lvlmesh/shape"
)

var (
	repairIn          string
	repairOut         string
	repairNeedleRatio float64
	repairCapAngle    float64
	repairMaxCollapse float64
	repairMaxRounds   int
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Collapse needles and flip caps until the surface is clean",
	Long: `Repair classifies every triangle as regular, needle (one edge much
shorter than the longest) or cap (one corner close to 180 degrees), then
collapses, flips and removes until no defect is left or no edit applies.
The repaired surface is written even when defects remain.`,
	Run: runRepair,
}

func init() {
	rootCmd.AddCommand(repairCmd)

	repairCmd.Flags().StringVar(&repairIn, "in", "", "input OFF surface")
	repairCmd.Flags().StringVar(&repairOut, "out", "", "output OFF surface")
	_ = repairCmd.MarkFlagRequired("in")
	_ = repairCmd.MarkFlagRequired("out")
	repairCmd.Flags().Float64Var(&repairNeedleRatio, "needle-ratio", shape.DefaultNeedleRatio,
		"longest/shortest edge ratio at which a triangle counts as a needle")
	repairCmd.Flags().Float64Var(&repairCapAngle, "cap-angle", shape.DefaultCapAngleDegrees,
		"corner angle in degrees at which a triangle counts as a cap")
	repairCmd.Flags().Float64Var(&repairMaxCollapse, "max-collapse-length", repair.DefaultMaxCollapseLength,
		"never collapse an edge longer than this")
	repairCmd.Flags().IntVar(&repairMaxRounds, "max-rounds", 0,
		"stop after this many rounds (0 means run to a fixpoint)")
}

func runRepair(cmd *cobra.Command, args []string) {
	m := readMeshFile(repairIn)

	opts := repair.Options{
		NeedleRatio:       repairNeedleRatio,
		CapCosine:         math.Cos(repairCapAngle * math.Pi / 180),
		MaxCollapseLength: repairMaxCollapse,
		MaxRounds:         repairMaxRounds,
	}
	converged, stats, err := repair.RepairWithStats(m, m.Faces(), opts)
	if err != nil {
		fatal("repair: %v", err)
	}

	if converged {
		fmt.Printf("Repair converged in %d rounds\n", stats.Rounds)
	} else {
		fmt.Printf("Partial repair: defects remain after %d rounds\n", stats.Rounds)
	}
	fmt.Printf("Edits: %d collapsed, %d flipped, %d removed, %d abandoned\n",
		stats.Collapsed, stats.Flipped, stats.Removed, stats.Abandoned)
	fmt.Printf("Mesh: %d vertices, %d faces, %d edges\n",
		m.VertexCount(), m.FaceCount(), m.EdgeCount())

	writeMeshFile(repairOut, m)
}
