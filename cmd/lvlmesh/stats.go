package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmesh/halfedge"
	"github.com/katalvlaran/lvlmesh/shape"
)

var (
	statsIn          string
	statsNeedleRatio float64
	statsCapAngle    float64
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report a face-quality census of an OFF surface",
	Long: `Stats classifies every triangle against the needle and cap
thresholds and prints a census, together with area and border figures.
Use it before and after a repair run to see what changed.`,
	Run: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsIn, "in", "", "input OFF surface")
	_ = statsCmd.MarkFlagRequired("in")
	statsCmd.Flags().Float64Var(&statsNeedleRatio, "needle-ratio", shape.DefaultNeedleRatio,
		"longest/shortest edge ratio at which a triangle counts as a needle")
	statsCmd.Flags().Float64Var(&statsCapAngle, "cap-angle", shape.DefaultCapAngleDegrees,
		"corner angle in degrees at which a triangle counts as a cap")
}

func runStats(cmd *cobra.Command, args []string) {
	m := readMeshFile(statsIn)

	crit := shape.Criteria{
		NeedleRatio: statsNeedleRatio,
		CapCosine:   math.Cos(statsCapAngle * math.Pi / 180),
	}
	if err := crit.Validate(); err != nil {
		fatal("%v", err)
	}

	var regular, needles, caps int
	var totalArea, minArea, maxArea float64
	minArea = math.MaxFloat64
	worstRatio := 1.0
	widestCos := 1.0
	for _, f := range m.Faces() {
		switch shape.Classify(m, f, crit).Kind {
		case shape.Needle:
			needles++
		case shape.Cap:
			caps++
		default:
			regular++
		}

		area := shape.FaceArea(m, f)
		totalArea += area
		if area < minArea {
			minArea = area
		}
		if area > maxArea {
			maxArea = area
		}

		long, short := 0.0, math.MaxFloat64
		for _, h := range m.FaceHalfedges(f) {
			l := shape.EdgeLength(m, m.EdgeOf(h))
			if l > long {
				long = l
			}
			if l < short {
				short = l
			}
			if cos := shape.CornerCosine(m, h); cos < widestCos {
				widestCos = cos
			}
		}
		if r := long / short; r > worstRatio {
			worstRatio = r
		}
	}

	fmt.Printf("Mesh: %d vertices, %d faces, %d edges (%d border)\n",
		m.VertexCount(), m.FaceCount(), m.EdgeCount(), borderEdges(m))
	if m.FaceCount() == 0 {
		return
	}
	fmt.Printf("Surface area: %.6f (min %.6g, max %.6g per face)\n", totalArea, minArea, maxArea)
	fmt.Printf("Quality (needle ratio %.6g, cap angle %.6g°):\n", statsNeedleRatio, statsCapAngle)
	fmt.Printf("  regular: %d\n", regular)
	fmt.Printf("  needles: %d\n", needles)
	fmt.Printf("  caps:    %d\n", caps)
	fmt.Printf("Worst edge ratio: %.2f\n", worstRatio)
	fmt.Printf("Widest corner: %.1f°\n", math.Acos(widestCos)*180/math.Pi)
}

func borderEdges(m *halfedge.Mesh) int {
	n := 0
	for _, e := range m.Edges() {
		if m.IsBorderEdge(e) {
			n++
		}
	}
	return n
}
