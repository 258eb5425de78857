// Command lvlmesh repairs degenerate triangles in OFF surfaces and
// estimates and orients point-cloud normals.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmesh/halfedge"
	"github.com/katalvlaran/lvlmesh/meshio"
)

var rootCmd = &cobra.Command{
	Use:   "lvlmesh",
	Short: "Triangle-mesh repair toolbox",
	Long: `lvlmesh removes degenerate triangles (needles and caps) from OFF
surfaces, reports face-quality statistics, and orients point-set normals.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func readMeshFile(path string) *halfedge.Mesh {
	f, err := os.Open(path)
	if err != nil {
		fatal("%v", err)
	}
	defer f.Close()
	m, err := meshio.ReadOFF(f)
	if err != nil {
		fatal("%v", errors.Wrapf(err, "read %s", path))
	}
	return m
}

func writeMeshFile(path string, m *halfedge.Mesh) {
	f, err := os.Create(path)
	if err != nil {
		fatal("%v", err)
	}
	if err := meshio.WriteOFF(f, m); err != nil {
		f.Close()
		fatal("%v", errors.Wrapf(err, "write %s", path))
	}
	if err := f.Close(); err != nil {
		fatal("%v", errors.Wrapf(err, "close %s", path))
	}
}
