package meshio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmesh/meshio"
)

// ExampleReadOFF parses a one-triangle surface.
func ExampleReadOFF() {
	const src = `OFF
3 1 0
0 0 0
1 0 0
0 1 0
3 0 1 2
`
	m, err := meshio.ReadOFF(strings.NewReader(src))
	if err != nil {
		fmt.Println("read:", err)
		return
	}
	fmt.Printf("vertices=%d faces=%d edges=%d\n", m.VertexCount(), m.FaceCount(), m.EdgeCount())

	// Output:
	// vertices=3 faces=1 edges=3
}
