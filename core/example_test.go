package core_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// ExampleNewView builds a directed graph and walks the predecessors of a vertex.
func ExampleNewView() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("B", "C", 1)

	v, err := core.NewView(g, core.Incoming)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := v.ToMapped("C")
	v.ForEachRelationship(c, func(to int, w float64) bool {
		fmt.Printf("%s (%.0f)\n", v.ToOriginal(to), w)
		return true
	})
	// Output:
	// A (2)
	// B (1)
}
