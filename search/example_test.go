package search_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/search"
)

// ExampleSearcher_ShortestPath shows how the hop bound changes the answer.
func ExampleSearcher_ShortestPath() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("S", "A", 1)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "T", 1)
	_, _ = g.AddEdge("S", "T", 5)
	v, _ := core.NewView(g, core.Outgoing)

	s := search.New(v)
	src, _ := v.ToMapped("S")
	dst, _ := v.ToMapped("T")
	for _, hops := range []int{3, 1} {
		p, ok := s.ShortestPath(src, dst, hops, nil)
		fmt.Printf("maxEdges=%d ok=%v edges=%d cost=%.0f\n", hops, ok, p.Hops(), p.Cost())
	}
	// Output:
	// maxEdges=3 ok=true edges=3 cost=3
	// maxEdges=1 ok=true edges=1 cost=5
}
