package yen_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/yen"
)

// ExampleKShortestPaths lists the three cheapest loopless routes of a small
// directed road network.
func ExampleKShortestPaths() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"C", "D", 3}, {"C", "E", 2}, {"D", "F", 4}, {"E", "D", 1}, {"E", "F", 2},
		{"E", "G", 3}, {"F", "G", 2}, {"F", "H", 1}, {"G", "H", 2},
	} {
		_, _ = g.AddEdge(e.from, e.to, e.w)
	}
	v, err := core.NewView(g, core.Outgoing)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	routes, err := yen.KShortestPaths(v, "C", "H", 3, yen.WithMaxDepth(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range routes {
		fmt.Println(r.Vertices, r.Cost)
	}
	// Output:
	// [C E F H] 5
	// [C E G H] 7
	// [C D F H] 8
}

// ExampleYen_Compute shows the explicit lifecycle with a state check.
func ExampleYen_Compute() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 5)
	v, _ := core.NewView(g, core.Outgoing)

	y, err := yen.New(v, "A", "C", 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer y.Release()

	paths := y.Compute()
	fmt.Println(len(paths), y.State())
	// Output: 2 exhausted
}
