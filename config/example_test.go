package config_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/config"
)

func ExampleParse() {
	doc := `
graph:
  directed: true
  edges:
    - {from: A, to: B, weight: 1}
    - {from: B, to: C, weight: 2}
queries:
  - {name: a-to-c, start: A, goal: C, k: 2}
`
	f, err := config.Parse([]byte(doc), config.YAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, _ := f.BuildGraph()
	fmt.Println(g.VertexCount(), g.EdgeCount(), f.Queries[0].Name)
	// Output: 3 2 a-to-c
}
