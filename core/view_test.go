package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/core"
)

// neighbours collects ForEachRelationship output as external IDs.
func neighbours(v *core.View, id string) map[string]float64 {
	out := map[string]float64{}
	u, _ := v.ToMapped(id)
	v.ForEachRelationship(u, func(to int, w float64) bool {
		out[v.ToOriginal(to)] = w
		return true
	})

	return out
}

func TestNewView_RejectsBoth(t *testing.T) {
	g := core.NewGraph()
	_, err := core.NewView(g, core.Both)
	assert.ErrorIs(t, err, core.ErrUnsupportedDirection)

	_, err = core.NewView(g, core.Direction(42))
	assert.ErrorIs(t, err, core.ErrUnsupportedDirection)
}

func TestNewView_DirectedOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 3)
	require.NoError(t, err)

	out, err := core.NewView(g, core.Outgoing)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"B": 2}, neighbours(out, "A"))
	assert.Empty(t, neighbours(out, "C"))

	in, err := core.NewView(g, core.Incoming)
	require.NoError(t, err)
	assert.Equal(t, core.Incoming, in.Direction())
	assert.Empty(t, neighbours(in, "A"))
	assert.Equal(t, map[string]float64{"B": 3}, neighbours(in, "C"))
}

func TestNewView_UndirectedMirrors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)

	for _, dir := range []core.Direction{core.Outgoing, core.Incoming} {
		v, err := core.NewView(g, dir)
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"B": 4}, neighbours(v, "A"), dir.String())
		assert.Equal(t, map[string]float64{"A": 4}, neighbours(v, "B"), dir.String())
		assert.Equal(t, 2, v.RelationshipCount())
	}
}

func TestNewView_CollapsesParallelAndDropsLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, w := range []float64{5, 1, 3} {
		_, err := g.AddEdge("A", "B", w)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	v, err := core.NewView(g, core.Outgoing)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"B": 1}, neighbours(v, "A"))

	a, _ := v.ToMapped("A")
	b, _ := v.ToMapped("B")
	w, ok := v.Weight(a, b)
	assert.True(t, ok)
	assert.Equal(t, 1.0, w)
	_, ok = v.Weight(a, a)
	assert.False(t, ok)
	_, ok = v.Weight(-1, a)
	assert.False(t, ok)
	assert.Equal(t, 1, v.Degree(a))
}

func TestNewView_IndexOrderIsSorted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"C", "A"}, {"B", "C"}, {"A", "B"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	v, err := core.NewView(g, core.Outgoing)
	require.NoError(t, err)
	require.Equal(t, 3, v.NodeCount())
	for i, id := range []string{"A", "B", "C"} {
		assert.Equal(t, id, v.ToOriginal(i))
		idx, ok := v.ToMapped(id)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
	_, ok := v.ToMapped("Z")
	assert.False(t, ok)
}

func TestView_SnapshotIsolation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	eid, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	v, err := core.NewView(g, core.Outgoing)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.Equal(t, map[string]float64{"B": 1}, neighbours(v, "A"), "views do not follow later mutations")
}
