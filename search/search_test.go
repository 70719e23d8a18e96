package search

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

type edge_list map[string][]Edge[string]

func (e edge_list) Neighbors(n string) []Edge[string] { return e[n] }

func is(x string) func(string) bool { return func(n string) bool { return n == x } }

func TestShortestPath(t *testing.T) {
	for _, tc := range []struct {
		name     string
		graph    edge_list
		from, to string
		expected []string
		cost     int
	}{
		{"cheaper via intermediate", edge_list{
			"A": {{1, "B"}, {5, "C"}},
			"B": {{1, "C"}},
		}, "A", "C", []string{"A", "B", "C"}, 2},
		{"direct is cheaper", edge_list{
			"A": {{1, "B"}, {1, "C"}},
			"B": {{1, "C"}},
		}, "A", "C", []string{"A", "C"}, 1},
		{"start is destination", edge_list{
			"A": {{1, "B"}},
		}, "A", "A", []string{"A"}, 0},
		{"zero cost edges", edge_list{
			"A": {{0, "B"}},
			"B": {{0, "C"}},
		}, "A", "C", []string{"A", "B", "C"}, 0},
		{"self loops ignored", edge_list{
			"A": {{0, "A"}, {3, "B"}},
			"B": {{0, "B"}, {1, "C"}},
		}, "A", "C", []string{"A", "B", "C"}, 4},
		{"long chain", edge_list{
			"A": {{1, "B"}, {100, "E"}},
			"B": {{1, "C"}},
			"C": {{1, "D"}},
			"D": {{1, "E"}},
		}, "A", "E", []string{"A", "B", "C", "D", "E"}, 4},
		{"cycles", edge_list{
			"A": {{1, "B"}},
			"B": {{1, "A"}, {2, "C"}},
			"C": {{1, "B"}, {1, "D"}},
		}, "A", "D", []string{"A", "B", "C", "D"}, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := ShortestPath(tc.from, is(tc.to), tc.graph)
			require.True(t, ok)
			if diff := cmp.Diff(tc.expected, p.Nodes); diff != "" {
				t.Fatalf("unexpected path (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.cost, p.Cost)
			assert.Equal(t, tc.to, p.Last())
		})
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := edge_list{"A": {{1, "B"}}}
	_, ok := ShortestPath("B", is("A"), g)
	assert.False(t, ok)
	_, ok = ShortestPath("X", is("A"), g)
	assert.False(t, ok)
	// only self loops
	g = edge_list{"A": {{0, "A"}, {1, "A"}}}
	_, ok = ShortestPath("A", is("B"), g)
	assert.False(t, ok)
}

func TestShortestPathTieBreak(t *testing.T) {
	// A->B->D and A->C->D both cost 2, B is discovered first
	g := edge_list{
		"A": {{1, "B"}, {1, "C"}},
		"B": {{1, "D"}},
		"C": {{1, "D"}},
	}
	for range 20 {
		p, ok := ShortestPath("A", is("D"), g)
		require.True(t, ok)
		require.Equal(t, []string{"A", "B", "D"}, p.Nodes)
	}
	// reversing the neighbor order flips the choice
	g["A"] = []Edge[string]{{1, "C"}, {1, "B"}}
	p, ok := ShortestPath("A", is("D"), g)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "D"}, p.Nodes)
}

func TestShortestPathEqualCostDoesNotReroute(t *testing.T) {
	// D is first reached via B at cost 3; C also reaches it at cost 3 and
	// must not replace the earlier route.
	g := edge_list{
		"A": {{1, "B"}, {2, "C"}},
		"B": {{2, "D"}},
		"C": {{1, "D"}},
	}
	p, ok := ShortestPath("A", is("D"), g)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "D"}, p.Nodes)
	assert.Equal(t, 3, p.Cost)
}

func TestShortestPathLowerCostReroutes(t *testing.T) {
	g := edge_list{
		"A": {{1, "B"}, {2, "C"}},
		"B": {{9, "D"}},
		"C": {{1, "D"}},
	}
	p, ok := ShortestPath("A", is("D"), g)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "D"}, p.Nodes)
	assert.Equal(t, 3, p.Cost)
}

func TestShortestPathMultipleDestinations(t *testing.T) {
	g := edge_list{
		"A": {{5, "X"}, {1, "B"}},
		"B": {{1, "Y"}},
	}
	p, ok := ShortestPath("A", func(n string) bool { return n == "X" || n == "Y" }, g)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "Y"}, p.Nodes)
}

func TestShortestPathStopsAtDestination(t *testing.T) {
	expanded := []string{}
	g := GraphFunc[string](func(n string) []Edge[string] {
		expanded = append(expanded, n)
		switch n {
		case "A":
			return []Edge[string]{{1, "B"}}
		case "B":
			return []Edge[string]{{1, "C"}}
		}
		return nil
	})
	_, ok := ShortestPath("A", is("B"), g)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, expanded)

	expanded = expanded[:0]
	p, ok := ShortestPath("A", is("A"), g)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, p.Nodes)
	assert.Empty(t, expanded)
}

func TestShortestPathDoesNotShareStorage(t *testing.T) {
	g := edge_list{
		"A": {{1, "B"}, {1, "C"}},
		"B": {{1, "D"}},
		"C": {{1, "E"}},
	}
	d, ok := ShortestPath("A", is("D"), g)
	require.True(t, ok)
	e, ok := ShortestPath("A", is("E"), g)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "D"}, d.Nodes)
	assert.Equal(t, []string{"A", "C", "E"}, e.Nodes)
}

func TestShortestPathNegativeCostPanics(t *testing.T) {
	g := edge_list{"A": {{-1, "B"}}}
	require.Panics(t, func() { ShortestPath("A", is("B"), g) })
}
