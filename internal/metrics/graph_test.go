package metrics

import (
	"testing"
)

func TestComputeInOutDegree(t *testing.T) {
	graph := map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
		"C": {},
	}

	inDegree, outDegree := ComputeInOutDegree(graph)

	// Check out-degrees
	expectedOut := map[string]int{"A": 2, "B": 1, "C": 0}
	for node, expected := range expectedOut {
		if outDegree[node] != expected {
			t.Errorf("outDegree[%s] = %d, expected %d", node, outDegree[node], expected)
		}
	}

	// Check in-degrees
	expectedIn := map[string]int{"A": 0, "B": 1, "C": 2}
	for node, expected := range expectedIn {
		if inDegree[node] != expected {
			t.Errorf("inDegree[%s] = %d, expected %d", node, inDegree[node], expected)
		}
	}
}

func TestComputeInOutDegree_WithImplicitNodes(t *testing.T) {
	// D is only referenced as a target, not as a key
	graph := map[string][]string{
		"A": {"B", "D"},
		"B": {"D"},
	}

	inDegree, outDegree := ComputeInOutDegree(graph)

	// D should be discovered from targets
	if inDegree["D"] != 2 {
		t.Errorf("inDegree[D] = %d, expected 2", inDegree["D"])
	}
	if outDegree["D"] != 0 {
		t.Errorf("outDegree[D] = %d, expected 0", outDegree["D"])
	}
}

func TestComputeGraphStats(t *testing.T) {
	graph := map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
		"C": {},
	}

	stats := ComputeGraphStats(graph)

	if stats.NodeCount != 3 {
		t.Errorf("NodeCount = %d, expected 3", stats.NodeCount)
	}
	if stats.EdgeCount != 3 {
		t.Errorf("EdgeCount = %d, expected 3", stats.EdgeCount)
	}
	if stats.MaxOutDegree != 2 {
		t.Errorf("MaxOutDegree = %d, expected 2", stats.MaxOutDegree)
	}
	if stats.MaxInDegree != 2 {
		t.Errorf("MaxInDegree = %d, expected 2", stats.MaxInDegree)
	}
	if stats.RootCount != 1 {
		t.Errorf("RootCount = %d, expected 1", stats.RootCount)
	}
	if stats.LeafCount != 1 {
		t.Errorf("LeafCount = %d, expected 1", stats.LeafCount)
	}

	// Density = 3 / (3 * 2) = 0.5
	expectedDensity := 0.5
	if !floatEquals(stats.Density, expectedDensity, 0.001) {
		t.Errorf("Density = %f, expected %f", stats.Density, expectedDensity)
	}
}

func TestComputeGraphStats_Empty(t *testing.T) {
	graph := make(map[string][]string)
	stats := ComputeGraphStats(graph)

	if stats.NodeCount != 0 {
		t.Errorf("NodeCount for empty graph = %d, expected 0", stats.NodeCount)
	}
}
