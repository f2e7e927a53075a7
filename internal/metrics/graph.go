package metrics

// ComputeInOutDegree calculates per-node in- and out-degree over a
// directed adjacency map. Ids that appear only as targets are counted
// too, so the result covers every node the edges touch, with parallel
// edges each contributing one.
func ComputeInOutDegree(graph map[string][]string) (inDegree, outDegree map[string]int) {
	inDegree = make(map[string]int)
	outDegree = make(map[string]int)

	for node, targets := range graph {
		if _, ok := outDegree[node]; !ok {
			outDegree[node] = 0
			inDegree[node] = 0
		}
		for _, target := range targets {
			if _, ok := outDegree[target]; !ok {
				outDegree[target] = 0
				inDegree[target] = 0
			}
		}
	}

	for node, targets := range graph {
		outDegree[node] = len(targets)
		for _, target := range targets {
			inDegree[target]++
		}
	}

	return
}

// GraphStats summarises the degree structure of a directed graph. Roots
// have no incoming edges, leaves no outgoing ones.
type GraphStats struct {
	NodeCount    int     `yaml:"node_count" json:"node_count"`
	EdgeCount    int     `yaml:"edge_count" json:"edge_count"`
	AvgInDegree  float64 `yaml:"avg_in_degree" json:"avg_in_degree"`
	MaxInDegree  int     `yaml:"max_in_degree" json:"max_in_degree"`
	MaxOutDegree int     `yaml:"max_out_degree" json:"max_out_degree"`
	RootCount    int     `yaml:"root_count" json:"root_count"`
	LeafCount    int     `yaml:"leaf_count" json:"leaf_count"`
	Density      float64 `yaml:"density" json:"density"`
}

// ComputeGraphStats calculates topology statistics for a directed graph
// in a single pass over its degree maps.
func ComputeGraphStats(graph map[string][]string) GraphStats {
	inDegree, outDegree := ComputeInOutDegree(graph)

	nodeCount := len(inDegree)
	if nodeCount == 0 {
		return GraphStats{}
	}

	edgeCount := 0
	for _, targets := range graph {
		edgeCount += len(targets)
	}

	maxIn, maxOut := 0, 0
	rootCount, leafCount := 0, 0
	totalInDegree := 0

	for node, in := range inDegree {
		totalInDegree += in
		if in > maxIn {
			maxIn = in
		}
		if in == 0 {
			rootCount++
		}

		out := outDegree[node]
		if out > maxOut {
			maxOut = out
		}
		if out == 0 {
			leafCount++
		}
	}

	// Density treats the graph as simple: edges / (n * (n-1)).
	var density float64
	if nodeCount > 1 {
		density = float64(edgeCount) / float64(nodeCount*(nodeCount-1))
	}

	return GraphStats{
		NodeCount:    nodeCount,
		EdgeCount:    edgeCount,
		AvgInDegree:  float64(totalInDegree) / float64(nodeCount),
		MaxInDegree:  maxIn,
		MaxOutDegree: maxOut,
		RootCount:    rootCount,
		LeafCount:    leafCount,
		Density:      density,
	}
}
