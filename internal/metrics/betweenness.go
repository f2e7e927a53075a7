// Package metrics provides the centrality and risk scoring algorithms the
// analytics surface is built on. Algorithms operate on plain string-keyed
// adjacency maps so they stay independent of any engine backend.
package metrics

// ComputeBetweenness calculates betweenness centrality using Brandes'
// algorithm. graph maps entity id to neighbour ids; every id must appear
// as a key, isolated entities with an empty list.
// Returns normalized scores in [0, 1].
//
// Betweenness measures how often an entity lies on the shortest path
// between other entities. High-betweenness entities are the bottlenecks
// of the organisation: the shared service, the gateway network, the one
// person two departments route through.
//
// Formula:
//
//	BC(v) = Σ σ(s,t|v) / σ(s,t)  for all s≠v≠t
//
// Where:
//
//	σ(s,t) = number of shortest paths from s to t
//	σ(s,t|v) = number of those paths passing through v
func ComputeBetweenness(graph map[string][]string) map[string]float64 {
	n := len(graph)

	bc := make(map[string]float64)
	for node := range graph {
		bc[node] = 0.0
	}

	if n < 3 {
		// Need at least 3 nodes for betweenness to be meaningful
		return bc
	}

	// Brandes algorithm: BFS from each source
	for source := range graph {
		// Single-source shortest paths
		stack := make([]string, 0)
		pred := make(map[string][]string)  // predecessors on shortest paths
		sigma := make(map[string]float64)  // number of shortest paths
		dist := make(map[string]int)       // distance from source

		for node := range graph {
			pred[node] = make([]string, 0)
			sigma[node] = 0.0
			dist[node] = -1
		}

		sigma[source] = 1.0
		dist[source] = 0

		// BFS
		queue := []string{source}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for _, w := range graph[v] {
				// w found for first time?
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				// shortest path to w via v?
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		// Accumulation
		delta := make(map[string]float64)
		for node := range graph {
			delta[node] = 0.0
		}

		// Stack returns vertices in order of non-increasing distance from source
		for len(stack) > 0 {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, v := range pred[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != source {
				bc[w] += delta[w]
			}
		}
	}

	// Normalize by (n-1)(n-2)
	normFactor := float64((n - 1) * (n - 2))
	if normFactor > 0 {
		for node := range bc {
			bc[node] /= normFactor
		}
	}

	return bc
}
