package graph

// adjacency is an undirected neighbour view keyed by entity id. Every
// entity appears as a key, isolated ones with a nil list. Parallel edges
// produce duplicate entries; traversals dedup through their visited sets.
type adjacency map[string][]string

// buildAdjacency folds directed edges into the undirected view. ids is
// the full entity id set so isolated entities are present as keys.
func buildAdjacency(ids []string, edges [][2]string) adjacency {
	adj := make(adjacency, len(ids))
	for _, id := range ids {
		adj[id] = nil
	}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		if e[1] != e[0] {
			adj[e[1]] = append(adj[e[1]], e[0])
		}
	}
	return adj
}

// bfsPath returns the ids along one shortest path from source to target,
// or nil when target is unreachable. source == target yields the
// single-element path.
func bfsPath(adj adjacency, source, target string) []string {
	if source == target {
		return []string{source}
	}
	parent := map[string]string{source: source}
	queue := []string{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range adj[current] {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = current
			if next == target {
				return assemblePath(parent, source, target)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func assemblePath(parent map[string]string, source, target string) []string {
	path := []string{target}
	for at := target; at != source; {
		at = parent[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// bfsLayers groups ids reachable from source by hop count, bounded by
// maxDepth. Depth zero holds the source itself; depths with no new
// entities are omitted.
func bfsLayers(adj adjacency, source string, maxDepth int) map[int][]string {
	layers := map[int][]string{0: {source}}
	visited := map[string]bool{source: true}
	frontier := []string{source}
	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			for _, nb := range adj[id] {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				next = append(next, nb)
			}
		}
		if len(next) > 0 {
			layers[depth] = next
		}
		frontier = next
	}
	return layers
}

// weakComponents counts connected components when edge direction is
// ignored. The empty graph has zero components.
func weakComponents(adj adjacency, ids []string) int {
	visited := make(map[string]bool, len(ids))
	components := 0
	for _, start := range ids {
		if visited[start] {
			continue
		}
		components++
		visited[start] = true
		queue := []string{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, nb := range adj[current] {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return components
}

// graphDensity is the directed multigraph density m / (n * (n-1)).
func graphDensity(n, m int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(m) / float64(n*(n-1))
}
