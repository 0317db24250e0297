package dfs

import "github.com/go-techmap/techmap/core"

// TopologicalSort returns g's vertices in dependency order (every edge
// from -> to places from before to in the result), via Kahn's algorithm.
// It fails with ErrCyclic if g is not a DAG.
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, nil
	}

	vertices := g.Vertices()
	indegree := make(map[string]int, len(vertices))
	for _, v := range vertices {
		indegree[v] = 0
	}
	for _, v := range vertices {
		for _, next := range g.Successors(v) {
			indegree[next]++
		}
	}

	var queue []string
	for _, v := range vertices {
		if indegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]string, 0, len(vertices))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, next := range g.Successors(v) {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(vertices) {
		return nil, ErrCyclic
	}
	return order, nil
}
