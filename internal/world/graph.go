package world

import (
	"sort"
)

// graphEdge connects two rooms by id. Edges are normalized so a < b.
type graphEdge struct {
	a, b   int
	weight int
}

// buildRoomGraph selects the corridor skeleton: each room's k nearest
// neighbors by Manhattan center distance form the candidate set, Kruskal
// picks a spanning tree out of it, and leftover candidates are kept as
// loop edges with LoopChance. The graph is consumed by the carver and
// then discarded.
func (g *generator) buildRoomGraph() []graphEdge {
	const nearestK = 4

	n := len(g.rooms)
	if n < 2 {
		return nil
	}

	centers := make([]Point, n)
	for i, room := range g.rooms {
		centers[i] = room.CenterPoint()
	}

	// k-nearest candidate edges, deduplicated via normalized (a,b) keys.
	type edgeKey struct{ a, b int }
	candidateSet := make(map[edgeKey]int)
	for i := 0; i < n; i++ {
		type neighbor struct{ id, dist int }
		neighbors := make([]neighbor, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			neighbors = append(neighbors, neighbor{j, centers[i].ManhattanDistance(centers[j])})
		}
		sort.Slice(neighbors, func(x, y int) bool {
			if neighbors[x].dist != neighbors[y].dist {
				return neighbors[x].dist < neighbors[y].dist
			}
			return neighbors[x].id < neighbors[y].id
		})
		for k := 0; k < nearestK && k < len(neighbors); k++ {
			a, b := i, neighbors[k].id
			if a > b {
				a, b = b, a
			}
			candidateSet[edgeKey{a, b}] = neighbors[k].dist
		}
	}

	candidates := make([]graphEdge, 0, len(candidateSet))
	for key, dist := range candidateSet {
		candidates = append(candidates, graphEdge{a: key.a, b: key.b, weight: dist})
	}
	// Deterministic order: weight, then endpoints. Map iteration order
	// must never leak into the result.
	sort.Slice(candidates, func(x, y int) bool {
		if candidates[x].weight != candidates[y].weight {
			return candidates[x].weight < candidates[y].weight
		}
		if candidates[x].a != candidates[y].a {
			return candidates[x].a < candidates[y].a
		}
		return candidates[x].b < candidates[y].b
	})

	// Kruskal over the sorted candidates with union-find.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(u int) int {
		if parent[u] != u {
			parent[u] = find(parent[u])
		}
		return parent[u]
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
		return true
	}

	edges := make([]graphEdge, 0, n-1)
	inTree := make(map[edgeKey]bool, n-1)
	for _, e := range candidates {
		if union(e.a, e.b) {
			edges = append(edges, e)
			inTree[edgeKey{e.a, e.b}] = true
		}
	}

	// Probabilistic loop edges from the remaining candidates.
	for _, e := range candidates {
		if inTree[edgeKey{e.a, e.b}] {
			continue
		}
		if g.rng.Float64() < g.cfg.LoopChance {
			edges = append(edges, e)
		}
	}

	return edges
}
