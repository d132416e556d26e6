package network

import (
	"fmt"

	"github.com/rhartert/sparsesets"
)

// Reachable returns the set of nodes that can be reached from src by
// following at least zero edges. The source is always part of the set.
func Reachable(g *Digraph, src int) (*sparsesets.Set, error) {
	if g == nil {
		return nil, fmt.Errorf("network: digraph is nil")
	}
	n := g.NumNodes()
	if src < 0 || n <= src {
		return nil, fmt.Errorf("%w: node %d is not in [0, %d)", ErrInvalidVertex, src, n)
	}

	seen := sparsesets.New(n)
	seen.Insert(src)
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range g.Nexts[u] {
			v := g.Edges[e].To
			if seen.Contains(v) {
				continue
			}
			seen.Insert(v)
			queue = append(queue, v)
		}
	}
	return seen, nil
}
