// Package network provides the directed graph on which bandwidth paths are
// computed. Nodes are identified by their position in [0, N).
package network

import (
	"errors"
	"fmt"
)

// ErrInvalidVertex is returned when an edge references a node outside of
// [0, N).
var ErrInvalidVertex = errors.New("network: invalid vertex")

// Edge represents a directed link between two nodes. Type and Length are
// carried for reporting and are not interpreted by path computations.
type Edge struct {
	From      int
	To        int
	Type      string
	Bandwidth int64
	Length    int64
}

// String returns the edge in the "from->to bandwidth" form.
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d %d", e.From, e.To, e.Bandwidth)
}

// Digraph represents a directed graph. Nexts[v] holds the indices in Edges of
// the edges leaving node v, in insertion order.
type Digraph struct {
	Nexts [][]int
	Edges []Edge
}

// NewDigraph creates a new directed graph with the specified edges and number
// of nodes. It returns an error wrapping ErrInvalidVertex if an edge has an
// endpoint outside of [0, nNodes).
func NewDigraph(edges []Edge, nNodes int) (*Digraph, error) {
	if nNodes < 0 {
		return nil, fmt.Errorf("network: negative number of nodes %d", nNodes)
	}
	dg := &Digraph{
		Nexts: make([][]int, nNodes),
		Edges: make([]Edge, len(edges)),
	}
	for i, e := range edges {
		if e.From < 0 || nNodes <= e.From {
			return nil, fmt.Errorf("%w: edge %d: node %d is not in [0, %d)", ErrInvalidVertex, i, e.From, nNodes)
		}
		if e.To < 0 || nNodes <= e.To {
			return nil, fmt.Errorf("%w: edge %d: node %d is not in [0, %d)", ErrInvalidVertex, i, e.To, nNodes)
		}
		dg.Edges[i] = e
		dg.Nexts[e.From] = append(dg.Nexts[e.From], i)
	}
	return dg, nil
}

// NumNodes returns the number of nodes in the graph.
func (g *Digraph) NumNodes() int {
	return len(g.Nexts)
}

// Adj returns the indices of the edges leaving node v. It is important to
// ensure that v is within [0, NumNodes()); otherwise, the function will
// panic. Callers taking node ids from users validate them first, as
// Reachable and the maxbw solver do.
//
// Important: the slice is a view on the graph's internal structure and should
// only be used in read-only operations.
func (g *Digraph) Adj(v int) []int {
	return g.Nexts[v]
}

// Bidirectional returns a new slice in which each edge is followed by its
// reverse (same type, bandwidth and length). Self-loops are not duplicated.
func Bidirectional(edges []Edge) []Edge {
	out := make([]Edge, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e)
		if e.From == e.To {
			continue
		}
		out = append(out, Edge{
			From:      e.To,
			To:        e.From,
			Type:      e.Type,
			Bandwidth: e.Bandwidth,
			Length:    e.Length,
		})
	}
	return out
}
