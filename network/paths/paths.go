// Package paths provides a read-only representation of a path computed over a
// network.
package paths

import (
	"strings"

	"github.com/rhartert/maxbw/network"
)

// Path represents a sequence of edges leading from a source node to a
// destination node.
//
// A Path respects the following invariants:
//
//   - Connected: the To of each edge is the From of the next one
//   - Source node: From of the first edge
//   - Destination node: To of the last edge
//
// The empty path represents the trivial path from a node to itself.
type Path struct {
	edges []network.Edge
}

// New returns a new Path made of the given edges, which must be ordered from
// the source to the destination. The edges are copied.
func New(edges []network.Edge) *Path {
	return &Path{edges: append([]network.Edge(nil), edges...)}
}

// Len returns the number of edges in the path.
func (p *Path) Len() int {
	return len(p.edges)
}

// Edges returns the edges of the path ordered from source to destination.
//
// Important: the slice is a view on the path's internal structure and should
// only be used in read-only operations.
func (p *Path) Edges() []network.Edge {
	return p.edges
}

// Nodes returns the sequence of nodes visited by the path (including the
// path's source and destination). It returns nil for the empty path.
func (p *Path) Nodes() []int {
	if len(p.edges) == 0 {
		return nil
	}
	nodes := make([]int, 0, len(p.edges)+1)
	nodes = append(nodes, p.edges[0].From)
	for _, e := range p.edges {
		nodes = append(nodes, e.To)
	}
	return nodes
}

// Bandwidth returns the sum of the bandwidth of the path's edges.
func (p *Path) Bandwidth() int64 {
	sum := int64(0)
	for _, e := range p.edges {
		sum += e.Bandwidth
	}
	return sum
}

// Length returns the sum of the length of the path's edges.
func (p *Path) Length() int64 {
	sum := int64(0)
	for _, e := range p.edges {
		sum += e.Length
	}
	return sum
}

// String returns a string representation of the path as a sequence of edges
// separated by three spaces. For example: "0->1 5   1->2 3".
func (p *Path) String() string {
	sb := strings.Builder{}
	for i, e := range p.edges {
		if i > 0 {
			sb.WriteString("   ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}
