package maxbw

import (
	"github.com/rhartert/maxbw/network"
	"github.com/rhartert/maxbw/network/paths"
)

// Source returns the source node of the computation.
func (s *Solver) Source() int {
	return s.src
}

// NumVertices returns the number of nodes of the underlying graph.
func (s *Solver) NumVertices() int {
	return len(s.bandwidthTo)
}

// Extractions returns the number of nodes extracted from the priority queue
// during Solve. A node is counted each time it is extracted.
func (s *Solver) Extractions() int {
	return s.extractions
}

// Settled returns the nodes that were extracted from the priority queue, in
// the order they were first extracted. The source is always first.
func (s *Solver) Settled() []int {
	return append([]int(nil), s.settled.Content()...)
}

// BandwidthTo returns the best cumulative bandwidth from the source to v. It
// is 0 for the source and for nodes without a path.
func (s *Solver) BandwidthTo(v int) (int64, error) {
	if err := validateVertex(v, len(s.bandwidthTo)); err != nil {
		return 0, err
	}
	return s.bandwidthTo[v], nil
}

// HasPathTo returns true if v is the source or was reached through at least
// one edge. Zero-bandwidth edges count as paths.
func (s *Solver) HasPathTo(v int) (bool, error) {
	if err := validateVertex(v, len(s.bandwidthTo)); err != nil {
		return false, err
	}
	return s.hasPathTo(v), nil
}

func (s *Solver) hasPathTo(v int) bool {
	return v == s.src || s.edgeTo[v] != -1
}

// PathTo returns the best path from the source to v, ordered from the source
// to v, or nil if there is no such path. The path to the source itself is
// empty.
func (s *Solver) PathTo(v int) (*paths.Path, error) {
	if err := validateVertex(v, len(s.bandwidthTo)); err != nil {
		return nil, err
	}
	if !s.hasPathTo(v) {
		return nil, nil
	}

	// Collect edges from v back to the source then reverse them.
	var rev []int
	for e := s.edgeTo[v]; e != -1; e = s.edgeTo[s.g.Edges[e].From] {
		rev = append(rev, e)
	}
	edges := make([]network.Edge, len(rev))
	for i, e := range rev {
		edges[len(rev)-1-i] = s.g.Edges[e]
	}
	return paths.New(edges), nil
}
