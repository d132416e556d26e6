package maxbw

import (
	"fmt"

	"github.com/rhartert/maxbw/network"
	"github.com/rhartert/maxbw/pq"
	"github.com/rhartert/sparsesets"
)

// Solver holds the result of a maximum cumulative bandwidth computation from
// a single source. It is built by Solve and is read-only afterwards.
//
// A Solver must not be shared by concurrent computations. The Digraph it
// reads is never modified and can be shared by several solvers.
type Solver struct {
	g   *network.Digraph
	src int

	// bandwidthTo[v] is the best cumulative bandwidth known from src to v.
	bandwidthTo []int64
	// edgeTo[v] is the index in g.Edges of the last edge of the best known
	// path to v, or -1 if v was never relaxed.
	edgeTo []int

	pq          *pq.IndexMaxPQ
	settled     *sparsesets.Set
	extractions int
}

// Solve computes the maximum cumulative bandwidth from src to every node of
// g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. src must be in [0, V) (ErrInvalidVertex).
//  3. No edge can have a negative bandwidth (ErrNegativeBandwidth).
//
// Options:
//
//   - WithCheck(): run Check after the loop (ErrCheckFailed on violation).
//   - WithSettleLimit(n): fail with ErrSettleLimit after n extractions.
func Solve(g *network.Digraph, src int, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumNodes()
	if err := validateVertex(src, n); err != nil {
		return nil, err
	}
	for i, e := range g.Edges {
		if e.Bandwidth < 0 {
			return nil, fmt.Errorf("%w: edge %d (%d->%d) has bandwidth %d", ErrNegativeBandwidth, i, e.From, e.To, e.Bandwidth)
		}
	}

	s := &Solver{
		g:           g,
		src:         src,
		bandwidthTo: make([]int64, n),
		edgeTo:      make([]int, n),
		pq:          pq.New(n),
		settled:     sparsesets.New(n),
	}
	for v := range s.edgeTo {
		s.edgeTo[v] = -1
	}

	if err := s.run(cfg.SettleLimit); err != nil {
		return nil, err
	}

	if cfg.Check {
		if err := s.Check(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// run relaxes nodes in decreasing order of bandwidth until the queue is
// empty.
func (s *Solver) run(limit int) error {
	s.pq.Insert(s.src, s.bandwidthTo[s.src])
	for !s.pq.IsEmpty() {
		if limit > 0 && s.extractions == limit {
			return fmt.Errorf("%w: %d extractions", ErrSettleLimit, limit)
		}
		v := s.pq.DelMax()
		s.extractions++
		s.settled.Insert(v)
		for _, e := range s.g.Nexts[v] {
			s.relax(e)
		}
	}
	return nil
}

// relax improves the label of the target of edge e if going through e
// yields a higher cumulative bandwidth. A node that was never reached takes
// any path, including one of bandwidth 0.
func (s *Solver) relax(e int) {
	edge := s.g.Edges[e]
	v, w := edge.From, edge.To

	newBandwidth := s.bandwidthTo[v] + edge.Bandwidth
	if s.hasPathTo(w) && newBandwidth <= s.bandwidthTo[w] {
		return
	}

	s.bandwidthTo[w] = newBandwidth
	s.edgeTo[w] = e
	if s.pq.Contains(w) {
		s.pq.IncreaseKey(w, newBandwidth)
	} else {
		s.pq.Insert(w, newBandwidth)
	}
}

func validateVertex(v int, n int) error {
	if v < 0 || n <= v {
		return fmt.Errorf("%w: node %d is not in [0, %d)", ErrInvalidVertex, v, n)
	}
	return nil
}
