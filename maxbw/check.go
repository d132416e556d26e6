package maxbw

import "fmt"

// Check verifies that the labels computed by Solve satisfy the optimality
// conditions of the relaxation loop:
//
//	(a) no edge has a negative bandwidth
//	(b) bandwidthTo[src] == 0 and src has no predecessor edge
//	(c) a node other than src without predecessor edge has bandwidth 0
//	(d) every edge e = v->w leaving a settled node satisfies
//	    bandwidthTo[v] + e.Bandwidth <= bandwidthTo[w]
//	(e) every predecessor edge e = v->w satisfies
//	    bandwidthTo[v] + e.Bandwidth == bandwidthTo[w]
//
// It returns an error wrapping ErrCheckFailed that describes the first
// violation found, or nil. Check runs in O(V + E).
func (s *Solver) Check() error {
	g := s.g

	for i, e := range g.Edges {
		if e.Bandwidth < 0 {
			return fmt.Errorf("%w: edge %d (%s) has negative bandwidth", ErrCheckFailed, i, e)
		}
	}

	if s.bandwidthTo[s.src] != 0 || s.edgeTo[s.src] != -1 {
		return fmt.Errorf("%w: bandwidthTo[%d] and edgeTo[%d] inconsistent for the source", ErrCheckFailed, s.src, s.src)
	}
	for v := range s.bandwidthTo {
		if v == s.src || s.edgeTo[v] != -1 {
			continue
		}
		if s.bandwidthTo[v] != 0 {
			return fmt.Errorf("%w: node %d has no predecessor but bandwidth %d", ErrCheckFailed, v, s.bandwidthTo[v])
		}
	}

	for _, v := range s.settled.Content() {
		for _, i := range g.Nexts[v] {
			e := g.Edges[i]
			if s.bandwidthTo[v]+e.Bandwidth > s.bandwidthTo[e.To] {
				return fmt.Errorf("%w: edge %d (%s) not relaxed", ErrCheckFailed, i, e)
			}
		}
	}

	for w, i := range s.edgeTo {
		if i == -1 {
			continue
		}
		e := g.Edges[i]
		if e.To != w {
			return fmt.Errorf("%w: edgeTo[%d] is edge %d (%s) which does not lead to %d", ErrCheckFailed, w, i, e, w)
		}
		if !s.settled.Contains(w) {
			return fmt.Errorf("%w: node %d has a predecessor but was never settled", ErrCheckFailed, w)
		}
		if s.bandwidthTo[e.From]+e.Bandwidth != s.bandwidthTo[w] {
			return fmt.Errorf("%w: edge %d (%s) on the bandwidth forest is not tight", ErrCheckFailed, i, e)
		}
	}
	return nil
}
