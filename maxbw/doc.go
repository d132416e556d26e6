// Package maxbw computes, from a single source node, the path of maximum
// cumulative bandwidth to every other node of a network.
//
// The solver is a greedy label-setting loop driven by an indexed
// max-priority queue: the node with the highest recorded bandwidth is
// extracted, and each of its outgoing edges (v, w) is relaxed with
//
//	if w is unreached || bandwidthTo[w] < bandwidthTo[v] + bandwidth(v, w) {
//	    bandwidthTo[w] = bandwidthTo[v] + bandwidth(v, w)
//	    edgeTo[w] = (v, w)
//	}
//
// Every node starts with a bandwidth of 0, so nodes that cannot be reached
// report 0 and no path. A node reached only through zero-bandwidth edges
// reports 0 and has a path.
//
// Caveats:
//
//   - The value optimized is the sum of bandwidths along the path. This is
//     neither a widest-path (bottleneck) nor a flow computation.
//   - A node whose label improves after it was extracted is queued again.
//     On graphs where a positive-bandwidth cycle is reachable from the
//     source the labels keep growing and the loop does not terminate;
//     WithSettleLimit can be used to bound the work.
//   - No cycle detection is performed. Check reports edges that can still
//     improve their target.
//
// Complexity: each extraction and each improving relaxation costs O(log V).
//
// Example:
//
//	g, _ := network.NewDigraph(edges, n)
//	s, err := maxbw.Solve(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, _ := s.PathTo(5)
package maxbw
