package maxbw_test

import (
	"fmt"
	"strings"

	"github.com/rhartert/maxbw/maxbw"
	"github.com/rhartert/maxbw/network"
)

func ExampleSolve() {
	g, err := network.NewDigraph([]network.Edge{
		{From: 0, To: 1, Type: "fiber", Bandwidth: 5, Length: 10},
		{From: 1, To: 2, Type: "fiber", Bandwidth: 3, Length: 7},
		{From: 0, To: 2, Type: "copper", Bandwidth: 4, Length: 2},
	}, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := maxbw.Solve(g, 0, maxbw.WithCheck())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for v := 0; v < s.NumVertices(); v++ {
		bw, _ := s.BandwidthTo(v)
		p, _ := s.PathTo(v)
		if p == nil {
			fmt.Printf("0 to %d         no path\n", v)
			continue
		}
		fmt.Println(strings.TrimSpace(fmt.Sprintf("0 to %d (%d)  %s", v, bw, p)))
	}
	// Output:
	// 0 to 0 (0)
	// 0 to 1 (5)  0->1 5
	// 0 to 2 (8)  0->1 5   1->2 3
	// 0 to 3         no path
}
