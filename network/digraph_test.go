package network

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDigraph(t *testing.T) {
	testCases := []struct {
		desc   string
		edges  []Edge
		nNodes int
		want   *Digraph
	}{
		{
			desc: "empty digraph",
			want: &Digraph{
				Nexts: [][]int{},
				Edges: []Edge{},
			},
		},
		{
			// 0-->1
			desc:   "one edge",
			edges:  []Edge{{0, 1, "fiber", 5, 10}},
			nNodes: 2,
			want: &Digraph{
				Nexts: [][]int{{0}, nil},
				Edges: []Edge{{0, 1, "fiber", 5, 10}},
			},
		},
		{
			// 0-->1   2-->3
			desc:   "not connected",
			edges:  []Edge{{0, 1, "a", 1, 1}, {2, 3, "b", 1, 1}},
			nNodes: 4,
			want: &Digraph{
				Nexts: [][]int{{0}, nil, {1}, nil},
				Edges: []Edge{{0, 1, "a", 1, 1}, {2, 3, "b", 1, 1}},
			},
		},
		{
			// 0<->1<->2
			// ^       ^
			// |       |
			// +-->3<--+
			desc: "strongly connected",
			edges: []Edge{
				{0, 1, "x", 1, 0}, // edge: 0
				{1, 0, "x", 1, 0}, // edge: 1
				{1, 2, "x", 1, 0}, // edge: 2
				{2, 1, "x", 1, 0}, // edge: 3
				{0, 3, "x", 1, 0}, // edge: 4
				{3, 0, "x", 1, 0}, // edge: 5
				{2, 3, "x", 1, 0}, // edge: 6
				{3, 2, "x", 1, 0}, // edge: 7
			},
			nNodes: 4,
			want: &Digraph{
				Nexts: [][]int{
					{0, 4},
					{1, 2},
					{3, 6},
					{5, 7},
				},
				Edges: []Edge{
					{0, 1, "x", 1, 0},
					{1, 0, "x", 1, 0},
					{1, 2, "x", 1, 0},
					{2, 1, "x", 1, 0},
					{0, 3, "x", 1, 0},
					{3, 0, "x", 1, 0},
					{2, 3, "x", 1, 0},
					{3, 2, "x", 1, 0},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := NewDigraph(tc.edges, tc.nNodes)
			if err != nil {
				t.Fatalf("NewDigraph(): want no error, got %v", err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("NewDigraph(): mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewDigraph_invalidVertex(t *testing.T) {
	testCases := []struct {
		desc  string
		edges []Edge
	}{
		{"from too large", []Edge{{From: 2, To: 0}}},
		{"to too large", []Edge{{From: 0, To: 2}}},
		{"negative from", []Edge{{From: -1, To: 0}}},
		{"negative to", []Edge{{From: 0, To: -1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := NewDigraph(tc.edges, 2)
			if !errors.Is(err, ErrInvalidVertex) {
				t.Errorf("NewDigraph(): want ErrInvalidVertex, got %v", err)
			}
		})
	}
}

func TestNewDigraph_negativeNodes(t *testing.T) {
	if _, err := NewDigraph(nil, -1); err == nil {
		t.Errorf("NewDigraph(): want error, got nil")
	}
}

func TestBidirectional(t *testing.T) {
	edges := []Edge{
		{0, 1, "fiber", 5, 10},
		{2, 2, "loop", 1, 1},
	}
	want := []Edge{
		{0, 1, "fiber", 5, 10},
		{1, 0, "fiber", 5, 10},
		{2, 2, "loop", 1, 1},
	}

	got := Bidirectional(edges)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bidirectional(): mismatch (-want +got):\n%s", diff)
	}
}

func TestEdge_String(t *testing.T) {
	e := Edge{From: 3, To: 7, Type: "copper", Bandwidth: 12, Length: 4}
	if got, want := e.String(), "3->7 12"; got != want {
		t.Errorf("String(): want %q, got %q", want, got)
	}
}

func TestReachable(t *testing.T) {
	// 0-->1-->2   3-->0   4
	g, err := NewDigraph([]Edge{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 3, To: 0},
	}, 5)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		src  int
		want []int
	}{
		{0, []int{0, 1, 2}},
		{2, []int{2}},
		{3, []int{0, 1, 2, 3}},
		{4, []int{4}},
	}

	for _, tc := range testCases {
		set, err := Reachable(g, tc.src)
		if err != nil {
			t.Fatalf("Reachable(%d): want no error, got %v", tc.src, err)
		}
		got := append([]int(nil), set.Content()...)
		sort.Ints(got)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Reachable(%d): mismatch (-want +got):\n%s", tc.src, diff)
		}
	}
}

func TestReachable_errors(t *testing.T) {
	if _, err := Reachable(nil, 0); err == nil {
		t.Errorf("Reachable(nil): want error, got nil")
	}
	g, _ := NewDigraph(nil, 2)
	if _, err := Reachable(g, 2); !errors.Is(err, ErrInvalidVertex) {
		t.Errorf("Reachable(): want ErrInvalidVertex, got %v", err)
	}
}

func TestDigraph_Adj(t *testing.T) {
	g, err := NewDigraph([]Edge{{From: 0, To: 1}, {From: 0, To: 2}}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1}, g.Adj(0)); diff != "" {
		t.Errorf("Adj(0): mismatch (-want +got):\n%s", diff)
	}
	if got := g.Adj(2); len(got) != 0 {
		t.Errorf("Adj(2): want no edges, got %v", got)
	}

	for _, v := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Adj(%d): want panic for node outside [0, 3)", v)
				}
			}()
			g.Adj(v)
		}()
	}
}
