package paths

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/maxbw/network"
)

func TestNew_copiesEdges(t *testing.T) {
	edges := []network.Edge{{From: 0, To: 1, Bandwidth: 1}}
	p := New(edges)

	edges[0].Bandwidth = 42

	if got := p.Bandwidth(); got != 1 {
		t.Errorf("Bandwidth(): want 1, got %d", got)
	}
}

func TestPath_Nodes(t *testing.T) {
	p := New([]network.Edge{
		{From: 4, To: 2},
		{From: 2, To: 7},
		{From: 7, To: 1},
	})

	want := []int{4, 2, 7, 1}
	if diff := cmp.Diff(want, p.Nodes()); diff != "" {
		t.Errorf("Nodes(): mismatch (-want +got):\n%s", diff)
	}
	if got := p.Len(); got != 3 {
		t.Errorf("Len(): want 3, got %d", got)
	}
}
