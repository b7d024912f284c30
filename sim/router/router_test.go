package router

import (
	"testing"

	"gonum.org/v1/gonum/graph/simple"
)

func simpleNode(id int64) simple.Node {
	return simple.Node(id)
}

func buildChain(n int) *Graph {
	g := NewGraph()
	for i := int64(0); i < int64(n); i++ {
		g.AddNode(simpleNode(i))
	}
	for i := int64(0); i < int64(n)-1; i++ {
		g.SetWeightedEdge(g.NewWeightedEdge(simpleNode(i), simpleNode(i+1), 1.0))
	}
	return g
}

func TestRoute_EmptyGraph(t *testing.T) {
	g := NewGraph()
	result, err := Route(g, 4, 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Mapping) != 0 {
		t.Errorf("expected empty mapping, got %v", result.Mapping)
	}
	if result.Cost.TotalCost != 0 {
		t.Errorf("expected zero cost, got %v", result.Cost)
	}
}

func TestRoute_InsufficientGridSlots(t *testing.T) {
	g := buildChain(5)
	_, err := Route(g, 2, 2, 1)
	if err != ErrInsufficientGridSlots {
		t.Fatalf("expected ErrInsufficientGridSlots, got %v", err)
	}
}

func TestRoute_AssignsDistinctSlots(t *testing.T) {
	g := buildChain(6)
	result, err := Route(g, 3, 3, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[GridPosition]bool)
	for _, pos := range result.Mapping {
		if seen[pos] {
			t.Fatalf("duplicate grid slot %+v", pos)
		}
		seen[pos] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct slots, got %d", len(seen))
	}
}

func TestRoute_Deterministic(t *testing.T) {
	g1 := buildChain(8)
	g2 := buildChain(8)

	r1, err := Route(g1, 4, 4, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := Route(g2, 4, 4, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for id, pos := range r1.Mapping {
		if r2.Mapping[id] != pos {
			t.Errorf("node %d placement differs across runs: %+v vs %+v", id, pos, r2.Mapping[id])
		}
	}
	if r1.Cost != r2.Cost {
		t.Errorf("cost differs across runs: %+v vs %+v", r1.Cost, r2.Cost)
	}
	if r1.BaselineCost != r2.BaselineCost {
		t.Errorf("baseline cost differs across runs: %+v vs %+v", r1.BaselineCost, r2.BaselineCost)
	}
}

func TestRoute_SingleNode(t *testing.T) {
	g := NewGraph()
	g.AddNode(simpleNode(0))
	result, err := Route(g, 1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Mapping) != 1 {
		t.Errorf("expected 1 placement, got %d", len(result.Mapping))
	}
	if result.Cost.TotalCost != 0 {
		t.Errorf("expected zero cost with no edges, got %v", result.Cost)
	}
}
