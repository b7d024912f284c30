package router

import "testing"

func TestGridPositionDistance(t *testing.T) {
	a := GridPosition{X: 0, Y: 0}
	b := GridPosition{X: 3, Y: 4}
	if got := a.distance(b); got != 5 {
		t.Errorf("distance = %v, want 5", got)
	}
}

func TestEvaluateCost_AxisAlignedNoConflict(t *testing.T) {
	g := NewGraph()
	g.AddNode(simpleNode(0))
	g.AddNode(simpleNode(1))
	g.SetWeightedEdge(g.NewWeightedEdge(simpleNode(0), simpleNode(1), 2.0))

	mapping := map[int64]GridPosition{0: {X: 0, Y: 0}, 1: {X: 3, Y: 0}}
	cost := evaluateCost(g, mapping)

	if cost.AODConflicts != 0 {
		t.Errorf("expected zero conflicts for axis-aligned move, got %d", cost.AODConflicts)
	}
	if cost.TotalDistance != 6 {
		t.Errorf("expected distance 2*3=6, got %v", cost.TotalDistance)
	}
}

func TestEvaluateCost_DiagonalConflict(t *testing.T) {
	g := NewGraph()
	g.AddNode(simpleNode(0))
	g.AddNode(simpleNode(1))
	g.SetWeightedEdge(g.NewWeightedEdge(simpleNode(0), simpleNode(1), 1.0))

	mapping := map[int64]GridPosition{0: {X: 0, Y: 0}, 1: {X: 1, Y: 1}}
	cost := evaluateCost(g, mapping)

	if cost.AODConflicts != 1 {
		t.Errorf("expected 1 conflict for diagonal move, got %d", cost.AODConflicts)
	}
	if cost.TotalCost != cost.TotalDistance+conflictPenalty {
		t.Errorf("TotalCost = %v, want distance + lambda", cost.TotalCost)
	}
}
