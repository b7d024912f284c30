package router

import "math"

// conflictPenalty is λ in total_cost = distance + λ·conflicts (spec §4.3).
const conflictPenalty = 5.0

// GridPosition is an integer placement on the router's W×H grid.
type GridPosition struct {
	X, Y int
}

func (p GridPosition) distance(o GridPosition) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Hypot(dx, dy)
}

// CostBreakdown is the per-edge-summed cost of one placement.
type CostBreakdown struct {
	TotalDistance float64
	AODConflicts  int
	TotalCost     float64
}

// evaluateCost sums the cost model of spec.md §4.3 over every edge of g
// under the given mapping: distance contributes w·‖pos(u)−pos(v)‖₂; a
// non-axis-aligned move (requiring simultaneous row and column change)
// contributes one AOD conflict.
func evaluateCost(g *Graph, mapping map[int64]GridPosition) CostBreakdown {
	var breakdown CostBreakdown
	edges := g.WeightedEdges()
	for edges.Next() {
		we := edges.WeightedEdge()
		u, v := we.From().ID(), we.To().ID()
		w := we.Weight()
		pu, pv := mapping[u], mapping[v]

		breakdown.TotalDistance += w * pu.distance(pv)
		if pu.X != pv.X && pu.Y != pv.Y {
			breakdown.AODConflicts++
		}
	}
	breakdown.TotalCost = breakdown.TotalDistance + conflictPenalty*float64(breakdown.AODConflicts)
	return breakdown
}
