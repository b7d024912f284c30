package router

import (
	"sort"

	"gonum.org/v1/gonum/graph"

	"github.com/MRamiBalles/quantum-navigator/sim"
)

// RouteResult is the complete output of one routing pass: the placement,
// its cost, and a comparison against a random baseline using the same
// graph and seed (spec §4.3's "reduction percentage").
type RouteResult struct {
	Mapping          map[int64]GridPosition
	Cost             CostBreakdown
	BaselineCost     CostBreakdown
	ReductionPercent float64
}

// Route places every node of g on a width×height grid, minimizing the cost
// model of spec.md §4.3. It returns ErrInsufficientGridSlots if the grid
// cannot hold every vertex, and a zero-cost empty result for an empty
// graph.
func Route(g *Graph, width, height int, seed int64) (*RouteResult, error) {
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return &RouteResult{Mapping: map[int64]GridPosition{}}, nil
	}
	if width*height < len(nodes) {
		return nil, ErrInsufficientGridSlots
	}

	embedding := spectralEmbedding(g)
	mapping := snapToGrid(embedding, width)
	cost := evaluateCost(g, mapping)

	baseline := randomBaseline(nodes, width, height, seed)
	baselineCost := evaluateCost(g, baseline)

	reduction := 0.0
	if baselineCost.TotalCost > 0 {
		reduction = 100 * (baselineCost.TotalCost - cost.TotalCost) / baselineCost.TotalCost
	}

	return &RouteResult{
		Mapping:          mapping,
		Cost:             cost,
		BaselineCost:     baselineCost,
		ReductionPercent: reduction,
	}, nil
}

// snapToGrid assigns each node a distinct integer grid slot by a stable
// 2-D sort of its spectral coordinate (primary key x, secondary key y,
// ties broken by node id), then laying the resulting order out row-major
// across the grid (spec §4.3).
func snapToGrid(embedding map[int64]coord, width int) map[int64]GridPosition {
	ids := make([]int64, 0, len(embedding))
	for id := range embedding {
		ids = append(ids, id)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		ci, cj := embedding[ids[i]], embedding[ids[j]]
		if ci.x != cj.x {
			return ci.x < cj.x
		}
		if ci.y != cj.y {
			return ci.y < cj.y
		}
		return ids[i] < ids[j]
	})

	mapping := make(map[int64]GridPosition, len(ids))
	for rank, id := range ids {
		mapping[id] = GridPosition{X: rank % width, Y: rank / width}
	}
	return mapping
}

// randomBaseline assigns each node a distinct grid slot drawn from a
// Fisher-Yates shuffle of a PartitionedRNG stream keyed to seed, giving a
// reproducible random comparison point (spec §4.3, §9: the baseline seed
// must be pinned or the reduction metric is non-deterministic).
func randomBaseline(nodes []graph.Node, width, height int, seed int64) map[int64]GridPosition {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemRouterBaseline)

	slots := make([]GridPosition, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			slots = append(slots, GridPosition{X: x, Y: y})
		}
	}
	rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	ids := make([]int64, len(nodes))
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	mapping := make(map[int64]GridPosition, len(ids))
	for i, id := range ids {
		mapping[id] = slots[i]
	}
	return mapping
}
