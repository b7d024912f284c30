package router

import "gonum.org/v1/gonum/graph/simple"

// Graph is the interaction graph the router places: nodes are logical
// qubits, edge weights are interaction counts. It is a thin alias over
// gonum's weighted undirected graph so callers never need to import gonum
// directly just to build one.
type Graph = simple.WeightedUndirectedGraph

// NewGraph returns an empty interaction graph. Edge weight 0 means "no
// edge"; self loops are not meaningful for qubit interaction and are never
// added by this package.
func NewGraph() *Graph {
	return simple.NewWeightedUndirectedGraph(0, 0)
}
