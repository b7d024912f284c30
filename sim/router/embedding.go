package router

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"
)

// coord is a raw, unsnapped 2-D spectral coordinate for one node.
type coord struct {
	x, y float64
}

// spectralEmbedding computes a Fiedler-style 2-D embedding of g, weighted
// by edge weight: the graph Laplacian's second and third smallest
// eigenvectors give coordinates that place strongly-interacting qubits
// close together. For a graph with fewer than 2 nodes, where a Laplacian
// eigendecomposition is meaningless, every node gets the zero coordinate.
func spectralEmbedding(g *Graph) map[int64]coord {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	if n < 2 {
		out := make(map[int64]coord, n)
		for _, nd := range nodes {
			out[nd.ID()] = coord{}
		}
		return out
	}

	ids := make([]int64, n)
	index := make(map[int64]int, n)
	for i, nd := range nodes {
		ids[i] = nd.ID()
		index[nd.ID()] = i
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		index[id] = i
	}

	laplacian := mat.NewSymDense(n, nil)
	for _, nd := range nodes {
		u := index[nd.ID()]
		to := g.From(nd.ID())
		degree := 0.0
		for to.Next() {
			v := to.Node().ID()
			w := g.WeightedEdge(nd.ID(), v).Weight()
			degree += w
			if index[v] > u {
				laplacian.SetSym(u, index[v], -w)
			}
		}
		laplacian.SetSym(u, u, degree)
	}

	var eigen mat.EigenSym
	if ok := eigen.Factorize(laplacian, true); !ok {
		// The eigendecomposition did not succeed: fall back to a stable
		// deterministic placement by node id rather than fail the whole
		// route.
		out := make(map[int64]coord, n)
		for i, id := range ids {
			out[id] = coord{x: float64(i), y: 0}
		}
		return out
	}

	var vectors mat.Dense
	eigen.VectorsTo(&vectors)

	out := make(map[int64]coord, n)
	xCol := 1
	yCol := 2
	if n < 3 {
		yCol = 0
	}
	for _, id := range ids {
		i := index[id]
		out[id] = coord{x: vectors.At(i, xCol), y: vectors.At(i, yCol)}
	}
	return out
}
