// Package router places logical qubits on a 2-D integer grid given a
// weighted interaction graph, minimizing Euclidean transport distance plus
// an AOD-row/column-crossing penalty. It never mutates its input graph.
package router
