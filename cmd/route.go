package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/MRamiBalles/quantum-navigator/sim/router"
)

var (
	routeWidth  int
	routeHeight int
	routeSeed   int64
)

// graphFile is the wire shape a route input file takes: a node-id list and
// a weighted edge list, decoupled from gonum's graph.Node/Edge interfaces.
type graphFile struct {
	Nodes []int64 `json:"nodes"`
	Edges []struct {
		From   int64   `json:"from"`
		To     int64   `json:"to"`
		Weight float64 `json:"weight"`
	} `json:"edges"`
}

var routeCmd = &cobra.Command{
	Use:   "route <graph.json>",
	Short: "Place an interaction graph on a grid and report the cost reduction over a random baseline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			logrus.Fatalf("reading graph file: %v", err)
		}

		var gf graphFile
		if err := json.Unmarshal(data, &gf); err != nil {
			logrus.Fatalf("parsing graph file: %v", err)
		}

		g := router.NewGraph()
		for _, id := range gf.Nodes {
			g.AddNode(simple.Node(id))
		}
		for _, e := range gf.Edges {
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
		}

		result, err := router.Route(g, routeWidth, routeHeight, routeSeed)
		if err != nil {
			logrus.Fatalf("routing: %v", err)
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logrus.Fatalf("encoding result: %v", err)
		}
		fmt.Println(string(out))
	},
}

func init() {
	routeCmd.Flags().IntVar(&routeWidth, "width", 4, "Grid width")
	routeCmd.Flags().IntVar(&routeHeight, "height", 4, "Grid height")
	routeCmd.Flags().Int64Var(&routeSeed, "seed", 0, "Random baseline seed")
}
