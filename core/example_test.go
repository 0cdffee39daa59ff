package core_test

import (
	"fmt"

	"github.com/katalvlaran/metrograph/core"
)

// ExampleGraph shows building a tiny two-line network and querying it.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddStation(core.Station{ID: "duomo", Name: "Duomo", Line: "M1-M3"})
	_ = g.AddStation(core.Station{ID: "cordusio", Name: "Cordusio", Line: "M1"})
	_ = g.AddStation(core.Station{ID: "missori", Name: "Missori", Line: "M3"})
	_ = g.AddConnection("duomo", "cordusio", "M1", 1.5)
	_ = g.AddConnection("duomo", "missori", "M3", 2)

	fmt.Println("stations:", g.StationCount())
	fmt.Println("connections:", g.ConnectionCount())

	nbrs, _ := g.Neighbors("duomo")
	fmt.Println("duomo neighbors:", nbrs)

	w, _ := g.Weight("missori", "duomo")
	fmt.Println("missori—duomo:", w)

	hub, _ := g.Station("duomo")
	fmt.Println("interchange:", hub.IsInterchange())
	// Output:
	// stations: 3
	// connections: 2
	// duomo neighbors: [cordusio missori]
	// missori—duomo: 2
	// interchange: true
}
