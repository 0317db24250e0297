package sbjgraph_test

import (
	"fmt"

	"github.com/go-techmap/techmap/sbjgraph"
)

// ExampleGraph_NewAnd builds a single two-input AND gate (a AND (NOT b)),
// wires its output to a primary output, and prints the resulting depth.
func ExampleGraph_NewAnd() {
	g := sbjgraph.NewGraph()
	a := g.NewInput(true)
	b := g.NewInput(true)

	y, err := g.NewAnd(a, b.Not())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := g.NewOutput(y); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Level())
	// Output:
	// 1
}
