package mesh_test

import (
	"fmt"

	"github.com/katavolt/resistiv/mesh"
)

// ExampleGrid_ModelFromMarkers builds a small true model: a conductive
// block (marker 2) embedded in a 200 Ωm background (marker 1).
func ExampleGrid_ModelFromMarkers() {
	g, err := mesh.NewGrid(6, 3, mesh.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	g.SetMarkerBox(2, 1, 3, 2, 2)

	model, err := g.ModelFromMarkers(map[int]float64{1: 200, 2: 50})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cells=%d pairs=%d\n", g.NumCells(), g.NumInteriorPairs())
	fmt.Printf("background=%.0f anomaly=%.0f\n", model[g.Index(0, 0)], model[g.Index(2, 1)])
	// Output:
	// cells=18 pairs=27
	// background=200 anomaly=50
}
