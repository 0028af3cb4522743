package survey_test

import (
	"fmt"

	"github.com/katavolt/resistiv/survey"
)

// ExampleNewDipoleDipole builds the acquisition used by the example
// drivers: a 51-electrode line with unit spacing and trailing potential
// dipoles up to 8 separations away.
func ExampleNewDipoleDipole() {
	s, err := survey.NewDipoleDipole(51, 1.0, 8)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("electrodes=%d measurements=%d\n", len(s.Electrodes), s.Len())
	fmt.Printf("first=%+v\n", s.Measurements[0])
	// Output:
	// electrodes=51 measurements=356
	// first={A:0 B:1 M:2 N:3}
}
