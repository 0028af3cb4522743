package survey

import (
	"fmt"
	"math"
)

// NewWenner constructs a Wenner-alpha scheme over n equally spaced surface
// electrodes. For every level a ≥ 1 it emits quadrupoles (A, M, N, B) at
// positions (i, i+a, i+2a, i+3a) while they fit on the line.
// Returns ErrTooFewElectrodes if n < 4, ErrBadSpacing if spacing ≤ 0.
// Complexity: O(n²) measurements in the worst case.
func NewWenner(n int, spacing float64) (*Scheme, error) {
	s, err := lineLayout(n, spacing)
	if err != nil {
		return nil, err
	}
	for a := 1; 3*a < n; a++ {
		for i := 0; i+3*a < n; i++ {
			s.Measurements = append(s.Measurements, Quadrupole{
				A: i, M: i + a, N: i + 2*a, B: i + 3*a,
			})
		}
	}
	return s, nil
}

// NewDipoleDipole constructs a dipole-dipole scheme over n equally spaced
// surface electrodes. The current dipole (A, B) is a unit pair; the
// potential dipole (M, N) trails it at separations 1..maxSep dipole lengths.
// Returns ErrTooFewElectrodes if n < 4, ErrBadSpacing if spacing ≤ 0,
// ErrBadSeparation if maxSep < 1.
// Complexity: O(n·maxSep) measurements.
func NewDipoleDipole(n int, spacing float64, maxSep int) (*Scheme, error) {
	s, err := lineLayout(n, spacing)
	if err != nil {
		return nil, err
	}
	if maxSep < 1 {
		return nil, ErrBadSeparation
	}
	for a := 0; a+3 < n; a++ {
		b := a + 1
		for sep := 1; sep <= maxSep; sep++ {
			m := b + sep
			nn := m + 1
			if nn >= n {
				break
			}
			s.Measurements = append(s.Measurements, Quadrupole{A: a, B: b, M: m, N: nn})
		}
	}
	return s, nil
}

// lineLayout places n electrodes on the surface at x = i*spacing, z = 0.
func lineLayout(n int, spacing float64) (*Scheme, error) {
	if n < 4 {
		return nil, ErrTooFewElectrodes
	}
	if spacing <= 0 {
		return nil, ErrBadSpacing
	}
	elecs := make([]Electrode, n)
	for i := 0; i < n; i++ {
		elecs[i] = Electrode{X: float64(i) * spacing, Z: 0}
	}
	return &Scheme{Electrodes: elecs}, nil
}

// GeometricFactor returns the half-space geometric factor of q:
//
//	k = 2π / (1/AM − 1/BM − 1/AN + 1/BN)
//
// where AM is the distance between electrodes A and M, and so on.
// Returns ErrElectrodeIndex if q references an electrode outside the
// scheme, ErrDegenerate if the factor is not finite (coincident
// electrodes or a vanishing denominator).
// Complexity: O(1).
func (s *Scheme) GeometricFactor(q Quadrupole) (float64, error) {
	for _, idx := range [4]int{q.A, q.B, q.M, q.N} {
		if idx < 0 || idx >= len(s.Electrodes) {
			return 0, fmt.Errorf("electrode %d of %d: %w", idx, len(s.Electrodes), ErrElectrodeIndex)
		}
	}
	am := s.distance(q.A, q.M)
	bm := s.distance(q.B, q.M)
	an := s.distance(q.A, q.N)
	bn := s.distance(q.B, q.N)
	if am == 0 || bm == 0 || an == 0 || bn == 0 {
		return 0, ErrDegenerate
	}
	den := 1/am - 1/bm - 1/an + 1/bn
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0, ErrDegenerate
	}
	k := 2 * math.Pi / den
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return 0, ErrDegenerate
	}
	return k, nil
}

// distance returns the Euclidean distance between electrodes i and j.
func (s *Scheme) distance(i, j int) float64 {
	dx := s.Electrodes[i].X - s.Electrodes[j].X
	dz := s.Electrodes[i].Z - s.Electrodes[j].Z
	return math.Hypot(dx, dz)
}

// Validate checks every measurement of the scheme: indices in range and a
// finite geometric factor. It returns the first violation found.
// Complexity: O(len(Measurements)).
func (s *Scheme) Validate() error {
	if len(s.Electrodes) < 4 {
		return ErrTooFewElectrodes
	}
	for i, q := range s.Measurements {
		if _, err := s.GeometricFactor(q); err != nil {
			return fmt.Errorf("measurement %d: %w", i, err)
		}
	}
	return nil
}
