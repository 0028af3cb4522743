package survey

import (
	"errors"
)

// Sentinel errors for survey operations.
var (
	// ErrTooFewElectrodes indicates fewer electrodes than a four-point measurement needs.
	ErrTooFewElectrodes = errors.New("survey: at least four electrodes are required")
	// ErrBadSpacing indicates a non-positive electrode spacing.
	ErrBadSpacing = errors.New("survey: electrode spacing must be positive")
	// ErrBadSeparation indicates a non-positive dipole separation limit.
	ErrBadSeparation = errors.New("survey: maximum dipole separation must be positive")
	// ErrElectrodeIndex indicates a quadrupole referencing an electrode out of range.
	ErrElectrodeIndex = errors.New("survey: electrode index out of range")
	// ErrDegenerate indicates a quadrupole whose geometric factor is not finite.
	ErrDegenerate = errors.New("survey: degenerate electrode configuration")
)

// Electrode is a surface electrode position. X runs along the profile,
// Z is elevation (0 at the surface for all generated layouts).
type Electrode struct {
	X, Z float64
}

// Quadrupole is one four-point measurement: current electrodes A and B,
// potential electrodes M and N, all indices into a Scheme's electrode list.
type Quadrupole struct {
	A, B, M, N int
}

// Scheme is a measurement scheme: an electrode layout plus the ordered
// list of quadrupoles to acquire. It is immutable once built.
type Scheme struct {
	Electrodes   []Electrode
	Measurements []Quadrupole
}

// Len returns the number of measurements in the scheme.
// Complexity: O(1).
func (s *Scheme) Len() int { return len(s.Measurements) }
