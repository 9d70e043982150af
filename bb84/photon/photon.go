// Package photon models single qubits encoded as linearly-polarized
// photons, and the act of preparing and measuring them.
package photon

import "fmt"

// A Basis is one of the two polarization bases used by BB84.
type Basis uint8

const (
	// Rectilinear is the computational (Z) basis: horizontal/vertical.
	Rectilinear Basis = iota
	// Diagonal is the conjugate (X) basis: +45/-45 degrees.
	Diagonal
)

func (b Basis) String() string {
	switch b {
	case Rectilinear:
		return "rectilinear"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("basis(%d)", uint8(b))
}

// A State is an opaque handle to a single photon in transit. Measuring it
// in the basis it was most recently encoded in deterministically yields the
// encoded bit; measuring in the other basis yields 0 or 1 with equal
// probability and collapses the photon into the measured basis. Repeated
// measurements in the same basis return the same value.
type State interface {
	Measure(b Basis) (int, error)
}

// A Backend prepares photon states. Implementations draw any collapse
// randomness from a caller-provided source, so a seeded source makes every
// measurement sequence reproducible.
type Backend interface {
	Prepare(bit int, b Basis) (State, error)
}

func checkPulse(bit int, b Basis) error {
	if bit != 0 && bit != 1 {
		return fmt.Errorf("bit must be 0 or 1, got %d", bit)
	}
	return checkBasis(b)
}

func checkBasis(b Basis) error {
	if b != Rectilinear && b != Diagonal {
		return fmt.Errorf("unknown basis %s", b)
	}
	return nil
}
