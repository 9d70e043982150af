package photon

import "math/rand"

// A Polarization is the default Backend. It tracks only the basis a photon
// was last encoded in and the bit it encodes, which is all that Z/X
// preparation and measurement can ever distinguish.
type Polarization struct {
	rand *rand.Rand
}

// NewPolarization returns a Polarization backend drawing collapse outcomes
// from r.
func NewPolarization(r *rand.Rand) *Polarization {
	return &Polarization{rand: r}
}

// Prepare implements the Backend interface.
func (p *Polarization) Prepare(bit int, b Basis) (State, error) {
	if err := checkPulse(bit, b); err != nil {
		return nil, err
	}
	return &polarized{bit: bit, basis: b, rand: p.rand}, nil
}

type polarized struct {
	bit   int
	basis Basis
	rand  *rand.Rand
}

// Measure implements the State interface. A mismatched-basis measurement
// consumes exactly one random draw and re-collapses the photon into the
// measured basis.
func (s *polarized) Measure(b Basis) (int, error) {
	if err := checkBasis(b); err != nil {
		return 0, err
	}
	if b == s.basis {
		return s.bit, nil
	}
	s.bit = s.rand.Intn(2)
	s.basis = b
	return s.bit, nil
}
