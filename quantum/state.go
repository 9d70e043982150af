// Package quantum implements a small state-vector simulator covering the
// handful of gates the polarization write-ups exercise: enough to prepare
// superpositions, entangle two or three qubits, and take projective
// measurements with collapse.
package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
)

// MaxQubits bounds state-vector size. The simulated circuits never exceed
// three qubits, so the cap is generous.
const MaxQubits = 12

// A StateVector holds the 2^n complex amplitudes of an n-qubit register.
// Basis state i assigns bit (i>>q)&1 to qubit q.
type StateVector struct {
	amps   []complex128
	qubits int
}

// NewStateVector returns an n-qubit register initialized to the all-zeros
// basis state.
func NewStateVector(n int) (*StateVector, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("qubit count must be in [1, %d], got %d", MaxQubits, n)
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &StateVector{amps: amps, qubits: n}, nil
}

// Qubits returns the number of qubits in the register.
func (s *StateVector) Qubits() int {
	return s.qubits
}

// Probability returns the probability of observing basis state i under a
// full measurement.
func (s *StateVector) Probability(i int) float64 {
	if i < 0 || i >= len(s.amps) {
		return 0
	}
	a := s.amps[i]
	return real(a * cmplx.Conj(a))
}

// Clone returns a deep copy of the register.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &StateVector{amps: amps, qubits: s.qubits}
}

// ApplyH applies a Hadamard gate to qubit q.
func (s *StateVector) ApplyH(q int) {
	h := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = h*(s.amps[i]+s.amps[j]), h*(s.amps[i]-s.amps[j])
		}
	}
}

// ApplyX applies a bit-flip (NOT) gate to qubit q.
func (s *StateVector) ApplyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// ApplyZ applies a phase-flip gate to qubit q.
func (s *StateVector) ApplyZ(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// ApplyCNOT applies a controlled-NOT with the given control and target
// qubits.
func (s *StateVector) ApplyCNOT(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// ApplyCZ applies a controlled-Z with the given control and target qubits.
func (s *StateVector) ApplyCZ(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// MeasureQubit projectively measures qubit q, collapsing the register and
// renormalizing. Exactly one draw is consumed from r.
func (s *StateVector) MeasureQubit(q int, r *rand.Rand) int {
	bit := 1 << q
	p1 := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p1 += real(a * cmplx.Conj(a))
		}
	}
	outcome := 0
	if r.Float64() < p1 {
		outcome = 1
	}
	keep := 0
	if outcome == 1 {
		keep = bit
	}
	p := p1
	if outcome == 0 {
		p = 1 - p1
	}
	norm := complex(math.Sqrt(p), 0)
	for i := range s.amps {
		if i&bit == keep && norm != 0 {
			s.amps[i] /= norm
		} else {
			s.amps[i] = 0
		}
	}
	return outcome
}

// Measure performs a full computational-basis measurement, collapsing the
// register into the observed basis state. Exactly one draw is consumed
// from r.
func (s *StateVector) Measure(r *rand.Rand) int {
	u := r.Float64()
	acc := 0.0
	outcome := len(s.amps) - 1
	for i, a := range s.amps {
		acc += real(a * cmplx.Conj(a))
		if u < acc {
			outcome = i
			break
		}
	}
	for i := range s.amps {
		s.amps[i] = 0
	}
	s.amps[outcome] = 1
	return outcome
}
