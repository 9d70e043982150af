package photon

import (
	"math/rand"

	"github.com/Abrar-Muhammad/quantum-computing-project/quantum"
)

// A Wave is a Backend that models each photon as a full two-amplitude state
// vector, rotating between bases with a Hadamard transform before each
// measurement. It is observationally equivalent to Polarization but keeps
// the light-wave picture explicit.
type Wave struct {
	rand *rand.Rand
}

// NewWave returns a Wave backend drawing collapse outcomes from r.
func NewWave(r *rand.Rand) *Wave {
	return &Wave{rand: r}
}

// Prepare implements the Backend interface. Basis Rectilinear maps bit 0/1
// to the computational states; basis Diagonal maps them to the equal
// superpositions differing by relative sign.
func (w *Wave) Prepare(bit int, b Basis) (State, error) {
	if err := checkPulse(bit, b); err != nil {
		return nil, err
	}
	sv, err := quantum.NewStateVector(1)
	if err != nil {
		return nil, err
	}
	if bit == 1 {
		sv.ApplyX(0)
	}
	if b == Diagonal {
		sv.ApplyH(0)
	}
	return &wave{state: sv, rand: w.rand}, nil
}

type wave struct {
	state *quantum.StateVector
	rand  *rand.Rand
}

// Measure implements the State interface. A diagonal measurement rotates
// into the computational frame, measures, and rotates back, so the
// post-measurement state is the measured basis state in the measured
// basis. Exactly one random draw is consumed per measurement, matched
// basis or not.
func (s *wave) Measure(b Basis) (int, error) {
	if err := checkBasis(b); err != nil {
		return 0, err
	}
	if b == Diagonal {
		s.state.ApplyH(0)
	}
	bit := s.state.MeasureQubit(0, s.rand)
	if b == Diagonal {
		s.state.ApplyH(0)
	}
	return bit, nil
}
