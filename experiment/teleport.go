package experiment

import (
	"errors"
	"math/rand"

	"github.com/Abrar-Muhammad/quantum-computing-project/quantum"
)

// Teleportation teleports the state (|0>-|1>)/sqrt(2) from qubit 0 to
// qubit 2 over a shared Bell pair, applying the classically controlled X
// and Z corrections from the mid-circuit Bell measurement. Each shot then
// verifies the transfer by rotating Bob's qubit back to the computational
// basis and measuring: the returned two-bin histogram records all shots in
// bin 1 exactly when teleportation succeeded.
func Teleportation(shots int, r *rand.Rand) (quantum.Counts, error) {
	if shots <= 0 {
		return nil, errors.New("shots must be positive")
	}
	if r == nil {
		return nil, errors.New("a rand source is required")
	}
	counts := make(quantum.Counts, 2)
	for i := 0; i < shots; i++ {
		s, err := quantum.NewStateVector(3)
		if err != nil {
			return nil, err
		}

		// Alice's payload: |-> on qubit 0.
		s.ApplyX(0)
		s.ApplyH(0)

		// Shared Bell pair on qubits 1 and 2.
		s.ApplyH(1)
		s.ApplyCNOT(1, 2)

		// Bell measurement of the payload against Alice's half.
		s.ApplyCNOT(0, 1)
		s.ApplyH(0)
		m0 := s.MeasureQubit(0, r)
		m1 := s.MeasureQubit(1, r)

		// Bob's corrections.
		if m1 == 1 {
			s.ApplyX(2)
		}
		if m0 == 1 {
			s.ApplyZ(2)
		}

		// H maps |-> to |1>, so a correct transfer always measures 1.
		s.ApplyH(2)
		counts[s.MeasureQubit(2, r)]++
	}
	return counts, nil
}

func decoherenceDefault(shots int, r *rand.Rand) (quantum.Counts, error) {
	return DephasedBell(0.5, shots, r)
}

// DephasedBell prepares a Bell pair, applies a phase flip to one half with
// probability p, and measures both qubits in the diagonal basis. A clean
// pair yields only the agreeing outcomes 00 and 11; each flip swaps the
// pair into the anti-correlated branch, so the disagreeing share of the
// histogram tracks p directly.
func DephasedBell(p float64, shots int, r *rand.Rand) (quantum.Counts, error) {
	if p < 0 || p > 1 {
		return nil, errors.New("flip probability must be in [0, 1]")
	}
	if shots <= 0 {
		return nil, errors.New("shots must be positive")
	}
	if r == nil {
		return nil, errors.New("a rand source is required")
	}
	counts := make(quantum.Counts, 4)
	for i := 0; i < shots; i++ {
		s, err := quantum.NewStateVector(2)
		if err != nil {
			return nil, err
		}
		s.ApplyH(0)
		s.ApplyCNOT(0, 1)
		if r.Float64() < p {
			s.ApplyZ(0)
		}
		s.ApplyH(0)
		s.ApplyH(1)
		counts[s.Measure(r)]++
	}
	return counts, nil
}
