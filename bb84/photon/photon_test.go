package photon

import (
	"math/rand"
	"testing"
)

func backends(r *rand.Rand) map[string]Backend {
	return map[string]Backend{
		"polarization": NewPolarization(r),
		"wave":         NewWave(r),
	}
}

func TestMatchedBasisIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for name, b := range backends(r) {
		t.Run(name, func(t *testing.T) {
			for bit := 0; bit <= 1; bit++ {
				for _, basis := range []Basis{Rectilinear, Diagonal} {
					st, err := b.Prepare(bit, basis)
					if err != nil {
						t.Fatalf("Prepare(%d, %s): %v", bit, basis, err)
					}
					got, err := st.Measure(basis)
					if err != nil {
						t.Fatalf("Measure(%s): %v", basis, err)
					}
					if got != bit {
						t.Errorf("Measure(%s) == %d after Prepare(%d, %s), want %d", basis, got, bit, basis, bit)
					}
				}
			}
		})
	}
}

func TestCollapseIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for name, b := range backends(r) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				st, err := b.Prepare(i%2, Rectilinear)
				if err != nil {
					t.Fatalf("Prepare: %v", err)
				}
				first, err := st.Measure(Diagonal)
				if err != nil {
					t.Fatalf("Measure: %v", err)
				}
				for j := 0; j < 3; j++ {
					got, err := st.Measure(Diagonal)
					if err != nil {
						t.Fatalf("repeat Measure: %v", err)
					}
					if got != first {
						t.Fatalf("repeated measurement changed outcome: %d then %d", first, got)
					}
				}
			}
		})
	}
}

func TestMismatchedBasisIsUniform(t *testing.T) {
	const trials = 10000
	r := rand.New(rand.NewSource(13))
	for name, b := range backends(r) {
		t.Run(name, func(t *testing.T) {
			ones := 0
			for i := 0; i < trials; i++ {
				st, err := b.Prepare(0, Rectilinear)
				if err != nil {
					t.Fatalf("Prepare: %v", err)
				}
				bit, err := st.Measure(Diagonal)
				if err != nil {
					t.Fatalf("Measure: %v", err)
				}
				ones += bit
			}
			frac := float64(ones) / trials
			if frac < 0.45 || frac > 0.55 {
				t.Errorf("mismatched-basis ones fraction == %v, want ~0.5", frac)
			}
		})
	}
}

// A wrong-basis measurement must disturb the photon: re-measuring in the
// original encoding basis is a coin flip again, not a guaranteed recovery
// of the original bit.
func TestMismatchedMeasurementDisturbs(t *testing.T) {
	const trials = 10000
	r := rand.New(rand.NewSource(17))
	for name, b := range backends(r) {
		t.Run(name, func(t *testing.T) {
			recovered := 0
			for i := 0; i < trials; i++ {
				st, err := b.Prepare(1, Rectilinear)
				if err != nil {
					t.Fatalf("Prepare: %v", err)
				}
				if _, err := st.Measure(Diagonal); err != nil {
					t.Fatalf("Measure: %v", err)
				}
				bit, err := st.Measure(Rectilinear)
				if err != nil {
					t.Fatalf("Measure: %v", err)
				}
				if bit == 1 {
					recovered++
				}
			}
			frac := float64(recovered) / trials
			if frac < 0.45 || frac > 0.55 {
				t.Errorf("recovered original bit with frequency %v, want ~0.5", frac)
			}
		})
	}
}

func TestPrepareRejectsBadPulses(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	for name, b := range backends(r) {
		t.Run(name, func(t *testing.T) {
			if _, err := b.Prepare(2, Rectilinear); err == nil {
				t.Error("Prepare accepted bit 2")
			}
			if _, err := b.Prepare(-1, Diagonal); err == nil {
				t.Error("Prepare accepted bit -1")
			}
			if _, err := b.Prepare(0, Basis(7)); err == nil {
				t.Error("Prepare accepted an unknown basis")
			}
		})
	}
}

func TestMeasureRejectsBadBasis(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for name, b := range backends(r) {
		t.Run(name, func(t *testing.T) {
			st, err := b.Prepare(0, Rectilinear)
			if err != nil {
				t.Fatalf("Prepare: %v", err)
			}
			if _, err := st.Measure(Basis(7)); err == nil {
				t.Error("Measure accepted an unknown basis")
			}
		})
	}
}
