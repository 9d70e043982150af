// Package experiment reproduces the simulated circuits from the photon
// polarization write-ups — superposition, entanglement, GHZ states,
// teleportation, Grover search and decoherence — as measurement-count
// experiments. Rendering the counts is left to the caller.
package experiment

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Abrar-Muhammad/quantum-computing-project/quantum"
)

// A Runner executes one named experiment for the given number of shots and
// returns its outcome histogram.
type Runner func(shots int, r *rand.Rand) (quantum.Counts, error)

var byName = map[string]Runner{
	"superposition": Superposition,
	"bell":          BellPair,
	"ghz":           GHZ,
	"teleport":      Teleportation,
	"grover":        groverDefault,
	"decoherence":   decoherenceDefault,
}

// Named returns the Runner registered under name.
func Named(name string) (Runner, error) {
	run, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown experiment %q (have %v)", name, Names())
	}
	return run, nil
}

// Names lists the registered experiments in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Superposition puts a single qubit through a Hadamard gate and measures:
// a fifty-fifty coin realized as light polarized between the detector
// axes.
func Superposition(shots int, r *rand.Rand) (quantum.Counts, error) {
	c, err := quantum.NewCircuit(1)
	if err != nil {
		return nil, err
	}
	c.H(0)
	return c.Run(shots, r)
}

// BellPair entangles two qubits into the maximally-correlated state: every
// shot measures 00 or 11, never a mixed outcome.
func BellPair(shots int, r *rand.Rand) (quantum.Counts, error) {
	c, err := quantum.NewCircuit(2)
	if err != nil {
		return nil, err
	}
	c.H(0)
	c.CNOT(0, 1)
	return c.Run(shots, r)
}

// GHZ extends the Bell construction to three qubits: all-zeros or all-ones
// on every shot.
func GHZ(shots int, r *rand.Rand) (quantum.Counts, error) {
	c, err := quantum.NewCircuit(3)
	if err != nil {
		return nil, err
	}
	c.H(0)
	c.CNOT(0, 1)
	c.CNOT(1, 2)
	return c.Run(shots, r)
}

func groverDefault(shots int, r *rand.Rand) (quantum.Counts, error) {
	return Grover(0b11, shots, r)
}

// Grover runs one iteration of two-qubit Grover search for the marked
// basis state. With four candidates a single iteration amplifies the
// marked state to certainty, so every shot lands on it.
func Grover(marked int, shots int, r *rand.Rand) (quantum.Counts, error) {
	if marked < 0 || marked > 3 {
		return nil, fmt.Errorf("marked state must be in [0, 3], got %d", marked)
	}
	c, err := quantum.NewCircuit(2)
	if err != nil {
		return nil, err
	}
	c.H(0)
	c.H(1)
	oracle(c, marked)
	// Diffusion: inversion about the mean.
	c.H(0)
	c.H(1)
	oracle(c, 0)
	c.H(0)
	c.H(1)
	return c.Run(shots, r)
}

// oracle appends a phase flip of the given basis state: X-conjugated CZ.
func oracle(c *quantum.Circuit, state int) {
	if state&0b01 == 0 {
		c.X(0)
	}
	if state&0b10 == 0 {
		c.X(1)
	}
	c.CZ(0, 1)
	if state&0b01 == 0 {
		c.X(0)
	}
	if state&0b10 == 0 {
		c.X(1)
	}
}
