package quantum

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

type gateKind uint8

const (
	gateH gateKind = iota
	gateX
	gateZ
	gateCNOT
	gateCZ
)

func (k gateKind) String() string {
	switch k {
	case gateH:
		return "H"
	case gateX:
		return "X"
	case gateZ:
		return "Z"
	case gateCNOT:
		return "CNOT"
	case gateCZ:
		return "CZ"
	}
	return fmt.Sprintf("gate(%d)", uint8(k))
}

type gate struct {
	kind            gateKind
	target, control int
}

// A Circuit is an ordered list of gates over a fixed-width qubit register.
// Gate arguments are validated when the circuit runs.
type Circuit struct {
	qubits int
	gates  []gate
}

// NewCircuit returns an empty circuit over the given number of qubits.
func NewCircuit(qubits int) (*Circuit, error) {
	if qubits < 1 || qubits > MaxQubits {
		return nil, fmt.Errorf("qubit count must be in [1, %d], got %d", MaxQubits, qubits)
	}
	return &Circuit{qubits: qubits}, nil
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) {
	c.gates = append(c.gates, gate{kind: gateH, target: q, control: -1})
}

// X appends a bit-flip gate on qubit q.
func (c *Circuit) X(q int) {
	c.gates = append(c.gates, gate{kind: gateX, target: q, control: -1})
}

// Z appends a phase-flip gate on qubit q.
func (c *Circuit) Z(q int) {
	c.gates = append(c.gates, gate{kind: gateZ, target: q, control: -1})
}

// CNOT appends a controlled-NOT gate.
func (c *Circuit) CNOT(control, target int) {
	c.gates = append(c.gates, gate{kind: gateCNOT, target: target, control: control})
}

// CZ appends a controlled-Z gate.
func (c *Circuit) CZ(control, target int) {
	c.gates = append(c.gates, gate{kind: gateCZ, target: target, control: control})
}

// Apply plays the circuit's gates, in order, onto s.
func (c *Circuit) Apply(s *StateVector) error {
	for i, g := range c.gates {
		if g.target < 0 || g.target >= c.qubits {
			return fmt.Errorf("gate %d (%s): target %d out of range", i, g.kind, g.target)
		}
		switch g.kind {
		case gateH:
			s.ApplyH(g.target)
		case gateX:
			s.ApplyX(g.target)
		case gateZ:
			s.ApplyZ(g.target)
		case gateCNOT, gateCZ:
			if g.control < 0 || g.control >= c.qubits {
				return fmt.Errorf("gate %d (%s): control %d out of range", i, g.kind, g.control)
			}
			if g.control == g.target {
				return fmt.Errorf("gate %d (%s): control and target are both %d", i, g.kind, g.target)
			}
			if g.kind == gateCNOT {
				s.ApplyCNOT(g.control, g.target)
			} else {
				s.ApplyCZ(g.control, g.target)
			}
		}
	}
	return nil
}

// Counts is an outcome histogram indexed by basis state.
type Counts []int

// Total returns the number of shots recorded in c.
func (c Counts) Total() int {
	sum := 0
	for _, n := range c {
		sum += n
	}
	return sum
}

// Label renders basis state i as a bit string, qubit 0 rightmost.
func (c Counts) Label(i int) string {
	width := 0
	for 1<<width < len(c) {
		width++
	}
	s := strconv.FormatInt(int64(i), 2)
	return strings.Repeat("0", width-len(s)) + s
}

// String lists the non-zero outcomes, one per line.
func (c Counts) String() string {
	var sb strings.Builder
	for i, n := range c {
		if n == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s: %d\n", c.Label(i), n)
	}
	return sb.String()
}

// Run executes the circuit shots times from a fresh all-zeros register,
// fully measuring each run, and returns the outcome histogram.
func (c *Circuit) Run(shots int, r *rand.Rand) (Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}
	if r == nil {
		return nil, fmt.Errorf("must provide a randomness source")
	}
	counts := make(Counts, 1<<c.qubits)
	for shot := 0; shot < shots; shot++ {
		s, err := NewStateVector(c.qubits)
		if err != nil {
			return nil, err
		}
		if err := c.Apply(s); err != nil {
			return nil, err
		}
		counts[s.Measure(r)]++
	}
	return counts, nil
}
