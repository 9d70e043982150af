package quantum

import (
	"math/rand"
	"strings"
	"testing"
)

func TestBellCircuitCounts(t *testing.T) {
	c, err := NewCircuit(2)
	if err != nil {
		t.Fatal(err)
	}
	c.H(0)
	c.CNOT(0, 1)
	const shots = 4000
	counts, err := c.Run(shots, rand.New(rand.NewSource(29)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := counts.Total(); got != shots {
		t.Fatalf("Total() == %d, want %d", got, shots)
	}
	if counts[0b01] != 0 || counts[0b10] != 0 {
		t.Errorf("Bell pair produced anti-correlated outcomes: %v", counts)
	}
	frac := float64(counts[0b00]) / shots
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("00 fraction == %v, want ~0.5", frac)
	}
}

func TestRunArgumentChecks(t *testing.T) {
	c, err := NewCircuit(1)
	if err != nil {
		t.Fatal(err)
	}
	c.H(0)
	if _, err := c.Run(0, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Run accepted zero shots")
	}
	if _, err := c.Run(-5, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Run accepted negative shots")
	}
	if _, err := c.Run(10, nil); err == nil {
		t.Error("Run accepted a nil randomness source")
	}
}

func TestGateValidation(t *testing.T) {
	tcs := []struct {
		name  string
		build func(c *Circuit)
	}{
		{"target out of range", func(c *Circuit) { c.H(5) }},
		{"negative target", func(c *Circuit) { c.X(-1) }},
		{"control out of range", func(c *Circuit) { c.CNOT(7, 0) }},
		{"control equals target", func(c *Circuit) { c.CZ(1, 1) }},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCircuit(2)
			if err != nil {
				t.Fatal(err)
			}
			tc.build(c)
			if _, err := c.Run(1, rand.New(rand.NewSource(1))); err == nil {
				t.Error("Run accepted an invalid gate")
			}
		})
	}
}

func TestCountsLabels(t *testing.T) {
	counts := make(Counts, 8)
	counts[0b110] = 3
	if got, want := counts.Label(0b110), "110"; got != want {
		t.Errorf("Label(6) == %q, want %q", got, want)
	}
	if got, want := counts.Label(1), "001"; got != want {
		t.Errorf("Label(1) == %q, want %q", got, want)
	}
	if s := counts.String(); !strings.Contains(s, "110: 3") {
		t.Errorf("String() == %q, want it to mention 110: 3", s)
	}
}

func TestNewCircuitBounds(t *testing.T) {
	if _, err := NewCircuit(0); err == nil {
		t.Error("NewCircuit accepted zero qubits")
	}
	if _, err := NewCircuit(MaxQubits + 1); err == nil {
		t.Error("NewCircuit accepted an oversized register")
	}
}
