package bb84

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Abrar-Muhammad/quantum-computing-project/bb84/bitstring"
)

// A toeplitz represents a matrix whose diagonals are all constant,
// operating in F_2. Toeplitz matrices form a universal hash family, which
// is what privacy amplification needs.
type toeplitz struct {
	// The diagonal constants, starting from the bottom left and ending
	// with the top right.
	diags bitstring.Dense

	m int
	n int
}

// Mul computes the matrix-vector product Tv over F_2.
func (t toeplitz) Mul(vec bitstring.Dense) (bitstring.Dense, error) {
	if t.diags.Size() < t.m+t.n-1 {
		return bitstring.Empty(), fmt.Errorf("improper toeplitz construction, has %d diagonals, needs %d", t.diags.Size(), t.m+t.n-1)
	}
	if t.n != vec.Size() {
		return bitstring.Empty(), fmt.Errorf("multiplying %dx%d matrix into %d-dim vector", t.m, t.n, vec.Size())
	}

	r := bitstring.Empty()
	for off := t.m - 1; off >= 0; off-- {
		row, err := bitstring.Slice(t.diags, off, off+t.n)
		if err != nil {
			return bitstring.Empty(), err
		}
		r.AppendBit(bitstring.Parity(bitstring.And(row, vec)))
	}
	return r, nil
}

// distill compresses a sifted key through a random Toeplitz matrix,
// discarding the information an eavesdropper could plausibly have gained
// from a session with the observed error rate. The bound on that leakage
// follows https://link.springer.com/article/10.1007/BF00191318.
func distill(key bitstring.Dense, qber float64, r *rand.Rand) (bitstring.Dense, error) {
	n := key.Size()
	if n == 0 {
		return bitstring.Empty(), nil
	}
	leaked := int(math.Ceil(2 * math.Sqrt2 * qber * float64(n)))
	m := n - leaked - 1
	if m <= 0 {
		return bitstring.Empty(), nil
	}
	diags := make([]byte, bitstring.BytesFor(m+n-1))
	r.Read(diags)
	t := toeplitz{
		diags: bitstring.NewDense(diags, m+n-1),
		m:     m,
		n:     n,
	}
	return t.Mul(key)
}
