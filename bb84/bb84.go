// Package bb84 simulates BB84 polarization-encoded key exchange sessions:
// a sender and receiver trade single qubits, optionally intercepted by an
// eavesdropper, then sift their records over a public channel and compute
// error statistics. Sessions whose error rate stays below threshold are
// distilled into a shorter secret key by Toeplitz hashing.
package bb84

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Abrar-Muhammad/quantum-computing-project/bb84/bitstring"
	"github.com/Abrar-Muhammad/quantum-computing-project/bb84/photon"
)

var (
	// DefaultMaxQBER is the sifted-key error rate above which a session
	// is flagged as compromised. Intercept-resend attacks sit near 0.25,
	// comfortably above it.
	DefaultMaxQBER = 0.12
)

// ErrInvalidConfig reports session options that can never produce a run.
var ErrInvalidConfig = errors.New("invalid session configuration")

// A BackendError reports a photon backend failure during a session,
// identifying the trial that failed.
type BackendError struct {
	Trial int
	Op    string
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("trial %d: %s: %v", e.Trial, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// A SessionOpts packages together the arguments for a session. Trials and
// Rand have no workable defaults and must be set.
type SessionOpts struct {
	// Trials is the number of qubits exchanged. Must be positive.
	Trials int

	// Eavesdropper inserts an intercept-resend attacker between the
	// sender and receiver.
	Eavesdropper bool

	// Rand provides the randomness for every draw in the session, in a
	// fixed per-trial order: sender bit, sender basis, eavesdropper
	// basis and collapse draw (when present), receiver basis, receiver
	// collapse draw. Seeded runs are exactly reproducible. Must be
	// non-nil.
	Rand *rand.Rand

	// Backend prepares and measures photon states. Defaults to a
	// photon.Polarization sharing Rand.
	Backend photon.Backend

	// MaxQBER is the compromise threshold for the sifted key's error
	// rate. Defaults to DefaultMaxQBER. Must lie in [0, 1).
	MaxQBER float64
}

// A SessionResult reports everything retained from a completed session.
type SessionResult struct {
	// Trials echoes the number of qubits exchanged.
	Trials int

	// SenderKey and ReceiverKey are the sifted keys: the bits from
	// trials where sender and receiver chose the same basis. Always
	// equal length.
	SenderKey   bitstring.Dense
	ReceiverKey bitstring.Dense

	// SiftedKeyLength is the shared length of the sifted keys.
	SiftedKeyLength int

	// ErrorCount is the number of positions where the sifted keys
	// disagree.
	ErrorCount int

	// QBER is ErrorCount / SiftedKeyLength, or 0 for an empty key.
	QBER float64

	// KeyAgreementRate is SiftedKeyLength / Trials.
	KeyAgreementRate float64

	// Histogram counts 0 and 1 receiver measurement outcomes across all
	// trials, sifted and discarded alike.
	Histogram [2]int

	// Compromised is set when QBER exceeds the session's threshold. No
	// secret key is distilled from a compromised session.
	Compromised bool

	// SecretKey is the privacy-amplified key distilled from the sifted
	// sender key, empty if the session was compromised or the sifted
	// key too short to survive compression.
	SecretKey bitstring.Dense
}

// Run simulates one full BB84 session and returns its result. It has no
// side effects; two calls with identically-seeded Rand sources return
// identical results.
func Run(opts SessionOpts) (*SessionResult, error) {
	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	return s.run()
}

func newSession(opts SessionOpts) (*session, error) {
	if opts.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, opts.Trials)
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("%w: must provide Rand", ErrInvalidConfig)
	}
	if opts.MaxQBER < 0 || opts.MaxQBER >= 1 {
		return nil, fmt.Errorf("%w: MaxQBER must lie in [0, 1), got %v", ErrInvalidConfig, opts.MaxQBER)
	}
	maxQBER := opts.MaxQBER
	if maxQBER == 0 {
		maxQBER = DefaultMaxQBER
	}
	backend := opts.Backend
	if backend == nil {
		backend = photon.NewPolarization(opts.Rand)
	}
	return &session{
		trials:  opts.Trials,
		eve:     opts.Eavesdropper,
		rand:    opts.Rand,
		backend: backend,
		maxQBER: maxQBER,
	}, nil
}
