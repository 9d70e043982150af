package bb84

import (
	"math/rand"

	"github.com/Abrar-Muhammad/quantum-computing-project/bb84/bitstring"
	"github.com/Abrar-Muhammad/quantum-computing-project/bb84/photon"
)

// A session holds the state for a single run. Trials are independent; the
// only shared state is the randomness source and the append-only records
// below.
type session struct {
	trials  int
	eve     bool
	rand    *rand.Rand
	backend photon.Backend
	maxQBER float64

	// Per-trial draw overrides for tests. Nil means draw from rand.
	senderBitFunc     func(i int) int
	senderBasisFunc   func(i int) photon.Basis
	eveBasisFunc      func(i int) photon.Basis
	receiverBasisFunc func(i int) photon.Basis
}

func (s *session) run() (*SessionResult, error) {
	var senderBits, senderBases, receiverBits, receiverBases bitstring.Dense
	var hist [2]int

	for i := 0; i < s.trials; i++ {
		bit := s.drawBit(s.senderBitFunc, i)
		basis := s.drawBasis(s.senderBasisFunc, i)
		st, err := s.backend.Prepare(bit, basis)
		if err != nil {
			return nil, &BackendError{Trial: i, Op: "preparing photon", Err: err}
		}

		if s.eve {
			st, err = s.intercept(st, i)
			if err != nil {
				return nil, err
			}
		}

		rBasis := s.drawBasis(s.receiverBasisFunc, i)
		rBit, err := st.Measure(rBasis)
		if err != nil {
			return nil, &BackendError{Trial: i, Op: "measuring photon", Err: err}
		}
		hist[rBit]++

		senderBits.AppendBit(bit == 1)
		senderBases.AppendBit(basis == photon.Diagonal)
		receiverBits.AppendBit(rBit == 1)
		receiverBases.AppendBit(rBasis == photon.Diagonal)
	}

	res := sift(senderBits, senderBases, receiverBits, receiverBases)
	res.Trials = s.trials
	res.Histogram = hist
	res.KeyAgreementRate = float64(res.SiftedKeyLength) / float64(s.trials)
	res.Compromised = res.QBER > s.maxQBER
	if !res.Compromised {
		secret, err := distill(res.SenderKey, res.QBER, s.rand)
		if err != nil {
			return nil, err
		}
		res.SecretKey = secret
	}
	return res, nil
}

// intercept performs an intercept-resend attack on a photon in transit:
// measure in a randomly chosen basis, then forward a freshly prepared
// photon carrying the measured bit in that basis.
func (s *session) intercept(st photon.State, i int) (photon.State, error) {
	basis := s.drawBasis(s.eveBasisFunc, i)
	bit, err := st.Measure(basis)
	if err != nil {
		return nil, &BackendError{Trial: i, Op: "eavesdropper measuring photon", Err: err}
	}
	resent, err := s.backend.Prepare(bit, basis)
	if err != nil {
		return nil, &BackendError{Trial: i, Op: "eavesdropper re-preparing photon", Err: err}
	}
	return resent, nil
}

func (s *session) drawBit(override func(int) int, i int) int {
	if override != nil {
		return override(i)
	}
	return s.rand.Intn(2)
}

func (s *session) drawBasis(override func(int) photon.Basis, i int) photon.Basis {
	if override != nil {
		return override(i)
	}
	return photon.Basis(s.rand.Intn(2))
}

// sift performs the classical public-comparison step: only basis equality
// is compared, and trials with mismatched bases are discarded wholesale.
func sift(senderBits, senderBases, receiverBits, receiverBases bitstring.Dense) *SessionResult {
	mask := bitstring.XNor(senderBases, receiverBases)
	senderKey := bitstring.Select(senderBits, mask)
	receiverKey := bitstring.Select(receiverBits, mask)
	errs := bitstring.CountOnes(bitstring.XOr(senderKey, receiverKey))
	qber := 0.0
	if senderKey.Size() > 0 {
		qber = float64(errs) / float64(senderKey.Size())
	}
	return &SessionResult{
		SenderKey:       senderKey,
		ReceiverKey:     receiverKey,
		SiftedKeyLength: senderKey.Size(),
		ErrorCount:      errs,
		QBER:            qber,
	}
}
