package bb84

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// A BatchResult aggregates statistics over repeated independent sessions
// run with a shared randomness source.
type BatchResult struct {
	Sessions []*SessionResult

	MeanQBER   float64
	StdDevQBER float64

	MeanAgreement   float64
	StdDevAgreement float64
}

// RunBatch runs the configured session count times, accumulating each
// result and the mean and sample standard deviation of the error and
// key-agreement rates. Sessions share opts.Rand, so a seeded batch is
// reproducible as a whole.
func RunBatch(opts SessionOpts, sessions int) (*BatchResult, error) {
	if sessions <= 0 {
		return nil, fmt.Errorf("%w: session count must be positive, got %d", ErrInvalidConfig, sessions)
	}
	br := &BatchResult{Sessions: make([]*SessionResult, 0, sessions)}
	qbers := make([]float64, 0, sessions)
	agreements := make([]float64, 0, sessions)
	for i := 0; i < sessions; i++ {
		res, err := Run(opts)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		br.Sessions = append(br.Sessions, res)
		qbers = append(qbers, res.QBER)
		agreements = append(agreements, res.KeyAgreementRate)
	}
	br.MeanQBER = stat.Mean(qbers, nil)
	br.MeanAgreement = stat.Mean(agreements, nil)
	if sessions > 1 {
		br.StdDevQBER = stat.StdDev(qbers, nil)
		br.StdDevAgreement = stat.StdDev(agreements, nil)
	}
	return br, nil
}
