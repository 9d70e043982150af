package bb84

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRunBatchAggregates(t *testing.T) {
	r := rand.New(rand.NewSource(51))
	br, err := RunBatch(SessionOpts{Trials: 4000, Eavesdropper: true, Rand: r}, 10)
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if len(br.Sessions) != 10 {
		t.Fatalf("ran %d sessions, want 10", len(br.Sessions))
	}
	if br.MeanQBER < 0.20 || br.MeanQBER > 0.30 {
		t.Errorf("MeanQBER == %v under intercept-resend, want ~0.25", br.MeanQBER)
	}
	if br.MeanAgreement < 0.45 || br.MeanAgreement > 0.55 {
		t.Errorf("MeanAgreement == %v, want ~0.5", br.MeanAgreement)
	}
	if br.StdDevQBER <= 0 {
		t.Errorf("StdDevQBER == %v, want positive", br.StdDevQBER)
	}
}

func TestRunBatchQuietChannel(t *testing.T) {
	r := rand.New(rand.NewSource(52))
	br, err := RunBatch(SessionOpts{Trials: 500, Rand: r}, 5)
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if br.MeanQBER != 0 || br.StdDevQBER != 0 {
		t.Errorf("quiet channel batch QBER mean/stddev == %v/%v, want 0/0", br.MeanQBER, br.StdDevQBER)
	}
}

func TestRunBatchRejectsBadCounts(t *testing.T) {
	r := rand.New(rand.NewSource(53))
	for _, sessions := range []int{0, -3} {
		if _, err := RunBatch(SessionOpts{Trials: 10, Rand: r}, sessions); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("RunBatch(.., %d) error == %v, want ErrInvalidConfig", sessions, err)
		}
	}
	if _, err := RunBatch(SessionOpts{Trials: 0, Rand: r}, 2); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("RunBatch with bad opts error == %v, want ErrInvalidConfig", err)
	}
}
