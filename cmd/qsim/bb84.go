package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Abrar-Muhammad/quantum-computing-project/bb84"
	"github.com/Abrar-Muhammad/quantum-computing-project/bb84/photon"
	"github.com/Abrar-Muhammad/quantum-computing-project/config"
)

func newBB84Cmd() *cobra.Command {
	var (
		cfgFile  string
		trials   int
		eve      bool
		seed     int64
		sessions int
		backend  string
		maxQBER  float64
	)

	cmd := &cobra.Command{
		Use:   "bb84",
		Short: "Simulate a BB84 key exchange",
		Example: `  qsim bb84 --trials 1000
  qsim bb84 --trials 5000 --eve --seed 42
  qsim bb84 --config qsim.yaml --sessions 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgFile != "" {
				var err error
				if cfg, err = config.Load(cfgFile); err != nil {
					return err
				}
			}

			// Flags beat the config file.
			flags := cmd.Flags()
			if flags.Changed("trials") {
				cfg.Trials = trials
			}
			if flags.Changed("eve") {
				cfg.Eavesdropper = eve
			}
			if flags.Changed("seed") {
				cfg.Seed = &seed
			}
			if flags.Changed("sessions") {
				cfg.Sessions = sessions
			}
			if flags.Changed("backend") {
				cfg.Backend = backend
			}
			if flags.Changed("max-qber") {
				cfg.MaxQBER = maxQBER
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runBB84(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "YAML config file")
	cmd.Flags().IntVarP(&trials, "trials", "n", 100, "photon pulses per session")
	cmd.Flags().BoolVar(&eve, "eve", false, "add an intercept-resend eavesdropper")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().IntVar(&sessions, "sessions", 1, "independent sessions to aggregate")
	cmd.Flags().StringVar(&backend, "backend", "polarization", "photon model: polarization or wave")
	cmd.Flags().Float64Var(&maxQBER, "max-qber", bb84.DefaultMaxQBER, "error rate above which the key is discarded")

	return cmd
}

func runBB84(cmd *cobra.Command, cfg config.Config) error {
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	r := rand.New(rand.NewSource(seed))

	opts := bb84.SessionOpts{
		Trials:       cfg.Trials,
		Eavesdropper: cfg.Eavesdropper,
		Rand:         r,
		MaxQBER:      cfg.MaxQBER,
	}
	if cfg.Backend == "wave" {
		opts.Backend = photon.NewWave(r)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed: %d\n", seed)

	if cfg.Sessions > 1 {
		batch, err := bb84.RunBatch(opts, cfg.Sessions)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "sessions: %d x %d trials (backend=%s, eavesdropper=%t)\n",
			cfg.Sessions, cfg.Trials, cfg.Backend, cfg.Eavesdropper)
		fmt.Fprintf(out, "qber:      mean %.4f, stddev %.4f\n", batch.MeanQBER, batch.StdDevQBER)
		fmt.Fprintf(out, "agreement: mean %.4f, stddev %.4f\n", batch.MeanAgreement, batch.StdDevAgreement)
		compromised := 0
		for _, res := range batch.Sessions {
			if res.Compromised {
				compromised++
			}
		}
		fmt.Fprintf(out, "compromised: %d of %d sessions\n", compromised, cfg.Sessions)
		return nil
	}

	res, err := bb84.Run(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "trials: %d (backend=%s, eavesdropper=%t)\n",
		res.Trials, cfg.Backend, cfg.Eavesdropper)
	fmt.Fprintf(out, "measured bits: %d zeros, %d ones\n", res.Histogram[0], res.Histogram[1])
	fmt.Fprintf(out, "sifted key: %d bits (agreement rate %.4f)\n",
		res.SiftedKeyLength, res.KeyAgreementRate)
	fmt.Fprintf(out, "errors: %d (qber %.4f)\n", res.ErrorCount, res.QBER)
	if res.Compromised {
		fmt.Fprintf(out, "channel compromised (qber above %.4f), key discarded\n", cfg.MaxQBER)
		return nil
	}
	fmt.Fprintf(out, "secret key: %d bits\n", res.SecretKey.Size())
	if res.SiftedKeyLength > 0 && res.SiftedKeyLength <= 64 {
		fmt.Fprintf(out, "sender key:   %s\n", res.SenderKey.String())
		fmt.Fprintf(out, "receiver key: %s\n", res.ReceiverKey.String())
	}
	return nil
}
