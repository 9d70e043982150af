package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Abrar-Muhammad/quantum-computing-project/experiment"
)

func newExperimentCmd() *cobra.Command {
	var (
		shots int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:       "experiment <name>",
		Short:     "Run a quantum circuit experiment",
		Long:      "Runs one of the bundled circuit experiments and prints its outcome\nhistogram. Available experiments: " + strings.Join(experiment.Names(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: experiment.Names(),
		Example: `  qsim experiment bell
  qsim experiment grover --shots 100
  qsim experiment decoherence --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := experiment.Named(args[0])
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			counts, err := run(shots, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d shots (seed %d)\n", args[0], shots, seed)
			fmt.Fprint(out, counts.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&shots, "shots", 1000, "measurement shots")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")

	return cmd
}
