// The qsim command runs BB84 key exchange simulations and the smaller
// quantum circuit experiments from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "qsim",
		Short:         "Quantum key distribution and circuit simulator",
		Long:          "qsim simulates BB84 quantum key distribution over a noiseless channel,\noptionally with an intercept-resend eavesdropper, and runs a set of small\nquantum circuit experiments.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newBB84Cmd())
	rootCmd.AddCommand(newExperimentCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
