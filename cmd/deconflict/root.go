package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "deconflict",
	Short:         "Drone mission deconfliction toolkit",
	Long:          "deconflict validates planned drone flight paths against scheduled traffic for spatio-temporal conflicts.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(replayCmd)
}
