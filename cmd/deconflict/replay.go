package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deconflict/internal/report"
)

var (
	replayInput     string
	replaySpeed     float64
	replayPrintOnly bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a conflict log file",
	Long:  "replay feeds conflict rows from a JSONL log back into GreptimeDB or STDOUT.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}

		writer, cleanup, err := newWriters(replayPrintOnly, "")
		if err != nil {
			return err
		}
		defer cleanup()
		if writer == nil {
			writer = report.NewStdoutWriter()
		}

		return report.ReplayLogFile(replayInput, writer, replaySpeed)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to conflict log file")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVar(&replayPrintOnly, "print-only", false, "Print conflict rows to STDOUT instead of writing to DB")
}
