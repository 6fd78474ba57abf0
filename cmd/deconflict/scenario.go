package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"deconflict/internal/detect"
	"deconflict/internal/logging"
	"deconflict/internal/report"
	"deconflict/internal/scenario"
)

var (
	scenarioFile    string
	scenarioLogFile string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario [name]",
	Short: "List or run built-in deconfliction scenarios",
	Long:  "scenario without arguments lists the built-in scenarios; with a name (or --file) it runs the check and prints the report.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		builtins := scenario.BuiltIn()

		if len(args) == 0 && scenarioFile == "" {
			names := make([]string, 0, len(builtins))
			for name := range builtins {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%-20s %s\n", name, builtins[name].Description)
			}
			return nil
		}

		var sc scenario.Scenario
		if scenarioFile != "" {
			loaded, err := scenario.Load(scenarioFile)
			if err != nil {
				return err
			}
			sc = *loaded
		} else {
			var ok bool
			sc, ok = builtins[args[0]]
			if !ok {
				return fmt.Errorf("unknown scenario %q", args[0])
			}
		}

		logger := logging.New()
		params := detect.Params{
			SafetyBuffer: sc.SafetyBufferM,
			Include3D:    sc.Check3D,
			TimeSamples:  detect.DefaultTimeSamples,
		}
		res := detect.CheckMission(sc.Primary, sc.Traffic, params)
		runID := uuid.NewString()
		logger.Info("scenario complete",
			"run_id", runID, "scenario", sc.Name, "clear", res.Clear, "conflicts", len(res.Conflicts))

		fmt.Print(detect.FormatReport(res))

		if scenarioLogFile != "" {
			fw, err := report.NewFileWriter(scenarioLogFile)
			if err != nil {
				return err
			}
			defer fw.Close()
			if err := fw.WriteConflicts(report.FromResult(runID, res, time.Now().UTC())); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	scenarioCmd.Flags().StringVar(&scenarioFile, "file", "", "Path to a scenario YAML instead of a built-in name")
	scenarioCmd.Flags().StringVar(&scenarioLogFile, "log-file", "", "Path to export conflict rows (JSONL)")
}
