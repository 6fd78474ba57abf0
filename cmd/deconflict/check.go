package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"deconflict/internal/admin"
	"deconflict/internal/airspace"
	"deconflict/internal/config"
	"deconflict/internal/detect"
	"deconflict/internal/logging"
	"deconflict/internal/report"
)

var (
	checkMissions  string
	checkConfig    string
	checkSchema    string
	checkBuffer    float64
	checkMode      string
	checkAccuracy  string
	checkSamples   int
	checkLogFile   string
	checkHTML      string
	checkPrintRows bool
	checkTUI       bool
	checkServe     string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a primary mission against scheduled traffic",
	Long:  "check loads a mission set, runs the conflict detector, and reports the verdict with every conflict found.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New()

		cfg, err := loadCheckConfig(cmd)
		if err != nil {
			return err
		}

		set, err := airspace.LoadMissionSet(checkMissions)
		if err != nil {
			return err
		}

		params := cfg.Params()
		start := time.Now()
		res := detect.CheckMission(set.Primary, set.Traffic, params)
		runID := uuid.NewString()
		logger.Info("check complete",
			"run_id", runID,
			"primary", set.Primary.ID,
			"traffic", len(set.Traffic),
			"conflicts", len(res.Conflicts),
			"clear", res.Clear,
			"elapsed", time.Since(start))

		fmt.Print(detect.FormatReport(res))

		writer, cleanup, err := newWriters(checkPrintRows, checkLogFile)
		if err != nil {
			return err
		}
		defer cleanup()
		if writer != nil {
			rows := report.FromResult(runID, res, time.Now().UTC())
			if err := report.WriteAll(writer, rows); err != nil {
				return err
			}
		}

		if checkHTML != "" {
			if err := report.RenderHTML(runID, res, checkHTML); err != nil {
				return err
			}
			logger.Info("wrote HTML report", "path", checkHTML)
		}

		if checkTUI {
			if err := report.RunTUI(res); err != nil {
				return err
			}
		}

		if checkServe != "" {
			srv := admin.NewServer()
			srv.SetResult(runID, res)
			logger.Info("serving check result", "addr", checkServe)
			err := srv.Start(checkServe)
			// The verdict still decides the exit status once the
			// server stops.
			if verr := verdict(set.Primary.ID, res); verr != nil {
				logger.Error("server stopped", "error", err)
				return verr
			}
			return err
		}

		return verdict(set.Primary.ID, res)
	},
}

// verdict maps an unsafe check result to a non-nil error so the process
// exits non-zero whenever conflicts were found.
func verdict(primaryID string, res detect.Result) error {
	if res.Clear {
		return nil
	}
	return fmt.Errorf("mission %s is not clear: %d conflict(s)", primaryID, len(res.Conflicts))
}

// loadCheckConfig resolves the effective configuration: file values first,
// then explicit flag overrides.
func loadCheckConfig(cmd *cobra.Command) (*config.CheckConfig, error) {
	cfg := config.Default()
	if checkConfig != "" {
		loaded, err := config.Load(checkConfig, checkSchema)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("buffer") {
		cfg.SafetyBufferM = checkBuffer
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = checkMode
	}
	if cmd.Flags().Changed("accuracy") {
		cfg.Accuracy = checkAccuracy
	}
	if cmd.Flags().Changed("samples") {
		cfg.TimeSamples = checkSamples
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	checkCmd.Flags().StringVar(&checkMissions, "missions", "missions/crossing.yaml", "Path to mission set YAML")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "Path to check configuration YAML")
	checkCmd.Flags().StringVar(&checkSchema, "schema", "schemas/check.cue", "Path to CUE schema file")
	checkCmd.Flags().Float64Var(&checkBuffer, "buffer", 10, "Safety buffer in meters")
	checkCmd.Flags().StringVar(&checkMode, "mode", "2d", "Check dimensionality (2d or 3d)")
	checkCmd.Flags().StringVar(&checkAccuracy, "accuracy", "standard", "Sampling accuracy preset (standard, high, ultra)")
	checkCmd.Flags().IntVar(&checkSamples, "samples", 0, "Explicit sample count per overlap window (overrides accuracy)")
	checkCmd.Flags().StringVar(&checkLogFile, "log-file", "", "Path to export conflict rows (JSONL)")
	checkCmd.Flags().StringVar(&checkHTML, "html", "", "Path to write an HTML report")
	checkCmd.Flags().BoolVar(&checkPrintRows, "print-rows", false, "Print conflict rows as JSON to STDOUT")
	checkCmd.Flags().BoolVar(&checkTUI, "tui", false, "Open the interactive results viewer")
	checkCmd.Flags().StringVar(&checkServe, "serve", "", "Serve the result over HTTP on this address (e.g. :8080)")
}
