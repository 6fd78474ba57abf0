package main

import (
	"os"

	"deconflict/internal/report"
)

// newWriters sets up conflict row sinks based on flags and env vars. It
// returns the writer and a cleanup function to close any resources. The
// writer is nil when no sink is configured.
func newWriters(printRows bool, logFile string) (report.ConflictWriter, func(), error) {
	cleanup := func() {}

	var writers []report.ConflictWriter
	if printRows {
		writers = append(writers, report.NewStdoutWriter())
	}
	if endpoint := os.Getenv("GREPTIMEDB_ENDPOINT"); endpoint != "" {
		db := os.Getenv("GREPTIMEDB_DATABASE")
		if db == "" {
			db = "public"
		}
		gw, err := report.NewGreptimeDBWriter(endpoint, db, os.Getenv("CONFLICT_TABLE"))
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, gw)
	}
	if logFile != "" {
		fw, err := report.NewFileWriter(logFile)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, fw)
		cleanup = func() { fw.Close() }
	}

	switch len(writers) {
	case 0:
		return nil, cleanup, nil
	case 1:
		return writers[0], cleanup, nil
	default:
		return report.NewMultiWriter(writers...), cleanup, nil
	}
}
