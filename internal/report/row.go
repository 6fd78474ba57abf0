// Conflict rows with greptime tags
package report

import (
	"os"
	"time"

	"deconflict/internal/detect"
)

// ConflictRow represents one detected conflict as a flat record for
// GreptimeDB or JSONL export.
type ConflictRow struct {
	RunID         string    `json:"run_id"`         // TAG
	PrimaryID     string    `json:"primary_id"`     // TAG
	ConflictingID string    `json:"conflicting_id"` // TAG
	X             float64   `json:"x"`              // FIELD
	Y             float64   `json:"y"`              // FIELD
	Alt           float64   `json:"alt"`            // FIELD, zero in 2D mode
	ConflictTime  float64   `json:"conflict_time"`  // FIELD, mission seconds
	MinDistance   float64   `json:"min_distance"`   // FIELD
	SafetyBuffer  float64   `json:"safety_buffer"`  // FIELD
	Severity      string    `json:"severity"`       // FIELD
	Timestamp     time.Time `json:"ts"`             // TIME INDEX
}

// ConflictTableName holds the table name used when writing to GreptimeDB.
// It defaults to "mission_conflicts" but can be overridden via the
// CONFLICT_TABLE environment variable.
var ConflictTableName = func() string {
	if env := os.Getenv("CONFLICT_TABLE"); env != "" {
		return env
	}
	return "mission_conflicts"
}()

func (ConflictRow) TableName() string {
	return ConflictTableName
}

// FromResult flattens a check result into rows stamped with the run ID and
// wall-clock time of the check.
func FromResult(runID string, res detect.Result, at time.Time) []ConflictRow {
	rows := make([]ConflictRow, 0, len(res.Conflicts))
	for _, c := range res.Conflicts {
		row := ConflictRow{
			RunID:         runID,
			PrimaryID:     c.PrimaryID,
			ConflictingID: c.ConflictingID,
			ConflictTime:  c.Time,
			MinDistance:   c.MinDistance,
			SafetyBuffer:  c.SafetyBuffer,
			Severity:      string(detect.Classify(c)),
			Timestamp:     at,
		}
		if len(c.Location) > 0 {
			row.X = c.Location[0]
		}
		if len(c.Location) > 1 {
			row.Y = c.Location[1]
		}
		if len(c.Location) > 2 {
			row.Alt = c.Location[2]
		}
		rows = append(rows, row)
	}
	return rows
}
