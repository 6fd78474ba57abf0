package report

import (
	"testing"
	"time"

	"deconflict/internal/airspace"
	"deconflict/internal/detect"
)

func sampleResult() detect.Result {
	return detect.Result{
		Conflicts: []airspace.Conflict{
			{
				PrimaryID:     "ALPHA",
				ConflictingID: "BRAVO",
				Location:      []float64{50, -1.25},
				Time:          20,
				MinDistance:   1.25,
				SafetyBuffer:  10,
			},
			{
				PrimaryID:     "ALPHA",
				ConflictingID: "CHARLIE",
				Location:      []float64{80, 2, 120},
				Time:          35,
				MinDistance:   9.5,
				SafetyBuffer:  10,
			},
		},
	}
}

func TestFromResult(t *testing.T) {
	at := time.Unix(0, 0).UTC()
	rows := FromResult("run-1", sampleResult(), at)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first.RunID != "run-1" || first.PrimaryID != "ALPHA" || first.ConflictingID != "BRAVO" {
		t.Errorf("row IDs wrong: %+v", first)
	}
	if first.X != 50 || first.Y != -1.25 || first.Alt != 0 {
		t.Errorf("2D location flattened wrong: %+v", first)
	}
	if first.Severity != string(detect.SeverityCritical) {
		t.Errorf("severity = %s, want critical", first.Severity)
	}
	if !first.Timestamp.Equal(at) {
		t.Errorf("timestamp = %v", first.Timestamp)
	}

	second := rows[1]
	if second.Alt != 120 {
		t.Errorf("3D altitude lost: %+v", second)
	}
	if second.Severity != string(detect.SeverityLow) {
		t.Errorf("severity = %s, want low", second.Severity)
	}
}

func TestFromResultClear(t *testing.T) {
	rows := FromResult("run-2", detect.Result{Clear: true}, time.Now())
	if len(rows) != 0 {
		t.Errorf("clear result produced %d rows", len(rows))
	}
}
