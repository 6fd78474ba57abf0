package detect

import (
	"strings"
	"testing"

	"deconflict/internal/airspace"
)

func TestFormatReportClear(t *testing.T) {
	out := FormatReport(Result{Clear: true})
	if !strings.Contains(out, "CLEAR") {
		t.Errorf("clear report missing verdict: %q", out)
	}
}

func TestFormatReportConflicts(t *testing.T) {
	res := Result{
		Conflicts: []airspace.Conflict{{
			PrimaryID:     "ALPHA",
			ConflictingID: "BRAVO",
			Location:      []float64{50.0, -1.25},
			Time:          20.0,
			MinDistance:   1.25,
			SafetyBuffer:  10.0,
		}},
	}
	out := FormatReport(res)

	// Every conflict field must survive formatting.
	for _, want := range []string{
		"1 conflict(s)",
		"ALPHA",
		"BRAVO",
		"20.00s",
		"(50.00, -1.25)",
		"1.25m",
		"10.00m",
		"8.75m", // violation
		"critical",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
