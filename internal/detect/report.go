package detect

import (
	"fmt"
	"strings"
)

// FormatReport renders a check result as a human-readable report. Every
// conflict field is surfaced, with a severity label per conflict.
func FormatReport(res Result) string {
	if res.Clear {
		return "Mission is CLEAR - no conflicts detected.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CONFLICTS DETECTED: %d conflict(s) found\n\n", len(res.Conflicts))

	for i, c := range res.Conflicts {
		coords := make([]string, len(c.Location))
		for j, v := range c.Location {
			coords[j] = fmt.Sprintf("%.2f", v)
		}
		fmt.Fprintf(&b, "Conflict #%d [%s]:\n", i+1, Classify(c))
		fmt.Fprintf(&b, "  Primary Mission:     %s\n", c.PrimaryID)
		fmt.Fprintf(&b, "  Conflicting Mission: %s\n", c.ConflictingID)
		fmt.Fprintf(&b, "  Time:                %.2fs\n", c.Time)
		fmt.Fprintf(&b, "  Location:            (%s)\n", strings.Join(coords, ", "))
		fmt.Fprintf(&b, "  Distance:            %.2fm (< %.2fm buffer)\n", c.MinDistance, c.SafetyBuffer)
		fmt.Fprintf(&b, "  Violation:           %.2fm\n\n", c.SafetyBuffer-c.MinDistance)
	}
	return b.String()
}
