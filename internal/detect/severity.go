package detect

import "deconflict/internal/airspace"

// Severity labels how badly a conflict violates the safety buffer. It only
// affects reporting and visualization; the clear/unsafe verdict ignores it.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Classify buckets a conflict by the violated fraction of the buffer:
// below 20% is low, below 50% medium, below 80% high, anything above
// critical.
func Classify(c airspace.Conflict) Severity {
	violation := c.SafetyBuffer - c.MinDistance
	percent := violation / c.SafetyBuffer * 100

	switch {
	case percent < 20:
		return SeverityLow
	case percent < 50:
		return SeverityMedium
	case percent < 80:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}
