// Spatio-temporal conflict detection over sampled segment pairs.
package detect

import (
	"math"

	"deconflict/internal/airspace"
	"deconflict/internal/trajectory"
)

// Accuracy presets map to sample counts per overlap window. Higher presets
// trade compute for precision; sampling is uniform in time with no adaptive
// refinement, so the reported minimum approaches but never guarantees the
// true continuous minimum.
type Accuracy string

const (
	AccuracyStandard Accuracy = "standard"
	AccuracyHigh     Accuracy = "high"
	AccuracyUltra    Accuracy = "ultra"

	// DefaultTimeSamples is the standard-accuracy sample count.
	DefaultTimeSamples = 20
)

// Samples returns the sample count for the preset, defaulting to standard.
func (a Accuracy) Samples() int {
	switch a {
	case AccuracyHigh:
		return 50
	case AccuracyUltra:
		return 100
	default:
		return DefaultTimeSamples
	}
}

// Params carries the tunables of one check. The zero value is not usable:
// callers supply an explicit safety buffer, there are no hidden defaults in
// the engine itself.
type Params struct {
	// SafetyBuffer is the minimum acceptable separation in meters.
	SafetyBuffer float64
	// Include3D selects 3D distance checks; otherwise altitude is ignored.
	Include3D bool
	// TimeSamples is the number of evenly spaced samples per overlap
	// window. Values below 2 fall back to DefaultTimeSamples.
	TimeSamples int
}

func (p Params) samples() int {
	if p.TimeSamples < 2 {
		return DefaultTimeSamples
	}
	return p.TimeSamples
}

// SegmentConflict checks one pair of segments for a safety-buffer
// violation. Disjoint time windows reject immediately with no spatial work.
// Over the shared window it samples both positions at evenly spaced
// timestamps, tracks the minimum separation, and reports a conflict only
// when that minimum falls strictly below the buffer. Both window endpoints
// are always sampled exactly. The reported location is the primary
// segment's position at the closest approach.
func SegmentConflict(primary, other trajectory.Segment, p Params) (airspace.Conflict, bool) {
	overlapStart, overlapEnd, ok := OverlapWindow(primary.TStart, primary.TEnd, other.TStart, other.TEnd)
	if !ok {
		return airspace.Conflict{}, false
	}

	n := p.samples()
	minDistance := math.Inf(1)
	var conflictTime float64
	var conflictLocation []float64

	for i := 0; i < n; i++ {
		t := sampleTime(overlapStart, overlapEnd, i, n)

		// The window lies inside both segments and sampleTime never
		// leaves the window, so interpolation cannot fail here.
		pos1, err := primary.PositionAt(t, p.Include3D)
		if err != nil {
			continue
		}
		pos2, err := other.PositionAt(t, p.Include3D)
		if err != nil {
			continue
		}

		d := distance(pos1, pos2)
		if d < minDistance {
			minDistance = d
			conflictTime = t
			conflictLocation = pos1
		}
	}

	if minDistance >= p.SafetyBuffer {
		return airspace.Conflict{}, false
	}
	return airspace.Conflict{
		PrimaryID:     primary.MissionID,
		ConflictingID: other.MissionID,
		Location:      conflictLocation,
		Time:          conflictTime,
		MinDistance:   minDistance,
		SafetyBuffer:  p.SafetyBuffer,
	}, true
}

// Result is the outcome of a full mission check: the verdict plus every
// conflict found, in deterministic order.
type Result struct {
	Clear     bool                `json:"clear"`
	Conflicts []airspace.Conflict `json:"conflicts"`
}

// CheckMission runs the pairwise detector over the full Cartesian product
// of primary segments and each traffic mission's segments. Conflicts are
// aggregated primary-segment-major, then traffic order, then traffic
// segment order, so output is reproducible for a given input. The verdict
// is clear iff no conflict was found.
func CheckMission(primary airspace.Mission, traffic []airspace.Mission, p Params) Result {
	primarySegments := trajectory.Build(primary)
	trafficSegments := make([][]trajectory.Segment, len(traffic))
	for i, other := range traffic {
		trafficSegments[i] = trajectory.Build(other)
	}

	var conflicts []airspace.Conflict
	for _, pSeg := range primarySegments {
		for _, segs := range trafficSegments {
			for _, oSeg := range segs {
				if c, found := SegmentConflict(pSeg, oSeg, p); found {
					conflicts = append(conflicts, c)
				}
			}
		}
	}

	return Result{Clear: len(conflicts) == 0, Conflicts: conflicts}
}

// sampleTime returns the i-th of n evenly spaced timestamps over
// [start, end]. The first and last samples are the exact endpoints; the
// interior formula can drift past end by an ulp in float64, so interior
// samples are clamped into the window.
func sampleTime(start, end float64, i, n int) float64 {
	switch i {
	case 0:
		return start
	case n - 1:
		return end
	}
	t := start + (end-start)*float64(i)/float64(n-1)
	if t > end {
		return end
	}
	if t < start {
		return start
	}
	return t
}

func distance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
