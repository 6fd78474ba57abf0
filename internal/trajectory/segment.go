// Segment building with length-proportional time allocation.
package trajectory

import (
	"deconflict/internal/airspace"
)

// Segment is one linear leg of a mission between two consecutive waypoints,
// carrying its allocated share of the mission's time window. Segments are
// derived values, rebuilt on every Build call and never shared.
type Segment struct {
	Start     airspace.Waypoint
	End       airspace.Waypoint
	TStart    float64
	TEnd      float64
	MissionID string
}

// Duration returns the segment's allocated time span. Zero-length legs may
// legitimately carry a zero-width span.
func (s Segment) Duration() float64 {
	return s.TEnd - s.TStart
}

// Length returns the Euclidean length of the leg.
func (s Segment) Length(include3D bool) float64 {
	return s.Start.DistanceTo(s.End, include3D)
}

// SegmentTimes computes the boundary timestamps for a mission's legs, one
// per waypoint. Each leg receives a share of the mission window proportional
// to its share of the total path length. When the whole path has zero length
// (all waypoints coincide) time is spread evenly across waypoints instead.
// The final boundary is forced to exactly TEnd to eliminate float drift.
func SegmentTimes(m airspace.Mission) []float64 {
	n := len(m.Waypoints)
	include3D := m.Is3D()

	lengths := make([]float64, n-1)
	total := 0.0
	for i := 0; i < n-1; i++ {
		lengths[i] = m.Waypoints[i].DistanceTo(m.Waypoints[i+1], include3D)
		total += lengths[i]
	}

	times := make([]float64, 0, n)
	if total == 0 {
		for i := 0; i < n; i++ {
			times = append(times, m.TStart+m.Duration()*float64(i)/float64(n-1))
		}
		times[n-1] = m.TEnd
		return times
	}

	cumulative := m.TStart
	times = append(times, cumulative)
	for _, l := range lengths[:n-2] {
		cumulative += (l / total) * m.Duration()
		times = append(times, cumulative)
	}
	times = append(times, m.TEnd)
	return times
}

// Build decomposes a mission into its legs. The returned segments partition
// [TStart, TEnd] exactly: contiguous, monotonically non-decreasing, and
// len(waypoints)-1 long.
func Build(m airspace.Mission) []Segment {
	times := SegmentTimes(m)
	segments := make([]Segment, 0, len(m.Waypoints)-1)
	for i := 0; i < len(m.Waypoints)-1; i++ {
		segments = append(segments, Segment{
			Start:     m.Waypoints[i],
			End:       m.Waypoints[i+1],
			TStart:    times[i],
			TEnd:      times[i+1],
			MissionID: m.ID,
		})
	}
	return segments
}
