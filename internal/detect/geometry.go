// Static geometry helpers for separation estimates independent of timing.
package detect

import (
	"deconflict/internal/trajectory"
)

// PointToSegmentDistance returns the minimum distance from a point to a
// line segment. Coordinate slices must share the same width. A degenerate
// segment (start == end) reduces to point-to-point distance.
func PointToSegmentDistance(point, segStart, segEnd []float64) float64 {
	segVec := make([]float64, len(segStart))
	lengthSq := 0.0
	for i := range segVec {
		segVec[i] = segEnd[i] - segStart[i]
		lengthSq += segVec[i] * segVec[i]
	}
	if lengthSq == 0 {
		return distance(point, segStart)
	}

	t := 0.0
	for i := range segVec {
		t += (point[i] - segStart[i]) * segVec[i]
	}
	t /= lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := make([]float64, len(segStart))
	for i := range closest {
		closest[i] = segStart[i] + t*segVec[i]
	}
	return distance(point, closest)
}

// SegmentToSegmentDistance approximates the minimum distance between two
// static segments by checking each endpoint against the opposite segment.
// Timing is ignored entirely; use SegmentConflict for moving drones.
func SegmentToSegmentDistance(s1, s2 trajectory.Segment, include3D bool) float64 {
	p1Start := s1.Start.Coords(include3D)
	p1End := s1.End.Coords(include3D)
	p2Start := s2.Start.Coords(include3D)
	p2End := s2.End.Coords(include3D)

	min := PointToSegmentDistance(p1Start, p2Start, p2End)
	for _, d := range []float64{
		PointToSegmentDistance(p1End, p2Start, p2End),
		PointToSegmentDistance(p2Start, p1Start, p1End),
		PointToSegmentDistance(p2End, p1Start, p1End),
	} {
		if d < min {
			min = d
		}
	}
	return min
}
