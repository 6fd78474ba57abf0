// Position interpolation along time-parameterized segments.
package trajectory

import (
	"fmt"
	"math"

	"deconflict/internal/airspace"
)

// PositionAt returns the linearly interpolated position on the segment at
// time t, as a 2- or 3-wide coordinate slice depending on include3D. The
// requested dimensionality is the caller's choice and may differ from the
// owning mission's: a 3D mission can be checked in 2D by ignoring altitude.
// A zero-duration segment yields its start position for any t in range.
func (s Segment) PositionAt(t float64, include3D bool) ([]float64, error) {
	if t < s.TStart || t > s.TEnd {
		return nil, fmt.Errorf("time %.3f outside segment bounds [%.3f, %.3f]", t, s.TStart, s.TEnd)
	}
	start := s.Start.Coords(include3D)
	if s.TStart == s.TEnd {
		return start, nil
	}
	alpha := (t - s.TStart) / (s.TEnd - s.TStart)
	end := s.End.Coords(include3D)
	pos := make([]float64, len(start))
	for i := range start {
		pos[i] = start[i] + alpha*(end[i]-start[i])
	}
	return pos, nil
}

// Velocity returns the segment's constant velocity vector. Zero-duration
// segments have zero velocity.
func (s Segment) Velocity(include3D bool) []float64 {
	dims := 2
	if include3D {
		dims = 3
	}
	v := make([]float64, dims)
	d := s.Duration()
	if d == 0 {
		return v
	}
	start := s.Start.Coords(include3D)
	end := s.End.Coords(include3D)
	for i := range v {
		v[i] = (end[i] - start[i]) / d
	}
	return v
}

// Speed returns the magnitude of the segment's velocity in m/s.
func (s Segment) Speed(include3D bool) float64 {
	sum := 0.0
	for _, c := range s.Velocity(include3D) {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// SamplePath interpolates the full mission path at a regular time step.
// It returns parallel slices of timestamps and positions; each segment's
// end time is always included so the path reaches every waypoint, and each
// timestamp appears exactly once even at segment boundaries. Meant for
// visualization and export, not for conflict checking.
func SamplePath(m airspace.Mission, dt float64) ([]float64, [][]float64) {
	segments := Build(m)
	include3D := m.Is3D()

	var times []float64
	var positions [][]float64
	emit := func(seg Segment, t float64) {
		// Interior boundaries are both one segment's end and the next
		// segment's start; emit them once.
		if len(times) > 0 && t <= times[len(times)-1] {
			return
		}
		pos, err := seg.PositionAt(t, include3D)
		if err != nil {
			return
		}
		times = append(times, t)
		positions = append(positions, pos)
	}
	for i, seg := range segments {
		if i == 0 {
			emit(seg, seg.TStart)
		}
		for t := seg.TStart + dt; t < seg.TEnd; t += dt {
			emit(seg, t)
		}
		emit(seg, seg.TEnd)
	}
	return times, positions
}
