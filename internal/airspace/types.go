// Core value types for missions, waypoints, and detected conflicts.
package airspace

import (
	"fmt"
	"math"
	"strings"
)

// DefaultSpeed is the nominal speed assumed when a mission file omits one (m/s).
const DefaultSpeed = 5.0

// Waypoint is a single point on a mission path. Z is altitude in meters
// and stays zero for 2D missions.
type Waypoint struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z,omitempty" json:"z"`
}

// Coords returns the waypoint as a coordinate slice, two or three wide
// depending on include3D.
func (w Waypoint) Coords(include3D bool) []float64 {
	if include3D {
		return []float64{w.X, w.Y, w.Z}
	}
	return []float64{w.X, w.Y}
}

// DistanceTo returns the Euclidean distance to another waypoint.
func (w Waypoint) DistanceTo(o Waypoint, include3D bool) float64 {
	dx := w.X - o.X
	dy := w.Y - o.Y
	if !include3D {
		return math.Hypot(dx, dy)
	}
	dz := w.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Mission is one drone's planned flight: an ordered waypoint path flown
// inside the [TStart, TEnd] window at a nominal speed. A mission is
// immutable once validated; the checker never mutates it.
type Mission struct {
	ID        string     `yaml:"id" json:"id"`
	Waypoints []Waypoint `yaml:"waypoints" json:"waypoints"`
	TStart    float64    `yaml:"t_start" json:"t_start"`
	TEnd      float64    `yaml:"t_end" json:"t_end"`
	Speed     float64    `yaml:"speed,omitempty" json:"speed"`
}

// NewMission builds and validates a mission. A non-positive speed falls back
// to DefaultSpeed only when zero (i.e. unset); negative speeds are rejected.
func NewMission(id string, waypoints []Waypoint, tStart, tEnd, speed float64) (Mission, error) {
	if speed == 0 {
		speed = DefaultSpeed
	}
	m := Mission{ID: id, Waypoints: waypoints, TStart: tStart, TEnd: tEnd, Speed: speed}
	if err := m.Validate(); err != nil {
		return Mission{}, err
	}
	return m, nil
}

// Validate checks the structural invariants: at least two waypoints, a
// strictly positive time window, and a strictly positive speed.
func (m Mission) Validate() error {
	if len(m.Waypoints) < 2 {
		return fmt.Errorf("mission %s: needs at least 2 waypoints, got %d", m.ID, len(m.Waypoints))
	}
	if m.TStart >= m.TEnd {
		return fmt.Errorf("mission %s: t_start (%.2f) must be before t_end (%.2f)", m.ID, m.TStart, m.TEnd)
	}
	if m.Speed <= 0 {
		return fmt.Errorf("mission %s: speed must be positive, got %.2f", m.ID, m.Speed)
	}
	return nil
}

// Duration returns the total mission window in seconds.
func (m Mission) Duration() float64 {
	return m.TEnd - m.TStart
}

// Is3D reports whether any waypoint carries a non-zero altitude.
func (m Mission) Is3D() bool {
	for _, wp := range m.Waypoints {
		if wp.Z != 0 {
			return true
		}
	}
	return false
}

// Conflict is a detected safety-buffer violation between one pair of
// segments. Location has two or three coordinates matching the check mode
// and follows the primary mission's position at the closest approach.
type Conflict struct {
	PrimaryID     string    `json:"primary_id"`
	ConflictingID string    `json:"conflicting_id"`
	Location      []float64 `json:"location"`
	Time          float64   `json:"time"`
	MinDistance   float64   `json:"min_distance"`
	SafetyBuffer  float64   `json:"safety_buffer"`
}

func (c Conflict) String() string {
	coords := make([]string, len(c.Location))
	for i, v := range c.Location {
		coords[i] = fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("Conflict(%s <-> %s at (%s) @ t=%.1fs, dist=%.2fm < buffer=%.2fm)",
		c.PrimaryID, c.ConflictingID, strings.Join(coords, ", "), c.Time, c.MinDistance, c.SafetyBuffer)
}
