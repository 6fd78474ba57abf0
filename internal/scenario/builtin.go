package scenario

import "deconflict/internal/airspace"

// BuiltIn returns predefined deconfliction scenarios keyed by name.
func BuiltIn() map[string]Scenario {
	return map[string]Scenario{
		"clear-paths": {
			Name:          "Clear Paths",
			Description:   "Two drones fly well-separated parallel routes; the check should come back clear.",
			SafetyBufferM: 10,
			Primary: airspace.Mission{
				ID:        "PRIMARY",
				Waypoints: []airspace.Waypoint{{X: 0, Y: 0}, {X: 100, Y: 0}},
				TStart:    0, TEnd: 40, Speed: airspace.DefaultSpeed,
			},
			Traffic: []airspace.Mission{{
				ID:        "TRAFFIC-1",
				Waypoints: []airspace.Waypoint{{X: 0, Y: 200}, {X: 100, Y: 200}},
				TStart:    0, TEnd: 40, Speed: airspace.DefaultSpeed,
			}},
		},
		"crossing-paths": {
			Name:          "Crossing Paths",
			Description:   "A traffic drone cuts straight across the primary route while both are airborne.",
			SafetyBufferM: 10,
			Primary: airspace.Mission{
				ID:        "PRIMARY",
				Waypoints: []airspace.Waypoint{{X: 0, Y: 0}, {X: 100, Y: 0}},
				TStart:    0, TEnd: 40, Speed: airspace.DefaultSpeed,
			},
			Traffic: []airspace.Mission{{
				ID:        "CROSSER",
				Waypoints: []airspace.Waypoint{{X: 50, Y: -5}, {X: 50, Y: 5}},
				TStart:    5, TEnd: 45, Speed: airspace.DefaultSpeed,
			}},
		},
		"temporal-miss": {
			Name:          "Temporal Miss",
			Description:   "Paths cross the same point but the time windows never overlap, so no conflict.",
			SafetyBufferM: 10,
			Primary: airspace.Mission{
				ID:        "PRIMARY",
				Waypoints: []airspace.Waypoint{{X: 0, Y: 0}, {X: 100, Y: 0}},
				TStart:    0, TEnd: 10, Speed: airspace.DefaultSpeed,
			},
			Traffic: []airspace.Mission{{
				ID:        "LATECOMER",
				Waypoints: []airspace.Waypoint{{X: 50, Y: -5}, {X: 50, Y: 5}},
				TStart:    20, TEnd: 30, Speed: airspace.DefaultSpeed,
			}},
		},
		"multi-conflict": {
			Name:          "Multiple Conflicts",
			Description:   "Two traffic drones both intrude on the primary corridor during its window.",
			SafetyBufferM: 10,
			Primary: airspace.Mission{
				ID:        "PRIMARY",
				Waypoints: []airspace.Waypoint{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 200, Y: 0}},
				TStart:    0, TEnd: 80, Speed: airspace.DefaultSpeed,
			},
			Traffic: []airspace.Mission{
				{
					ID:        "INTRUDER-1",
					Waypoints: []airspace.Waypoint{{X: 50, Y: -5}, {X: 50, Y: 5}},
					TStart:    10, TEnd: 30, Speed: airspace.DefaultSpeed,
				},
				{
					ID:        "INTRUDER-2",
					Waypoints: []airspace.Waypoint{{X: 150, Y: 5}, {X: 150, Y: -5}},
					TStart:    50, TEnd: 70, Speed: airspace.DefaultSpeed,
				},
			},
		},
		"altitude-separated": {
			Name:          "Altitude Separated",
			Description:   "Diagonal paths cross in plan view but 100m of altitude keeps the 3D check clear.",
			SafetyBufferM: 10,
			Check3D:       true,
			Primary: airspace.Mission{
				ID:        "PRIMARY",
				Waypoints: []airspace.Waypoint{{X: 0, Y: 0}, {X: 100, Y: 100}},
				TStart:    0, TEnd: 60, Speed: airspace.DefaultSpeed,
			},
			Traffic: []airspace.Mission{{
				ID:        "HIGH-FLYER",
				Waypoints: []airspace.Waypoint{{X: 0, Y: 100, Z: 100}, {X: 100, Y: 0, Z: 100}},
				TStart:    0, TEnd: 60, Speed: airspace.DefaultSpeed,
			}},
		},
	}
}
