package detect

import "testing"

func TestOverlapWindow(t *testing.T) {
	start, end, ok := OverlapWindow(0, 10, 5, 20)
	if !ok {
		t.Fatal("expected overlap")
	}
	if start != 5 || end != 10 {
		t.Errorf("overlap = [%.1f, %.1f], want [5, 10]", start, end)
	}
}

func TestOverlapWindowDisjoint(t *testing.T) {
	if _, _, ok := OverlapWindow(0, 10, 11, 20); ok {
		t.Error("disjoint windows reported as overlapping")
	}
}

func TestOverlapWindowTouching(t *testing.T) {
	start, end, ok := OverlapWindow(0, 10, 10, 20)
	if !ok {
		t.Fatal("touching windows should overlap at the shared instant")
	}
	if start != 10 || end != 10 {
		t.Errorf("overlap = [%.1f, %.1f], want [10, 10]", start, end)
	}
}

func TestOverlapWindowSymmetry(t *testing.T) {
	cases := [][4]float64{
		{0, 10, 5, 20},
		{3, 7, 0, 100},
		{0, 1, 1, 2},
		{-5, 5, -10, 0},
	}
	for _, c := range cases {
		s1, e1, ok1 := OverlapWindow(c[0], c[1], c[2], c[3])
		s2, e2, ok2 := OverlapWindow(c[2], c[3], c[0], c[1])
		if ok1 != ok2 || s1 != s2 || e1 != e2 {
			t.Errorf("overlap of %v not symmetric: [%.1f,%.1f,%v] vs [%.1f,%.1f,%v]",
				c, s1, e1, ok1, s2, e2, ok2)
		}
	}
}
