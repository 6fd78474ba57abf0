package detect

// WindowsOverlap reports whether two time windows share any instant.
// Touching endpoints count as overlap.
func WindowsOverlap(t1Start, t1End, t2Start, t2End float64) bool {
	return !(t1End < t2Start || t2End < t1Start)
}

// OverlapWindow returns the temporal intersection of two windows, or
// ok=false when they are disjoint. The result is symmetric in its
// arguments.
func OverlapWindow(t1Start, t1End, t2Start, t2End float64) (start, end float64, ok bool) {
	if !WindowsOverlap(t1Start, t1End, t2Start, t2End) {
		return 0, 0, false
	}
	start = t1Start
	if t2Start > start {
		start = t2Start
	}
	end = t1End
	if t2End < end {
		end = t2End
	}
	return start, end, true
}
