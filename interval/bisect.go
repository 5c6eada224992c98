package interval

// Bisect splits the box b into two sub-boxes whose union equals b and whose
// interiors are disjoint, cutting the widest splittable dimension (ties
// resolve to the lowest index). A dimension is splittable when its Mid point
// is strictly interior, i.e. its width exceeds one representable step.
//
// When no dimension is splittable the box is a terminal leaf: Bisect
// returns (b, nil, false) and callers must stop refining it.
func Bisect(b Box) (left, right Box, ok bool) {
	dim, mid := -1, 0.0
	var dimW float64
	for i, iv := range b {
		if iv.IsEmpty() {
			return b, nil, false
		}
		m := iv.Mid()
		if !(m > iv.Lo() && m < iv.Hi()) {
			continue // width at or below one representable step
		}
		if w := iv.Diam(); dim == -1 || w > dimW {
			dim, mid, dimW = i, m, w
		}
	}
	if dim == -1 {
		return b, nil, false
	}

	left = b.With(dim, Interval{lo: b[dim].lo, hi: mid})
	right = b.With(dim, Interval{lo: mid, hi: b[dim].hi})

	return left, right, true
}
