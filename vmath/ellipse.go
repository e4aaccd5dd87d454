package vmath

// Terminal character cells are roughly twice as tall as wide
// Layout runs in square units, the renderer converts through these helpers

// EllipseDistSq returns normalized squared distance for ellipse containment
// Result <= 1 means point is inside ellipse
func EllipseDistSq(dx, dy, rx, ry float64) float64 {
	if rx <= 0 || ry <= 0 {
		return 2
	}
	nx := dx / rx
	ny := dy / ry
	return nx*nx + ny*ny
}

// EllipseContains returns true if point (dx, dy) is inside or on ellipse boundary
func EllipseContains(dx, dy, rx, ry float64) bool {
	return EllipseDistSq(dx, dy, rx, ry) <= 1
}

// EllipseRim reports whether (dx, dy) sits in the outer band of the ellipse
// band is the normalized thickness, 0.3 gives a ring about a third of the radius deep
func EllipseRim(dx, dy, rx, ry, band float64) bool {
	d := EllipseDistSq(dx, dy, rx, ry)
	inner := 1 - band
	return d <= 1 && d >= inner*inner
}
