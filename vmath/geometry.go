package vmath

// OrthPoint returns the point Q on the line through from and target such that
// point-Q is perpendicular to the line direction
// A zero-length line returns from
func OrthPoint(from, target, point Vec3F) Vec3F {
	dir := V3FSub(target, from)
	lenSq := V3FMagSq(dir)
	if lenSq <= Epsilon {
		return from
	}
	t := V3FDot(V3FSub(point, from), dir) / lenSq
	return V3FAdd(from, V3FScale(dir, t))
}

// ClosestPointOnSegment is OrthPoint with the result confined to the segment
func ClosestPointOnSegment(from, target, point Vec3F) Vec3F {
	dir := V3FSub(target, from)
	lenSq := V3FMagSq(dir)
	if lenSq <= Epsilon {
		return from
	}
	t := Clamp01(V3FDot(V3FSub(point, from), dir) / lenSq)
	return V3FAdd(from, V3FScale(dir, t))
}
