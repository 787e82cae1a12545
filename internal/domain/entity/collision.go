package entity

import "math"

// Overlap reports whether two rects intersect. Edges are inclusive: rects
// that only touch along a side still collide.
func Overlap(a, b Rect) bool {
	return a.X+a.W >= b.X &&
		a.X <= b.X+b.W &&
		a.Y+a.H >= b.Y &&
		a.Y <= b.Y+b.H
}

// OverlapArea returns the area of the intersection of a and b (0 when disjoint)
func OverlapArea(a, b Rect) float64 {
	w := math.Max(0, math.Min(a.Right(), b.Right())-math.Max(a.X, b.X))
	h := math.Max(0, math.Min(a.Bottom(), b.Bottom())-math.Max(a.Y, b.Y))
	return w * h
}
