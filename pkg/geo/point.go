package geo

import "math"

// Point2D represents a point in the grid plane, measured in cell units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor for Point2D.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Y - q.Y}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and q.
func (p Point2D) Dist(q Point2D) float64 {
	return p.Sub(q).Length()
}
