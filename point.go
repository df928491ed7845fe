package vector

// Point represents a position in the plane.
// Unlike Vector, a Point keeps its coordinates exactly as given.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.x, Y: p.Y + v.y}
}

// To returns the vector from p to q. It is equivalent to FromTwoPoints(p, q).
func (p Point) To(q Point) Vector {
	return FromTwoPoints(p, q)
}
