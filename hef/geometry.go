package hef

import "math"

// Point is an absolute position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Vector is a displacement or direction.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Scale multiplies each component by the matching variant factor.
func (v Vector) Scale(variant Variant) Vector {
	return Vector{X: v.X * variant.X, Y: v.Y * variant.Y, Z: v.Z * variant.Z}
}

// Length is the Euclidean norm of the vector after scaling it by variant.
func (v Vector) Length(variant Variant) float64 {
	s := v.Scale(variant)
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

// Unit returns the vector divided by its unscaled length. The identity
// variant is always used here, whatever variant the caller works with.
// A zero vector yields NaN components.
func (v Vector) Unit() Vector {
	length := v.Length(DefaultVariant())
	return Vector{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Variant holds per-axis scale factors. It models the cross-section or stock
// a whole model is built from.
type Variant struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DefaultVariant is the identity scale (1, 1, 1).
func DefaultVariant() Variant {
	return Variant{X: 1, Y: 1, Z: 1}
}
