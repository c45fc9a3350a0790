// Package geom provides the plane arithmetic the arrow resolvers are
// built on. Coordinates are in cell units with the y axis growing
// downward, matching the overlay coordinate system.
package geom

import (
	"errors"
	"math"
)

// ErrZeroVector reports an attempt to take the direction of a
// zero-length vector.
var ErrZeroVector = errors.New("geom: zero-length vector has no direction")

// Point is a point in the plane, or a displacement between two points.
// The JSON tags match the overlay point schema.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Length returns the euclidean length of p taken as a displacement.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns the unit vector pointing the same way as p.
func (p Point) Unit() (Point, error) {
	l := p.Length()
	if l == 0 {
		return Point{}, ErrZeroVector
	}
	return Point{X: p.X / l, Y: p.Y / l}, nil
}

// Round returns p with both coordinates rounded to the given number of
// decimal places, half away from zero.
func (p Point) Round(decimals int) Point {
	k := math.Pow(10, float64(decimals))
	return Point{
		X: math.Round(p.X*k) / k,
		Y: math.Round(p.Y*k) / k,
	}
}
