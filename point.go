package satchel

import "math"

// Point is an immutable coordinate pair with an optional label.
type Point struct {
	x, y  float64
	label string
}

func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

func NewLabeledPoint(x, y float64, label string) Point {
	return Point{x: x, y: y, label: label}
}

func (p Point) X() float64 {
	return p.x
}

func (p Point) Y() float64 {
	return p.y
}

func (p Point) Label() string {
	return p.label
}

func (p Point) DistanceFromOrigin() float64 {
	return math.Sqrt(p.x*p.x + p.y*p.y)
}
