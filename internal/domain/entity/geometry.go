// Package entity defines the value types shared by the layout engine.
// These are pure Go types with no infrastructure dependencies.
package entity

import "math"

// Vector2 is a 2D point or extent in canvas units.
// The canvas origin is its bottom-left corner and Y grows upwards.
type Vector2 struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Vec is shorthand for building a Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ApproxEqual compares two vectors component-wise within tolerance.
func (v Vector2) ApproxEqual(o Vector2, tolerance float64) bool {
	return math.Abs(v.X-o.X) <= tolerance && math.Abs(v.Y-o.Y) <= tolerance
}

// Axis returns the component along the axis of d.
// Left/Right select X, Top/Bottom select Y.
func (v Vector2) Axis(d Direction) float64 {
	if d.IsHorizontal() {
		return v.X
	}
	return v.Y
}

// WithAxis returns a copy of v with the component along d replaced.
func (v Vector2) WithAxis(d Direction, value float64) Vector2 {
	if d.IsHorizontal() {
		v.X = value
	} else {
		v.Y = value
	}
	return v
}

// Rect is an axis aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	Position Vector2 `json:"position" bson:"position"`
	Size     Vector2 `json:"size" bson:"size"`
}

// NewRect builds a rect from its bottom-left corner and extent.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Position: Vec(x, y), Size: Vec(w, h)}
}

// Max returns the top-right corner.
func (r Rect) Max() Vector2 {
	return r.Position.Add(r.Size)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector2 {
	return r.Position.Add(r.Size.Scale(0.5))
}

// Contains reports whether p lies inside r. The bottom and left edges are inclusive.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Position.X && p.X < r.Position.X+r.Size.X &&
		p.Y >= r.Position.Y && p.Y < r.Position.Y+r.Size.Y
}

// Local converts a canvas point into coordinates relative to r's origin.
func (r Rect) Local(p Vector2) Vector2 {
	return p.Sub(r.Position)
}
