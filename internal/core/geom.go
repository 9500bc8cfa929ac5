// Package core provides fundamental types and utilities shared by the circuit
// board, its renderers and the terminal platform. It has no external
// dependencies (especially no Bubble Tea) to keep board logic pure and testable.
package core

import "fmt"

// Rect is an axis-aligned box in terminal character units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the exact geometric center of the rectangle.
// A 5-wide rect starting at 0 has its center at 2.5.
func (r Rect) Center() Vec {
	return Vec{
		X: float64(r.X) + float64(r.W)/2,
		Y: float64(r.Y) + float64(r.H)/2,
	}
}

// HalfExtent returns half the width and half the height.
func (r Rect) HalfExtent() Vec {
	return Vec{X: float64(r.W) / 2, Y: float64(r.H) / 2}
}

// Vec is a 2D point or offset with fractional precision.
// Y grows downward, matching terminal rows.
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// String returns a compact representation used in log lines.
func (v Vec) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}

// LocalPosition converts a terminal character position into an offset from the
// center of cell. The character's own center (x+0.5, y+0.5) is used, so every
// character inside a cell of odd size maps to a whole-number offset.
func LocalPosition(charX, charY int, cell Rect) Vec {
	p := Vec{X: float64(charX) + 0.5, Y: float64(charY) + 0.5}
	return p.Sub(cell.Center())
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
