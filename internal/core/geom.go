// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep the simulation pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. The world origin is the center of the
// playfield with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k on both axes.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The second result is false for the zero vector, in which case v is returned unchanged.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return v, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Box is an axis-aligned bounding box described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at c with the given full size.
func NewBox(c, size Vec2) Box {
	return Box{Center: c, Size: size}
}

// Min returns the lower-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Collision names the side of the first box that the second box struck.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
)

// String returns a human-readable name for the collision side.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Overlaps reports whether two boxes intersect.
// Boxes that only touch along an edge do not overlap.
func Overlaps(a, b Box) bool {
	dx := math.Abs(b.Center.X - a.Center.X)
	dy := math.Abs(b.Center.Y - a.Center.Y)
	return dx < (a.Size.X+b.Size.X)/2 && dy < (a.Size.Y+b.Size.Y)/2
}

// Collide classifies an overlap between a and b by the side of a that b hit,
// resolved on the axis of minimum penetration. Equal penetration on both
// axes resolves horizontally.
func Collide(a, b Box) Collision {
	if !Overlaps(a, b) {
		return CollisionNone
	}

	dx := b.Center.X - a.Center.X
	dy := b.Center.Y - a.Center.Y
	penX := (a.Size.X+b.Size.X)/2 - math.Abs(dx)
	penY := (a.Size.Y+b.Size.Y)/2 - math.Abs(dy)

	if penX <= penY {
		if dx < 0 {
			return CollisionLeft
		}
		return CollisionRight
	}
	if dy < 0 {
		return CollisionBottom
	}
	return CollisionTop
}

// Rect is an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
