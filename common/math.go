package common

import "math"

// Vec2 is a 2D point or direction in world units. Y grows upward.
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVec interpolates component-wise between a and b. t is clamped to [0, 1].
func LerpVec(a, b Vec2, t float64) Vec2 {
	t = Clamp(t, 0, 1)
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Countdown decrements a seconds timer by dt and clamps it at zero.
func Countdown(remaining, dt float64) float64 {
	if remaining <= 0 {
		return 0
	}
	remaining -= dt
	if remaining < 0 {
		return 0
	}
	return remaining
}
