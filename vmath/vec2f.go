package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in world units (pixels)
// Positions, velocities and aim directions all use it
type Vec2F struct {
	X, Y float64
}

func V2(x, y float64) Vec2F {
	return Vec2F{x, y}
}

func V2Add(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

// V2Div divides both components by s, caller guarantees s != 0
func V2Div(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X / s, v.Y / s}
}

func V2MagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2F) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2F) Vec2F {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2Floor floors both components
func V2Floor(v Vec2F) Vec2F {
	return Vec2F{math.Floor(v.X), math.Floor(v.Y)}
}
