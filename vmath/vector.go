package vmath

import "math"

// Vec2 is a float32 2D vector used for screen space and rect geometry
type Vec2 struct {
	X, Y float32
}

// Vec3 is a float32 3D vector, X/Z form the ground plane and Y is unused height
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Floor rounds both components toward negative infinity
func (v Vec2) Floor() Vec2 {
	return Vec2{float32(math.Floor(float64(v.X))), float32(math.Floor(float64(v.Y)))}
}

// Round rounds both components half away from zero
func (v Vec2) Round() Vec2 {
	return Vec2{float32(math.Round(float64(v.X))), float32(math.Round(float64(v.Y)))}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) MagSq() float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

func (v Vec3) Mag() float32 { return float32(math.Sqrt(float64(v.MagSq()))) }

// Normalized returns the unit vector, zero vector stays zero
func (v Vec3) Normalized() Vec3 {
	mag := v.Mag()
	if mag == 0 {
		return Vec3{}
	}
	return v.Scale(1 / mag)
}

// Floor rounds every component toward negative infinity
func (v Vec3) Floor() Vec3 {
	return Vec3{
		float32(math.Floor(float64(v.X))),
		float32(math.Floor(float64(v.Y))),
		float32(math.Floor(float64(v.Z))),
	}
}

// XZ projects the ground plane onto a Vec2
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }

// Broadcast3 fills all three components with s
func Broadcast3(s float32) Vec3 { return Vec3{s, s, s} }

// UnitX is the +X ground direction, the zero-angle reference for RotateXZ
var UnitX = Vec3{X: 1}

// RotateXZ rotates v around the Y axis so that angle 0 keeps +X and Tau/4 maps +X onto +Z
func RotateXZ(v Vec3, angle float32) Vec3 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Vec3{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}
