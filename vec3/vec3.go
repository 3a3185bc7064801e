// Package vec3 provides the 3D vector/point type shared by every other
// package in this module.
package vec3

import "math"

// Vec is a point or vector in 3-space.
type Vec struct {
	X, Y, Z float64
}

// Add returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// MulScalar returns a * k.
func (a Vec) MulScalar(k float64) Vec {
	return Vec{a.X * k, a.Y * k, a.Z * k}
}

// DivScalar returns a / k.
func (a Vec) DivScalar(k float64) Vec {
	return Vec{a.X / k, a.Y / k, a.Z / k}
}

// AddScalar returns a + (k,k,k).
func (a Vec) AddScalar(k float64) Vec {
	return Vec{a.X + k, a.Y + k, a.Z + k}
}

// Dot returns the dot product a . b.
func (a Vec) Dot(b Vec) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean norm of a.
func (a Vec) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Length2 returns the squared Euclidean norm of a (avoids the sqrt).
func (a Vec) Length2() float64 {
	return a.Dot(a)
}

// Normalize returns a scaled to unit length. The zero vector is returned
// unchanged.
func (a Vec) Normalize() Vec {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.DivScalar(l)
}

// Mid returns the midpoint of a and b.
func (a Vec) Mid(b Vec) Vec {
	return a.Add(b).MulScalar(0.5)
}

// Lerp linearly interpolates between a and b by t in [0,1].
func (a Vec) Lerp(b Vec, t float64) Vec {
	return a.Add(b.Sub(a).MulScalar(t))
}

// MaxComponent returns the largest of X, Y, Z.
func (a Vec) MaxComponent() float64 {
	return math.Max(a.X, math.Max(a.Y, a.Z))
}

// MinComponent returns the smallest of X, Y, Z.
func (a Vec) MinComponent() float64 {
	return math.Min(a.X, math.Min(a.Y, a.Z))
}

// Array returns the components as a fixed-size array, handy as a map key
// for vertex-dedup lookups.
func (a Vec) Array() [3]float64 {
	return [3]float64{a.X, a.Y, a.Z}
}

// Equal reports whether a and b are exactly equal, component-wise.
func (a Vec) Equal(b Vec) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// Finite reports whether all three components are finite (not NaN or Inf).
func (a Vec) Finite() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0) &&
		!math.IsNaN(a.Z) && !math.IsInf(a.Z, 0)
}

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max Vec
}

// NewBox3 returns the box around a set of points. Panics on an empty set,
// mirroring the caller's obligation to only call this with input geometry.
func NewBox3(pts []Vec) Box3 {
	b := Box3{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Include(p)
	}
	return b
}

// Include grows the box to contain p.
func (b Box3) Include(p Vec) Box3 {
	return Box3{
		Min: Vec{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vec{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// Size returns the box's extent along each axis.
func (b Box3) Size() Vec {
	return b.Max.Sub(b.Min)
}

// Center returns the box's midpoint.
func (b Box3) Center() Vec {
	return b.Min.Mid(b.Max)
}

// Diagonal returns the length of the box's main diagonal.
func (b Box3) Diagonal() float64 {
	return b.Size().Length()
}
