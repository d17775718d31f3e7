package geom

import (
	"math"

	"github.com/akmonengine/linalg"
)

// Box represents an axis-aligned bounding box
type Box struct {
	Min linalg.Vector3
	Max linalg.Vector3
}

// EmptyBox returns a box containing nothing. Expanding it by a point gives the
// box reduced to that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: linalg.Vector3{X: inf, Y: inf, Z: inf},
		Max: linalg.Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

// BoxFromPoints returns the smallest box containing every point.
func BoxFromPoints(points ...linalg.Vector3) Box {
	b := EmptyBox()
	for _, p := range points {
		b = b.ExpandByPoint(p)
	}
	return b
}

// ExpandByPoint returns the smallest box containing b and p.
func (b Box) ExpandByPoint(p linalg.Vector3) Box {
	return Box{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// IsEmpty reports whether Min exceeds Max on any axis.
func (b Box) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ContainsPoint checks if a point is inside the box, borders included
func (b Box) ContainsPoint(point linalg.Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// Overlaps checks if two boxes overlap
func (b Box) Overlaps(other Box) bool {
	// Boxes overlap if they overlap on all three axes
	return b.Max.X >= other.Min.X && b.Min.X <= other.Max.X &&
		b.Max.Y >= other.Min.Y && b.Min.Y <= other.Max.Y &&
		b.Max.Z >= other.Min.Z && b.Min.Z <= other.Max.Z
}

// Center returns the middle of the box.
func (b Box) Center() linalg.Vector3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

func (b Box) Size() linalg.Vector3 {
	return b.Max.Sub(b.Min)
}

// ApplyMatrix4 returns the box bounding the 8 corners of b transformed by m.
func (b Box) ApplyMatrix4(m linalg.Matrix4) Box {
	if b.IsEmpty() {
		return b
	}

	corners := [8]linalg.Vector3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}

	result := EmptyBox()
	for _, c := range corners {
		result = result.ExpandByPoint(c.ApplyMatrix4(m))
	}

	return result
}

// Localized renders b with the number format of f.
func (b Box) Localized(f *linalg.Formatter) string {
	return f.Tagged("box", nil, f.Vector3(b.Min), f.Vector3(b.Max))
}

func (b Box) String() string {
	return b.Localized(linalg.DefaultFormatter())
}
