package geom

import "github.com/akmonengine/linalg"

// Plane is the set of points p with Normal·p + Constant = 0.
type Plane struct {
	Normal   linalg.Vector3
	Constant float64
}

// NewPlane returns the plane dot(normal, p) + constant = 0. normal should be unit length.
func NewPlane(normal linalg.Vector3, constant float64) Plane {
	return Plane{Normal: normal, Constant: constant}
}

// PlaneFromNormalAndCoplanarPoint builds the plane with the unit normal passing through point.
func PlaneFromNormalAndCoplanarPoint(normal, point linalg.Vector3) Plane {
	return Plane{Normal: normal, Constant: -point.Dot(normal)}
}

// PlaneFromCoplanarPoints builds the plane through a, b and c. The normal follows
// the counter-clockwise winding a, b, c.
func PlaneFromCoplanarPoints(a, b, c linalg.Vector3) Plane {
	normal := c.Sub(b).Cross(a.Sub(b)).Normalize()
	return PlaneFromNormalAndCoplanarPoint(normal, a)
}

// Normalize rescales the plane so the normal has unit length.
func (p Plane) Normalize() Plane {
	inverseLength := 1 / p.Normal.Length()
	return Plane{
		Normal:   p.Normal.Scale(inverseLength),
		Constant: p.Constant * inverseLength,
	}
}

// Negate flips the side the normal points to. The set of points is unchanged.
func (p Plane) Negate() Plane {
	return Plane{Normal: p.Normal.Negate(), Constant: -p.Constant}
}

// DistanceToPoint returns the signed distance from the plane to point, positive on
// the side the normal points to.
func (p Plane) DistanceToPoint(point linalg.Vector3) float64 {
	return p.Normal.Dot(point) + p.Constant
}

// ProjectPoint returns the point of the plane closest to point.
func (p Plane) ProjectPoint(point linalg.Vector3) linalg.Vector3 {
	return p.Normal.Scale(-p.DistanceToPoint(point)).Add(point)
}

// CoplanarPoint returns the point of the plane closest to the origin.
func (p Plane) CoplanarPoint() linalg.Vector3 {
	return p.Normal.Scale(-p.Constant)
}

// ApplyMatrix4 transforms the plane by m.
func (p Plane) ApplyMatrix4(m linalg.Matrix4) Plane {
	return p.ApplyMatrix4WithNormal(m, linalg.NormalMatrix(m))
}

// ApplyMatrix4WithNormal transforms the plane by m using a precomputed normal
// matrix, as returned by linalg.NormalMatrix(m).
func (p Plane) ApplyMatrix4WithNormal(m linalg.Matrix4, normalMatrix linalg.Matrix3) Plane {
	reference := p.CoplanarPoint().ApplyMatrix4(m)
	normal := p.Normal.ApplyMatrix3(normalMatrix).Normalize()

	return Plane{Normal: normal, Constant: -reference.Dot(normal)}
}

// Translate moves the plane by offset.
func (p Plane) Translate(offset linalg.Vector3) Plane {
	return Plane{Normal: p.Normal, Constant: p.Constant - offset.Dot(p.Normal)}
}

func (p Plane) ApproxEqual(o Plane, eps float64) bool {
	return p.Normal.ApproxEqual(o.Normal, eps) && linalg.ApproxEqual(p.Constant, o.Constant, eps)
}

// Localized renders p with the number format of f.
func (p Plane) Localized(f *linalg.Formatter) string {
	return f.Tagged("plane", nil, f.Vector3(p.Normal), f.Number(p.Constant))
}

func (p Plane) String() string {
	return p.Localized(linalg.DefaultFormatter())
}
