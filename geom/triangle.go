package geom

import "github.com/akmonengine/linalg"

// Triangle is defined by three vertices. Collinear vertices are allowed: queries
// on such a triangle report degeneracy rather than divide by zero. Vertices that
// are collinear up to floating-point rounding count as collinear.
type Triangle struct {
	A, B, C linalg.Vector3
}

// NewTriangle returns the triangle with vertices a, b and c.
func NewTriangle(a, b, c linalg.Vector3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// ClosestPoint returns the point of the triangle (interior or edge) closest to p,
// by testing the Voronoi regions of the vertices, then the edges, then the face.
func (t Triangle) ClosestPoint(p linalg.Vector3) linalg.Vector3 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)

	ap := p.Sub(t.A)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return t.A
	}

	bp := p.Sub(t.B)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return t.B
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return t.A.Add(ab.Scale(v))
	}

	cp := p.Sub(t.C)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return t.C
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return t.A.Add(ac.Scale(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return t.B.Add(t.C.Sub(t.B).Scale(w))
	}

	denominator := 1 / (va + vb + vc)
	v := vb * denominator
	w := vc * denominator

	return t.A.Add(ab.Scale(v)).Add(ac.Scale(w))
}

// Barycoord returns the weights (u, v, w) of A, B and C such that
// p = u*A + v*B + w*C, for p projected onto the triangle's plane.
// ok is false when the triangle is degenerate.
func (t Triangle) Barycoord(p linalg.Vector3) (coord linalg.Vector3, ok bool) {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := p.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	if degenerate(v0, v1) {
		logger := linalg.Logger()
		logger.Debug("geom: barycentric coordinates of a degenerate triangle")
		return linalg.Vector3{}, false
	}

	denominator := dot00*dot11 - dot01*dot01

	inverse := 1 / denominator
	u := (dot11*dot02 - dot01*dot12) * inverse
	v := (dot00*dot12 - dot01*dot02) * inverse

	return linalg.Vector3{X: 1 - u - v, Y: v, Z: u}, true
}

// ContainsPoint reports whether p, projected onto the triangle's plane, lies inside
// the triangle or on its edges. Degenerate triangles contain nothing.
func (t Triangle) ContainsPoint(p linalg.Vector3) bool {
	coord, ok := t.Barycoord(p)
	if !ok {
		return false
	}
	return coord.X >= 0 && coord.Y >= 0 && coord.X+coord.Y <= 1
}

// Interpolate blends the three values attached to A, B and C at p.
// ok is false when the triangle is degenerate.
func (t Triangle) Interpolate(p linalg.Vector3, values Triangle) (linalg.Vector3, bool) {
	coord, ok := t.Barycoord(p)
	if !ok {
		return linalg.Vector3{}, false
	}
	return values.A.Scale(coord.X).
		Add(values.B.Scale(coord.Y)).
		Add(values.C.Scale(coord.Z)), true
}

// Area returns the area of the triangle, 0 when it is degenerate.
func (t Triangle) Area() float64 {
	return t.C.Sub(t.B).Cross(t.A.Sub(t.B)).Length() * 0.5
}

// Midpoint returns the centroid of the three vertices.
func (t Triangle) Midpoint() linalg.Vector3 {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3)
}

// Normal returns the unit normal following the counter-clockwise winding A, B, C,
// or the zero vector for a degenerate triangle.
func (t Triangle) Normal() linalg.Vector3 {
	cb := t.C.Sub(t.B)
	ab := t.A.Sub(t.B)
	if degenerate(cb, ab) {
		return linalg.Vector3{}
	}
	return cb.Cross(ab).Normalize()
}

// degenerate reports whether the edges u and v are parallel up to rounding, or one
// of them has zero length: sin² of their angle is at most linalg.Epsilon.
func degenerate(u, v linalg.Vector3) bool {
	return u.Cross(v).LengthSquared() <= linalg.Epsilon*u.LengthSquared()*v.LengthSquared()
}

// Plane returns the plane containing the triangle.
func (t Triangle) Plane() Plane {
	return PlaneFromCoplanarPoints(t.A, t.B, t.C)
}

// IsFrontFacing reports whether the triangle faces against direction, e.g. a view ray.
func (t Triangle) IsFrontFacing(direction linalg.Vector3) bool {
	return t.C.Sub(t.B).Cross(t.A.Sub(t.B)).Dot(direction) < 0
}

// Bounds returns the smallest box containing the three vertices.
func (t Triangle) Bounds() Box {
	return BoxFromPoints(t.A, t.B, t.C)
}

// Localized renders t with the number format of f.
func (t Triangle) Localized(f *linalg.Formatter) string {
	return f.Tagged("triangle", nil, f.Vector3(t.A), f.Vector3(t.B), f.Vector3(t.C))
}

func (t Triangle) String() string {
	return t.Localized(linalg.DefaultFormatter())
}
