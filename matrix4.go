package linalg

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4 is a 4x4 matrix stored column-major: element (row, col) is at index row+col*4.
// Its layout matches mgl64.Mat4.
type Matrix4 [16]float64

// NewMatrix4 builds a matrix from its elements given in row-major reading order.
func NewMatrix4(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float64,
) Matrix4 {
	return Matrix4{
		n11, n21, n31, n41,
		n12, n22, n32, n42,
		n13, n23, n33, n43,
		n14, n24, n34, n44,
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromMatrix3 embeds m as the upper-left 3x3 block of an otherwise identity matrix.
func Matrix4FromMatrix3(m Matrix3) Matrix4 {
	return NewMatrix4(
		m[0], m[3], m[6], 0,
		m[1], m[4], m[7], 0,
		m[2], m[5], m[8], 0,
		0, 0, 0, 1,
	)
}

// Basis builds a rotation/scale matrix whose columns are x, y and z.
func Basis(x, y, z Vector3) Matrix4 {
	return NewMatrix4(
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		0, 0, 0, 1,
	)
}

// LookAt returns the rotation that orients the -Z axis from eye towards target,
// keeping up as close to +Y as possible.
func LookAt(eye, target, up Vector3) Matrix4 {
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		// eye and target coincide
		z.Z = 1
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.LengthSquared() == 0 {
		// up and z are parallel
		if math.Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return Basis(x, y, z)
}

// RotationAxis returns a rotation of theta radians around the unit vector axis.
func RotationAxis(axis Vector3, theta float64) Matrix4 {
	return Matrix4(mgl64.HomogRotate3D(theta, axis.Vec3()))
}

// RotationX returns a rotation of theta radians around the X axis.
func RotationX(theta float64) Matrix4 {
	return Matrix4(mgl64.HomogRotate3DX(theta))
}

// RotationY returns a rotation of theta radians around the Y axis.
func RotationY(theta float64) Matrix4 {
	return Matrix4(mgl64.HomogRotate3DY(theta))
}

// RotationZ returns a rotation of theta radians around the Z axis.
func RotationZ(theta float64) Matrix4 {
	return Matrix4(mgl64.HomogRotate3DZ(theta))
}

// Scale3D returns a matrix scaling each axis by the matching component of v.
func Scale3D(v Vector3) Matrix4 {
	return Matrix4(mgl64.Scale3D(v.X, v.Y, v.Z))
}

// Shear3D shears each axis by the factors of the two others: x' = x + v.Y*y + v.Z*z,
// y' = v.X*x + y + v.Z*z, z' = v.X*x + v.Y*y + z.
func Shear3D(v Vector3) Matrix4 {
	return NewMatrix4(
		1, v.Y, v.Z, 0,
		v.X, 1, v.Z, 0,
		v.X, v.Y, 1, 0,
		0, 0, 0, 1,
	)
}

// Translation3D returns a matrix moving points by v.
func Translation3D(v Vector3) Matrix4 {
	return Matrix4(mgl64.Translate3D(v.X, v.Y, v.Z))
}

// Perspective returns an OpenGL-style frustum projection (clip z in [-1, 1]).
// Note the argument order: top comes before bottom, unlike mgl64.Frustum.
func Perspective(left, right, top, bottom, near, far float64) Matrix4 {
	return Matrix4(mgl64.Frustum(left, right, bottom, top, near, far))
}

// Orthographic returns an OpenGL-style orthographic projection (clip z in [-1, 1]).
func Orthographic(left, right, top, bottom, near, far float64) Matrix4 {
	return Matrix4(mgl64.Ortho(left, right, bottom, top, near, far))
}

// RotationFromEuler returns the pure rotation described by e.
// It panics if e.Order is not one of the six axis orders.
func RotationFromEuler(e Euler) Matrix4 {
	f := e.Order.formulas()
	r := f.matrix(e.X, e.Y, e.Z)

	return Matrix4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	}
}

// RotationFromQuaternion returns the rotation described by the unit quaternion q.
func RotationFromQuaternion(q Quaternion) Matrix4 {
	return Matrix4(q.Quat().Mat4())
}

// Compose builds the matrix that scales, then rotates, then translates.
func Compose(position Vector3, rotation Quaternion, scale Vector3) Matrix4 {
	t := mgl64.Translate3D(position.X, position.Y, position.Z)
	return Matrix4(t.Mul4(rotation.Quat().Mat4()).Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z)))
}

// Decompose splits m into translation, rotation and scale. Scale components are
// non-negative except when m contains a reflection (negative determinant), in
// which case the X scale carries the sign.
//
// Compose(m.Decompose()) reproduces m only when its basis columns are orthogonal.
// When a basis column has zero length the rotation is undefined and the identity
// is returned in its place.
func (m Matrix4) Decompose() (position Vector3, rotation Quaternion, scale Vector3) {
	sx, sy, sz := mgl64.Extract3DScale(m.Mat4())

	if m.Determinant() < 0 {
		sx = -sx
	}

	position = Vector3FromMatrix4Position(m)
	scale = Vector3{sx, sy, sz}

	if sx == 0 || sy == 0 || sz == 0 {
		if debugEnabled() {
			Logger().Debug("linalg: decomposing a flattened Matrix4, rotation set to identity",
				"scale", scale)
		}
		return position, IdentityQuaternion(), scale
	}

	r := m
	ix, iy, iz := 1/sx, 1/sy, 1/sz
	r[0] *= ix
	r[1] *= ix
	r[2] *= ix
	r[4] *= iy
	r[5] *= iy
	r[6] *= iy
	r[8] *= iz
	r[9] *= iz
	r[10] *= iz

	rotation = QuaternionFromRotationMatrix(r)

	return position, rotation, scale
}

// ExtractRotation returns the rotation part of m, with scale removed from each basis
// column and translation dropped. A zero-length column stays zero.
func (m Matrix4) ExtractRotation() Matrix4 {
	r := Identity4()
	for col := 0; col < 3; col++ {
		c := Vector3FromMatrix4Column(m, col).Normalize()
		r[col*4], r[col*4+1], r[col*4+2] = c.X, c.Y, c.Z
	}
	return r
}

// Basis returns the three first columns of m.
func (m Matrix4) Basis() (x, y, z Vector3) {
	return Vector3FromMatrix4Column(m, 0), Vector3FromMatrix4Column(m, 1), Vector3FromMatrix4Column(m, 2)
}

// Position returns the translation part of m.
func (m Matrix4) Position() Vector3 {
	return Vector3FromMatrix4Position(m)
}

// SetPosition replaces the translation part of m.
func (m Matrix4) SetPosition(v Vector3) Matrix4 {
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// CopyPosition replaces the translation part of m by the one of o.
func (m Matrix4) CopyPosition(o Matrix4) Matrix4 {
	m[12], m[13], m[14] = o[12], o[13], o[14]
	return m
}

// MaxScaleOnAxis returns the length of the longest basis column.
func (m Matrix4) MaxScaleOnAxis() float64 {
	return mgl64.ExtractMaxScale(m.Mat4())
}

// Multiply returns m * b.
func (m Matrix4) Multiply(b Matrix4) Matrix4 {
	return Matrix4(m.Mat4().Mul4(b.Mat4()))
}

// Premultiply returns b * m.
func (m Matrix4) Premultiply(b Matrix4) Matrix4 {
	return Matrix4(b.Mat4().Mul4(m.Mat4()))
}

// MultiplyScalar multiplies every element by s.
func (m Matrix4) MultiplyScalar(s float64) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

func (m Matrix4) Determinant() float64 {
	return m.Mat4().Det()
}

// Invert returns the inverse of m computed from its cofactors.
// A singular matrix (determinant exactly 0) yields the zero matrix. Unlike
// mgl64.Mat4.Inv, tiny non-zero determinants are still inverted.
func (m Matrix4) Invert() Matrix4 {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 {
		if debugEnabled() {
			Logger().Debug("linalg: inverting singular Matrix4, returning zero matrix")
		}
		return Matrix4{}
	}

	d := 1 / det

	return Matrix4{
		t11 * d,
		(n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * d,
		(n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * d,
		(n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * d,

		t12 * d,
		(n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * d,
		(n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * d,
		(n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * d,

		t13 * d,
		(n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * d,
		(n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * d,
		(n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * d,

		t14 * d,
		(n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * d,
		(n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * d,
		(n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * d,
	}
}

// Transpose swaps the rows and columns of m.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4(m.Mat4().Transpose())
}

// RotateX returns RotationX(theta) * m.
func (m Matrix4) RotateX(theta float64) Matrix4 { return m.Premultiply(RotationX(theta)) }

// RotateY returns RotationY(theta) * m.
func (m Matrix4) RotateY(theta float64) Matrix4 { return m.Premultiply(RotationY(theta)) }

// RotateZ returns RotationZ(theta) * m.
func (m Matrix4) RotateZ(theta float64) Matrix4 { return m.Premultiply(RotationZ(theta)) }

// Scale returns Scale3D(v) * m.
func (m Matrix4) Scale(v Vector3) Matrix4 { return m.Premultiply(Scale3D(v)) }

// Shear returns Shear3D(v) * m.
func (m Matrix4) Shear(v Vector3) Matrix4 { return m.Premultiply(Shear3D(v)) }

// Translate returns Translation3D(v) * m.
func (m Matrix4) Translate(v Vector3) Matrix4 { return m.Premultiply(Translation3D(v)) }

// ApproxEqual reports whether every element of m is within eps of o.
func (m Matrix4) ApproxEqual(o Matrix4, eps float64) bool {
	for i := range m {
		if !ApproxEqual(m[i], o[i], eps) {
			return false
		}
	}
	return true
}

// Array returns the elements in column-major order.
func (m Matrix4) Array() [16]float64 { return m }
