package linalg

import "github.com/go-gl/mathgl/mgl64"

// Matrix3 is a 3x3 matrix stored column-major: element (row, col) is at index row+col*3.
// As a 2D transform it acts on homogeneous coordinates (x, y, 1).
type Matrix3 [9]float64

// NewMatrix3 builds a matrix from its elements given in row-major reading order.
func NewMatrix3(
	n11, n12, n13,
	n21, n22, n23,
	n31, n32, n33 float64,
) Matrix3 {
	return Matrix3{
		n11, n21, n31,
		n12, n22, n32,
		n13, n23, n33,
	}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromMatrix4 returns the upper-left 3x3 block of m.
func Matrix3FromMatrix4(m Matrix4) Matrix3 {
	return NewMatrix3(
		m[0], m[4], m[8],
		m[1], m[5], m[9],
		m[2], m[6], m[10],
	)
}

// NormalMatrix returns the inverse-transpose of the upper-left 3x3 block of m,
// which maps surface normals correctly under non-uniform scale.
// A singular block yields the zero matrix.
func NormalMatrix(m Matrix4) Matrix3 {
	return Matrix3FromMatrix4(m).Invert().Transpose()
}

// Scale2D returns a homogeneous 2D scaling matrix.
func Scale2D(x, y float64) Matrix3 {
	return Matrix3(mgl64.Scale2D(x, y))
}

// Rotation2D returns a homogeneous 2D rotation of theta radians, counter-clockwise.
func Rotation2D(theta float64) Matrix3 {
	return Matrix3(mgl64.HomogRotate2D(theta))
}

// Translation2D returns a homogeneous 2D translation by (x, y).
func Translation2D(x, y float64) Matrix3 {
	return Matrix3(mgl64.Translate2D(x, y))
}

// Shear2D maps (x, y) to (x + y*sy, y + x*sx).
func Shear2D(sx, sy float64) Matrix3 {
	return NewMatrix3(
		1, sy, 0,
		sx, 1, 0,
		0, 0, 1,
	)
}

// Multiply returns m * b.
func (m Matrix3) Multiply(b Matrix3) Matrix3 {
	return Matrix3(m.Mat3().Mul3(b.Mat3()))
}

// Premultiply returns b * m.
func (m Matrix3) Premultiply(b Matrix3) Matrix3 {
	return Matrix3(b.Mat3().Mul3(m.Mat3()))
}

// MultiplyScalar multiplies every element by s.
func (m Matrix3) MultiplyScalar(s float64) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

func (m Matrix3) Determinant() float64 {
	return m.Mat3().Det()
}

// Invert returns the inverse of m. A singular matrix (determinant exactly 0)
// yields the zero matrix.
func (m Matrix3) Invert() Matrix3 {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	t11 := n33*n22 - n32*n23
	t12 := n32*n13 - n33*n12
	t13 := n23*n12 - n22*n13

	det := n11*t11 + n21*t12 + n31*t13
	if det == 0 {
		if debugEnabled() {
			Logger().Debug("linalg: inverting singular Matrix3, returning zero matrix")
		}
		return Matrix3{}
	}

	d := 1 / det

	return Matrix3{
		t11 * d,
		(n31*n23 - n33*n21) * d,
		(n32*n21 - n31*n22) * d,
		t12 * d,
		(n33*n11 - n31*n13) * d,
		(n31*n12 - n32*n11) * d,
		t13 * d,
		(n21*n13 - n23*n11) * d,
		(n22*n11 - n21*n12) * d,
	}
}

// Transpose swaps the rows and columns of m.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3(m.Mat3().Transpose())
}

// Scale returns Scale2D(x, y) * m.
func (m Matrix3) Scale(x, y float64) Matrix3 { return m.Premultiply(Scale2D(x, y)) }

// Rotate returns Rotation2D(theta) * m.
func (m Matrix3) Rotate(theta float64) Matrix3 { return m.Premultiply(Rotation2D(theta)) }

// Translate returns Translation2D(x, y) * m.
func (m Matrix3) Translate(x, y float64) Matrix3 { return m.Premultiply(Translation2D(x, y)) }

// Shear returns Shear2D(x, y) * m.
func (m Matrix3) Shear(x, y float64) Matrix3 { return m.Premultiply(Shear2D(x, y)) }

// Basis returns the three columns of m.
func (m Matrix3) Basis() (x, y, z Vector3) {
	return Vector3FromMatrix3Column(m, 0), Vector3FromMatrix3Column(m, 1), Vector3FromMatrix3Column(m, 2)
}

// ApproxEqual reports whether every element of m is within eps of o.
func (m Matrix3) ApproxEqual(o Matrix3, eps float64) bool {
	for i := range m {
		if !ApproxEqual(m[i], o[i], eps) {
			return false
		}
	}
	return true
}

// Array returns the elements in column-major order.
func (m Matrix3) Array() [9]float64 { return m }
