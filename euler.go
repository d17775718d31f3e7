package linalg

// Euler is a rotation given as three angles in radians around X, Y and Z,
// composed in Order. The same angles under two orders are two different rotations.
type Euler struct {
	X, Y, Z float64
	Order   AxisOrder
}

// NewEuler returns the angles x, y and z, in radians, composed in the given order.
func NewEuler(x, y, z float64, order AxisOrder) Euler {
	return Euler{x, y, z, order}
}

// NewEulerDefault returns an Euler using DefaultAxisOrder.
func NewEulerDefault(x, y, z float64) Euler {
	return Euler{x, y, z, DefaultAxisOrder}
}

// EulerFromVector takes the angles from the components of v.
func EulerFromVector(v Vector3, order AxisOrder) Euler {
	return Euler{v.X, v.Y, v.Z, order}
}

// EulerFromRotationMatrix recovers the angles of the pure rotation held in the
// upper 3x3 of m, for the given order.
//
// Away from gimbal lock, converting the result back with RotationFromEuler gives
// the original angles. In gimbal lock one angle is defined as zero and the other
// absorbs the combined rotation, so only the matrix is reproduced.
// It panics if order is not one of the six axis orders.
func EulerFromRotationMatrix(m Matrix4, order AxisOrder) Euler {
	f := order.formulas()

	x, y, z, locked := f.extract(Matrix3FromMatrix4(m))
	if locked && debugEnabled() {
		Logger().Debug("linalg: gimbal lock while extracting Euler angles",
			"order", order.String(), "x", x, "y", y, "z", z)
	}

	return Euler{x, y, z, order}
}

// EulerFromQuaternion recovers the angles of the unit quaternion q for the given order.
func EulerFromQuaternion(q Quaternion, order AxisOrder) Euler {
	return EulerFromRotationMatrix(RotationFromQuaternion(q), order)
}

// Reorder expresses the same rotation with another axis order. The conversion goes
// through a quaternion, which does not depend on any order.
func (e Euler) Reorder(order AxisOrder) Euler {
	return EulerFromQuaternion(QuaternionFromEuler(e), order)
}

// Vector returns the angles as a Vector3.
func (e Euler) Vector() Vector3 {
	return Vector3{e.X, e.Y, e.Z}
}

// ApproxEqual compares the angles component-wise. Orders must match.
func (e Euler) ApproxEqual(o Euler, eps float64) bool {
	return e.Order == o.Order &&
		ApproxEqual(e.X, o.X, eps) && ApproxEqual(e.Y, o.Y, eps) && ApproxEqual(e.Z, o.Z, eps)
}
