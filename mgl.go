package linalg

import "github.com/go-gl/mathgl/mgl64"

// Conversions to and from github.com/go-gl/mathgl/mgl64. Matrix layouts are
// identical (column-major), so matrices convert element for element.

// Vector3FromVec3 converts an mgl64 vector.
func Vector3FromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// QuaternionFromQuat converts an mgl64 quaternion, whose W is stored apart from V.
func QuaternionFromQuat(q mgl64.Quat) Quaternion {
	return Quaternion{q.V[0], q.V[1], q.V[2], q.W}
}

func (q Quaternion) Quat() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func Matrix3FromMat3(m mgl64.Mat3) Matrix3 {
	return Matrix3(m)
}

func (m Matrix3) Mat3() mgl64.Mat3 {
	return mgl64.Mat3(m)
}

func Matrix4FromMat4(m mgl64.Mat4) Matrix4 {
	return Matrix4(m)
}

func (m Matrix4) Mat4() mgl64.Mat4 {
	return mgl64.Mat4(m)
}
