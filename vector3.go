package linalg

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a 3-component vector.
type Vector3 struct {
	X, Y, Z float64
}

// Frequently used constant vectors.
var (
	Zero3  = Vector3{}
	One3   = Vector3{1, 1, 1}
	UnitX3 = Vector3{X: 1}
	UnitY3 = Vector3{Y: 1}
	UnitZ3 = Vector3{Z: 1}
)

// Vector3FromMatrix4Column returns column index (0..3) of m.
func Vector3FromMatrix4Column(m Matrix4, index int) Vector3 {
	return Vector3{m[index*4], m[index*4+1], m[index*4+2]}
}

// Vector3FromMatrix3Column returns column index (0..2) of m.
func Vector3FromMatrix3Column(m Matrix3, index int) Vector3 {
	return Vector3{m[index*3], m[index*3+1], m[index*3+2]}
}

// Vector3FromMatrix4Position returns the translation part of m.
func Vector3FromMatrix4Position(m Matrix4) Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// Vector3FromMatrix4Scale returns the lengths of the three basis columns of m.
func Vector3FromMatrix4Scale(m Matrix4) Vector3 {
	x, y, z := mgl64.Extract3DScale(m.Mat4())
	return Vector3{x, y, z}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3FromVec3(v.Vec3().Add(o.Vec3())) }

// AddScalar adds s to every component.
func (v Vector3) AddScalar(s float64) Vector3 { return Vector3{v.X + s, v.Y + s, v.Z + s} }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3FromVec3(v.Vec3().Sub(o.Vec3())) }

// SubScalar subtracts s from every component.
func (v Vector3) SubScalar(s float64) Vector3 { return Vector3{v.X - s, v.Y - s, v.Z - s} }

// Scale multiplies every component by s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3FromVec3(v.Vec3().Mul(s)) }

// Mul multiplies component-wise.
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div divides component-wise.
func (v Vector3) Div(o Vector3) Vector3 { return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// DivScalar divides every component by s.
func (v Vector3) DivScalar(s float64) Vector3 { return v.Scale(1 / s) }

// Negate flips the sign of every component.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product of v and o.
func (v Vector3) Dot(o Vector3) float64 { return v.Vec3().Dot(o.Vec3()) }

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 { return Vector3FromVec3(v.Vec3().Cross(o.Vec3())) }

func (v Vector3) LengthSquared() float64 { return v.Vec3().LenSqr() }

func (v Vector3) Length() float64 { return v.Vec3().Len() }

// DistanceToSquared returns the squared distance between the points v and o.
func (v Vector3) DistanceToSquared(o Vector3) float64 { return v.Sub(o).LengthSquared() }

// DistanceTo returns the distance between the points v and o.
func (v Vector3) DistanceTo(o Vector3) float64 { return v.Sub(o).Length() }

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		length = 1
	}
	return v.DivScalar(length)
}

// SetLength returns v rescaled to the given length, keeping its direction.
func (v Vector3) SetLength(length float64) Vector3 {
	return v.Normalize().Scale(length)
}

// Lerp interpolates linearly from v to o.
func (v Vector3) Lerp(o Vector3, alpha float64) Vector3 {
	return Vector3{
		v.X + (o.X-v.X)*alpha,
		v.Y + (o.Y-v.Y)*alpha,
		v.Z + (o.Z-v.Z)*alpha,
	}
}

// Min returns the component-wise minimum of v and o.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Clamp limits every component of v to the matching components of min and max.
func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return Vector3{
		Clamp(v.X, min.X, max.X),
		Clamp(v.Y, min.Y, max.Y),
		Clamp(v.Z, min.Z, max.Z),
	}
}

// ClampScalar limits every component of v to [min, max].
func (v Vector3) ClampScalar(min, max float64) Vector3 {
	return Vector3{Clamp(v.X, min, max), Clamp(v.Y, min, max), Clamp(v.Z, min, max)}
}

// ClampLength limits the length of v to [min, max], keeping its direction.
func (v Vector3) ClampLength(min, max float64) Vector3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.DivScalar(length).Scale(Clamp(length, min, max))
}

// AngleTo returns the angle in radians between v and o.
// If either vector has zero length it returns π/2.
func (v Vector3) AngleTo(o Vector3) float64 {
	denominator := math.Sqrt(v.LengthSquared() * o.LengthSquared())
	if denominator == 0 {
		return math.Pi / 2
	}
	return math.Acos(Clamp(v.Dot(o)/denominator, -1, 1))
}

// Reflect mirrors v off the plane orthogonal to normal. normal must be unit length.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// ProjectOnVector returns the projection of v onto o, or the zero vector when o is zero.
func (v Vector3) ProjectOnVector(o Vector3) Vector3 {
	denominator := o.LengthSquared()
	if denominator == 0 {
		return Vector3{}
	}
	return o.Scale(o.Dot(v) / denominator)
}

// ProjectOnPlane removes from v its component along the plane normal.
func (v Vector3) ProjectOnPlane(normal Vector3) Vector3 {
	return v.Sub(v.ProjectOnVector(normal))
}

// ApplyMatrix3 returns m * v.
func (v Vector3) ApplyMatrix3(m Matrix3) Vector3 {
	return Vector3FromVec3(m.Mat3().Mul3x1(v.Vec3()))
}

// ApplyMatrix4 transforms v as a point (w = 1) and divides by the resulting w.
func (v Vector3) ApplyMatrix4(m Matrix4) Vector3 {
	return Vector3FromVec3(mgl64.TransformCoordinate(v.Vec3(), m.Mat4()))
}

// TransformDirection applies the upper 3x3 of m to v and normalizes the result.
func (v Vector3) TransformDirection(m Matrix4) Vector3 {
	return Vector3FromVec3(mgl64.TransformNormal(v.Vec3(), m.Mat4())).Normalize()
}

// ApplyQuaternion rotates v by q, which is expected to be unit length.
func (v Vector3) ApplyQuaternion(q Quaternion) Vector3 {
	return Vector3FromVec3(q.Quat().Rotate(v.Vec3()))
}

// ApplyAxisAngle rotates v by theta radians around the unit vector axis.
func (v Vector3) ApplyAxisAngle(axis Vector3, theta float64) Vector3 {
	return v.ApplyQuaternion(QuaternionFromAxisAngle(axis, theta))
}

// ApplyEuler rotates v by e.
func (v Vector3) ApplyEuler(e Euler) Vector3 {
	return v.ApplyQuaternion(QuaternionFromEuler(e))
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) &&
		!math.IsInf(v.Y, 0) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.Z, 0) && !math.IsNaN(v.Z)
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vector3) ApproxEqual(o Vector3, eps float64) bool {
	return ApproxEqual(v.X, o.X, eps) && ApproxEqual(v.Y, o.Y, eps) && ApproxEqual(v.Z, o.Z, eps)
}

func (v Vector3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }
