package linalg

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion represents w + xi + yj + zk. Rotations use unit quaternions;
// intermediate results of composition need not be normalized.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion returns the quaternion w + xi + yj + zk.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// IdentityQuaternion returns the rotation that leaves every vector unchanged.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle returns the rotation of theta radians around the unit vector axis.
func QuaternionFromAxisAngle(axis Vector3, theta float64) Quaternion {
	return QuaternionFromQuat(mgl64.QuatRotate(theta, axis.Vec3()))
}

// QuaternionFromEuler returns the rotation described by e.
// It panics if e.Order is not one of the six axis orders.
func QuaternionFromEuler(e Euler) Quaternion {
	f := e.Order.formulas()

	sx, cx := math.Sincos(e.X / 2)
	sy, cy := math.Sincos(e.Y / 2)
	sz, cz := math.Sincos(e.Z / 2)

	return f.quaternion(halfAngles{sx, cx, sy, cy, sz, cz})
}

// QuaternionFromRotationMatrix extracts the rotation from the upper 3x3 of m,
// which must be a pure (unscaled) rotation. The branch is picked from the trace
// and the largest diagonal element so the divisor is never close to zero.
func QuaternionFromRotationMatrix(m Matrix4) Quaternion {
	return QuaternionFromQuat(mgl64.Mat4ToQuat(m.Mat4()))
}

// QuaternionFromVectors returns the shortest rotation taking the unit vector from
// onto the unit vector to. For opposite vectors any perpendicular axis is valid;
// one is built by permuting the components of from.
func QuaternionFromVectors(from, to Vector3) Quaternion {
	r := from.Dot(to) + 1

	var q Quaternion
	if r < Epsilon {
		if debugEnabled() {
			Logger().Debug("linalg: opposite vectors, synthesizing rotation axis",
				"from", from, "to", to)
		}
		if math.Abs(from.X) > math.Abs(from.Z) {
			q = Quaternion{X: -from.Y, Y: from.X, Z: 0, W: 0}
		} else {
			q = Quaternion{X: 0, Y: -from.Z, Z: from.Y, W: 0}
		}
	} else {
		c := from.Cross(to)
		q = Quaternion{c.X, c.Y, c.Z, r}
	}

	return q.Normalize()
}

// Dot returns the 4D dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float64 {
	return q.Quat().Dot(o.Quat())
}

func (q Quaternion) LengthSquared() float64 { return q.Dot(q) }

func (q Quaternion) Length() float64 { return q.Quat().Len() }

// Normalize returns q scaled to unit length. The zero quaternion becomes the identity.
func (q Quaternion) Normalize() Quaternion {
	length := q.Length()
	if length == 0 {
		return IdentityQuaternion()
	}
	l := 1 / length
	return Quaternion{q.X * l, q.Y * l, q.Z * l, q.W * l}
}

// Conjugate negates the vector part of q.
func (q Quaternion) Conjugate() Quaternion {
	return QuaternionFromQuat(q.Quat().Conjugate())
}

// Invert returns the inverse rotation. q must be unit length.
func (q Quaternion) Invert() Quaternion {
	return q.Conjugate()
}

// AngleTo returns the angle in radians of the rotation taking q to o.
func (q Quaternion) AngleTo(o Quaternion) float64 {
	return 2 * math.Acos(math.Abs(Clamp(q.Dot(o), -1, 1)))
}

// Multiply returns q * b: applying the result rotates by b first, then q.
func (q Quaternion) Multiply(b Quaternion) Quaternion {
	return QuaternionFromQuat(q.Quat().Mul(b.Quat()))
}

// Premultiply returns b * q.
func (q Quaternion) Premultiply(b Quaternion) Quaternion {
	return QuaternionFromQuat(b.Quat().Mul(q.Quat()))
}

// Slerp interpolates spherically from q (alpha = 0) to target (alpha = 1) along
// the shortest arc. target is negated when the two lie in opposite hemispheres.
// Nearly identical rotations fall back to a normalized linear interpolation.
func (q Quaternion) Slerp(target Quaternion, alpha float64) Quaternion {
	cosHalfTheta := q.Dot(target)
	if cosHalfTheta < 0 {
		target = Quaternion{-target.X, -target.Y, -target.Z, -target.W}
		cosHalfTheta = -cosHalfTheta
	}

	sqrSinHalfTheta := 1 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta <= Epsilon {
		s := 1 - alpha
		return Quaternion{
			s*q.X + alpha*target.X,
			s*q.Y + alpha*target.Y,
			s*q.Z + alpha*target.Z,
			s*q.W + alpha*target.W,
		}.Normalize()
	}

	sinHalfTheta := math.Sqrt(sqrSinHalfTheta)
	halfTheta := math.Atan2(sinHalfTheta, cosHalfTheta)
	a := math.Sin((1-alpha)*halfTheta) / sinHalfTheta
	b := math.Sin(alpha*halfTheta) / sinHalfTheta

	return Quaternion{
		q.X*a + target.X*b,
		q.Y*a + target.Y*b,
		q.Z*a + target.Z*b,
		q.W*a + target.W*b,
	}
}

// RotateTowards rotates q towards target by at most step radians.
func (q Quaternion) RotateTowards(target Quaternion, step float64) Quaternion {
	angle := q.AngleTo(target)
	if angle == 0 {
		return q
	}
	return q.Slerp(target, math.Min(1, step/angle))
}

// ApproxEqual reports whether every component of q is within eps of o.
func (q Quaternion) ApproxEqual(o Quaternion, eps float64) bool {
	return ApproxEqual(q.X, o.X, eps) && ApproxEqual(q.Y, o.Y, eps) &&
		ApproxEqual(q.Z, o.Z, eps) && ApproxEqual(q.W, o.W, eps)
}

// SameRotation reports whether q and o describe the same rotation, treating q and -q as equal.
func (q Quaternion) SameRotation(o Quaternion, eps float64) bool {
	return q.ApproxEqual(o, eps) || q.ApproxEqual(Quaternion{-o.X, -o.Y, -o.Z, -o.W}, eps)
}

func (q Quaternion) Array() [4]float64 { return [4]float64{q.X, q.Y, q.Z, q.W} }
