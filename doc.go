// Package linalg implements fixed-size linear algebra for 3D graphics and simulation.
//
// It provides Vector3, Quaternion, Matrix3, Matrix4 and Euler values together with
// the conversions between the three rotation representations:
//
//	Euler ──RotationFromEuler──▶ Matrix4 ──QuaternionFromRotationMatrix──▶ Quaternion
//	  ▲                            │                                          │
//	  └──EulerFromRotationMatrix───┘◀──────────RotationFromQuaternion─────────┘
//
// All types are plain values. Operations never mutate their receiver; they return a
// new value so that calls chain:
//
//	m := linalg.Identity4().
//		Multiply(linalg.RotationFromEuler(linalg.NewEuler(0, math.Pi/2, 0, linalg.ZYX))).
//		Translate(linalg.Vector3{X: 1})
//
// Matrices are stored column-major, the same layout as mgl64.Mat4, so a Matrix4
// converts to and from github.com/go-gl/mathgl/mgl64 without reordering.
//
// Degenerate inputs are not errors: inverting a singular matrix yields the zero
// matrix, normalizing the zero vector yields the zero vector, and so on. Passing an
// AxisOrder outside the six defined orders is a programming error and panics with
// an error wrapping ErrInvalidAxisOrder.
package linalg
