package linalg

import "math"

// gimbalThreshold is the magnitude of the asin entry at or above which two
// rotation axes are considered aligned.
const gimbalThreshold = 1 - Epsilon

type halfAngles struct {
	sx, cx, sy, cy, sz, cz float64
}

// orderFormulas holds the closed-form conversions of one axis order. The sign
// patterns differ for every order, so each arm is written out in full.
type orderFormulas struct {
	// matrix returns the rotation for the angles x, y, z.
	matrix func(x, y, z float64) Matrix3
	// quaternion returns the rotation from the sines and cosines of the half angles.
	quaternion func(h halfAngles) Quaternion
	// extract recovers the angles from a pure rotation. locked reports that the
	// asin entry reached the gimbal threshold and one angle was set to zero.
	extract func(m Matrix3) (x, y, z float64, locked bool)
}

func sincos3(x, y, z float64) (a, b, c, d, e, f float64) {
	b, a = math.Sincos(x)
	d, c = math.Sincos(y)
	f, e = math.Sincos(z)
	return
}

var orderTable = [...]orderFormulas{
	XYZ: {
		matrix: func(x, y, z float64) Matrix3 {
			a, b, c, d, e, f := sincos3(x, y, z)
			ae, af, be, bf := a*e, a*f, b*e, b*f
			return NewMatrix3(
				c*e, -c*f, d,
				af+be*d, ae-bf*d, -b*c,
				bf-ae*d, be+af*d, a*c,
			)
		},
		quaternion: func(h halfAngles) Quaternion {
			return Quaternion{
				X: h.sx*h.cy*h.cz + h.cx*h.sy*h.sz,
				Y: h.cx*h.sy*h.cz - h.sx*h.cy*h.sz,
				Z: h.cx*h.cy*h.sz + h.sx*h.sy*h.cz,
				W: h.cx*h.cy*h.cz - h.sx*h.sy*h.sz,
			}
		},
		extract: func(m Matrix3) (x, y, z float64, locked bool) {
			m11, m12, m13 := m[0], m[3], m[6]
			m22, m23 := m[4], m[7]
			m32, m33 := m[5], m[8]

			y = math.Asin(Clamp(m13, -1, 1))
			if math.Abs(m13) < gimbalThreshold {
				x = math.Atan2(-m23, m33)
				z = math.Atan2(-m12, m11)
				return x, y, z, false
			}
			x = math.Atan2(m32, m22)
			return x, y, 0, true
		},
	},
	YXZ: {
		matrix: func(x, y, z float64) Matrix3 {
			a, b, c, d, e, f := sincos3(x, y, z)
			ce, cf, de, df := c*e, c*f, d*e, d*f
			return NewMatrix3(
				ce+df*b, de*b-cf, a*d,
				a*f, a*e, -b,
				cf*b-de, df+ce*b, a*c,
			)
		},
		quaternion: func(h halfAngles) Quaternion {
			return Quaternion{
				X: h.sx*h.cy*h.cz + h.cx*h.sy*h.sz,
				Y: h.cx*h.sy*h.cz - h.sx*h.cy*h.sz,
				Z: h.cx*h.cy*h.sz - h.sx*h.sy*h.cz,
				W: h.cx*h.cy*h.cz + h.sx*h.sy*h.sz,
			}
		},
		extract: func(m Matrix3) (x, y, z float64, locked bool) {
			m11, m13 := m[0], m[6]
			m21, m22, m23 := m[1], m[4], m[7]
			m31, m33 := m[2], m[8]

			x = math.Asin(-Clamp(m23, -1, 1))
			if math.Abs(m23) < gimbalThreshold {
				y = math.Atan2(m13, m33)
				z = math.Atan2(m21, m22)
				return x, y, z, false
			}
			y = math.Atan2(-m31, m11)
			return x, y, 0, true
		},
	},
	ZXY: {
		matrix: func(x, y, z float64) Matrix3 {
			a, b, c, d, e, f := sincos3(x, y, z)
			ce, cf, de, df := c*e, c*f, d*e, d*f
			return NewMatrix3(
				ce-df*b, -a*f, de+cf*b,
				cf+de*b, a*e, df-ce*b,
				-a*d, b, a*c,
			)
		},
		quaternion: func(h halfAngles) Quaternion {
			return Quaternion{
				X: h.sx*h.cy*h.cz - h.cx*h.sy*h.sz,
				Y: h.cx*h.sy*h.cz + h.sx*h.cy*h.sz,
				Z: h.cx*h.cy*h.sz + h.sx*h.sy*h.cz,
				W: h.cx*h.cy*h.cz - h.sx*h.sy*h.sz,
			}
		},
		extract: func(m Matrix3) (x, y, z float64, locked bool) {
			m11, m12 := m[0], m[3]
			m21, m22 := m[1], m[4]
			m31, m32, m33 := m[2], m[5], m[8]

			x = math.Asin(Clamp(m32, -1, 1))
			if math.Abs(m32) < gimbalThreshold {
				y = math.Atan2(-m31, m33)
				z = math.Atan2(-m12, m22)
				return x, y, z, false
			}
			z = math.Atan2(m21, m11)
			return x, 0, z, true
		},
	},
	ZYX: {
		matrix: func(x, y, z float64) Matrix3 {
			a, b, c, d, e, f := sincos3(x, y, z)
			ae, af, be, bf := a*e, a*f, b*e, b*f
			return NewMatrix3(
				c*e, be*d-af, ae*d+bf,
				c*f, bf*d+ae, af*d-be,
				-d, b*c, a*c,
			)
		},
		quaternion: func(h halfAngles) Quaternion {
			return Quaternion{
				X: h.sx*h.cy*h.cz - h.cx*h.sy*h.sz,
				Y: h.cx*h.sy*h.cz + h.sx*h.cy*h.sz,
				Z: h.cx*h.cy*h.sz - h.sx*h.sy*h.cz,
				W: h.cx*h.cy*h.cz + h.sx*h.sy*h.sz,
			}
		},
		extract: func(m Matrix3) (x, y, z float64, locked bool) {
			m11, m12 := m[0], m[3]
			m21, m22 := m[1], m[4]
			m31, m32, m33 := m[2], m[5], m[8]

			y = math.Asin(-Clamp(m31, -1, 1))
			if math.Abs(m31) < gimbalThreshold {
				x = math.Atan2(m32, m33)
				z = math.Atan2(m21, m11)
				return x, y, z, false
			}
			z = math.Atan2(-m12, m22)
			return 0, y, z, true
		},
	},
	YZX: {
		matrix: func(x, y, z float64) Matrix3 {
			a, b, c, d, e, f := sincos3(x, y, z)
			ac, ad, bc, bd := a*c, a*d, b*c, b*d
			return NewMatrix3(
				c*e, bd-ac*f, bc*f+ad,
				f, a*e, -b*e,
				-d*e, ad*f+bc, ac-bd*f,
			)
		},
		quaternion: func(h halfAngles) Quaternion {
			return Quaternion{
				X: h.sx*h.cy*h.cz + h.cx*h.sy*h.sz,
				Y: h.cx*h.sy*h.cz + h.sx*h.cy*h.sz,
				Z: h.cx*h.cy*h.sz - h.sx*h.sy*h.cz,
				W: h.cx*h.cy*h.cz - h.sx*h.sy*h.sz,
			}
		},
		extract: func(m Matrix3) (x, y, z float64, locked bool) {
			m11, m13 := m[0], m[6]
			m21, m22, m23 := m[1], m[4], m[7]
			m31, m33 := m[2], m[8]

			z = math.Asin(Clamp(m21, -1, 1))
			if math.Abs(m21) < gimbalThreshold {
				x = math.Atan2(-m23, m22)
				y = math.Atan2(-m31, m11)
				return x, y, z, false
			}
			y = math.Atan2(m13, m33)
			return 0, y, z, true
		},
	},
	XZY: {
		matrix: func(x, y, z float64) Matrix3 {
			a, b, c, d, e, f := sincos3(x, y, z)
			ac, ad, bc, bd := a*c, a*d, b*c, b*d
			return NewMatrix3(
				c*e, -f, d*e,
				ac*f+bd, a*e, ad*f-bc,
				bc*f-ad, b*e, bd*f+ac,
			)
		},
		quaternion: func(h halfAngles) Quaternion {
			return Quaternion{
				X: h.sx*h.cy*h.cz - h.cx*h.sy*h.sz,
				Y: h.cx*h.sy*h.cz - h.sx*h.cy*h.sz,
				Z: h.cx*h.cy*h.sz + h.sx*h.sy*h.cz,
				W: h.cx*h.cy*h.cz + h.sx*h.sy*h.sz,
			}
		},
		extract: func(m Matrix3) (x, y, z float64, locked bool) {
			m11, m12, m13 := m[0], m[3], m[6]
			m22, m23 := m[4], m[7]
			m32, m33 := m[5], m[8]

			z = math.Asin(-Clamp(m12, -1, 1))
			if math.Abs(m12) < gimbalThreshold {
				x = math.Atan2(m32, m22)
				y = math.Atan2(m13, m11)
				return x, y, z, false
			}
			x = math.Atan2(-m23, m33)
			return x, 0, z, true
		},
	},
}
