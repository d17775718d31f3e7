package linalg

// Transform is a position, rotation and scale applied in the order scale, rotate,
// translate. It has no parent: composing transforms is done through their matrices.
type Transform struct {
	Position Vector3
	Rotation Quaternion
	Scale    Vector3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: Vector3{0, 0, 0},
		Rotation: IdentityQuaternion(),
		Scale:    One3,
	}
}

// TransformFromMatrix decomposes m into a Transform.
func TransformFromMatrix(m Matrix4) Transform {
	p, r, s := m.Decompose()
	return Transform{Position: p, Rotation: r, Scale: s}
}

// Matrix returns the matrix composing t.
func (t Transform) Matrix() Matrix4 {
	return Compose(t.Position, t.Rotation, t.Scale)
}

// Point maps a point from local to world space.
func (t Transform) Point(v Vector3) Vector3 {
	return v.Mul(t.Scale).ApplyQuaternion(t.Rotation).Add(t.Position)
}

// Direction rotates v, ignoring position and scale.
func (t Transform) Direction(v Vector3) Vector3 {
	return v.ApplyQuaternion(t.Rotation)
}

// Inverse returns the transform undoing t. It is exact when the scale is uniform;
// otherwise rotation and non-uniform scale do not commute and the result is only
// an approximation, use t.Matrix().Invert() instead.
func (t Transform) Inverse() Transform {
	inverseRotation := t.Rotation.Invert()
	inverseScale := One3.Div(t.Scale)

	return Transform{
		Position: t.Position.Negate().ApplyQuaternion(inverseRotation).Mul(inverseScale),
		Rotation: inverseRotation,
		Scale:    inverseScale,
	}
}
