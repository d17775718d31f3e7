package linalg

import (
	"math"
	"testing"
)

func TestNewTransform(t *testing.T) {
	tr := NewTransform()

	if tr.Matrix() != Identity4() {
		t.Errorf("identity transform has matrix\n%v", tr.Matrix())
	}
	if got := tr.Point(Vector3{1, 2, 3}); got != (Vector3{1, 2, 3}) {
		t.Errorf("identity transform moved a point to %v", got)
	}
}

func TestTransformPoint_MatchesMatrix(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
	}{
		{
			name: "Translation",
			tr:   Transform{Position: Vector3{1, 2, 3}, Rotation: IdentityQuaternion(), Scale: One3},
		},
		{
			name: "Rotation",
			tr:   Transform{Position: Zero3, Rotation: QuaternionFromAxisAngle(UnitY3, math.Pi/3), Scale: One3},
		},
		{
			name: "Non-uniform scale",
			tr: Transform{
				Position: Vector3{-1, 0, 4},
				Rotation: QuaternionFromEuler(NewEuler(0.2, 0.4, -0.3, ZYX)),
				Scale:    Vector3{1, 2, 3},
			},
		},
	}

	points := []Vector3{Zero3, UnitX3, {1, -2, 0.5}, {10, 10, -10}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.tr.Matrix()
			for _, p := range points {
				if got, expected := tt.tr.Point(p), p.ApplyMatrix4(m); !got.ApproxEqual(expected, eps) {
					t.Errorf("Point(%v) = %v, matrix gives %v", p, got, expected)
				}
			}
		})
	}
}

func TestTransformDirection(t *testing.T) {
	tr := Transform{
		Position: Vector3{100, 100, 100},
		Rotation: QuaternionFromAxisAngle(UnitZ3, math.Pi/2),
		Scale:    Vector3{5, 5, 5},
	}

	if got := tr.Direction(UnitX3); !got.ApproxEqual(UnitY3, eps) {
		t.Errorf("Direction = %v, expected %v", got, UnitY3)
	}
}

func TestTransformFromMatrix(t *testing.T) {
	expected := Transform{
		Position: Vector3{3, -1, 2},
		Rotation: QuaternionFromAxisAngle(Vector3{1, 1, 1}.Normalize(), 0.9),
		Scale:    Vector3{2, 2, 0.5},
	}

	got := TransformFromMatrix(expected.Matrix())

	if !got.Position.ApproxEqual(expected.Position, eps) {
		t.Errorf("Position = %v, expected %v", got.Position, expected.Position)
	}
	if !got.Rotation.SameRotation(expected.Rotation, 1e-9) {
		t.Errorf("Rotation = %v, expected %v", got.Rotation, expected.Rotation)
	}
	if !got.Scale.ApproxEqual(expected.Scale, eps) {
		t.Errorf("Scale = %v, expected %v", got.Scale, expected.Scale)
	}
}

func TestTransformInverse(t *testing.T) {
	tr := Transform{
		Position: Vector3{4, 5, 6},
		Rotation: QuaternionFromEuler(NewEuler(0.5, -0.2, 1.4, XYZ)),
		Scale:    Vector3{2, 2, 2},
	}
	inv := tr.Inverse()

	for _, p := range []Vector3{Zero3, {1, 2, 3}, {-7, 0.5, 2}} {
		if got := inv.Point(tr.Point(p)); !got.ApproxEqual(p, eps) {
			t.Errorf("inverse of %v gave %v", p, got)
		}
	}

	if !inv.Matrix().ApproxEqual(tr.Matrix().Invert(), eps) {
		t.Errorf("inverse transform does not match the inverted matrix")
	}
}
