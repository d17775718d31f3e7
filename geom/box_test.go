package geom

import (
	"math"
	"testing"

	"github.com/akmonengine/linalg"
)

func unitBox() Box {
	return Box{Min: linalg.Vector3{}, Max: linalg.One3}
}

// =============================================================================
// Box Utility Function Tests
// =============================================================================

func TestBoxOverlaps_Separated(t *testing.T) {
	tests := []struct {
		name string
		box1 Box
		box2 Box
	}{
		{
			name: "Separated on X axis (positive)",
			box1: unitBox(),
			box2: Box{Min: linalg.Vector3{X: 2}, Max: linalg.Vector3{X: 3, Y: 1, Z: 1}},
		},
		{
			name: "Separated on Y axis (negative)",
			box1: unitBox(),
			box2: Box{Min: linalg.Vector3{Y: -2}, Max: linalg.Vector3{X: 1, Y: -1, Z: 1}},
		},
		{
			name: "Separated on Z axis (positive)",
			box1: unitBox(),
			box2: Box{Min: linalg.Vector3{Z: 2}, Max: linalg.Vector3{X: 1, Y: 1, Z: 3}},
		},
		{
			name: "Empty box",
			box1: unitBox(),
			box2: EmptyBox(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.box1.Overlaps(tt.box2) {
				t.Errorf("Boxes should not overlap")
			}
			// Test symmetry
			if tt.box2.Overlaps(tt.box1) {
				t.Errorf("Boxes should not overlap (symmetry test)")
			}
		})
	}
}

func TestBoxOverlaps_Overlapping(t *testing.T) {
	tests := []struct {
		name string
		box1 Box
		box2 Box
	}{
		{
			name: "Identical",
			box1: unitBox(),
			box2: unitBox(),
		},
		{
			name: "Partial overlap",
			box1: unitBox(),
			box2: Box{Min: linalg.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, Max: linalg.Vector3{X: 2, Y: 2, Z: 2}},
		},
		{
			name: "Touching faces",
			box1: unitBox(),
			box2: Box{Min: linalg.Vector3{X: 1}, Max: linalg.Vector3{X: 2, Y: 1, Z: 1}},
		},
		{
			name: "Contained",
			box1: Box{Min: linalg.Vector3{X: -5, Y: -5, Z: -5}, Max: linalg.Vector3{X: 5, Y: 5, Z: 5}},
			box2: unitBox(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.box1.Overlaps(tt.box2) {
				t.Errorf("Boxes should overlap")
			}
			if !tt.box2.Overlaps(tt.box1) {
				t.Errorf("Boxes should overlap (symmetry test)")
			}
		})
	}
}

func TestBoxContainsPoint(t *testing.T) {
	tests := []struct {
		name     string
		point    linalg.Vector3
		expected bool
	}{
		{name: "Center", point: linalg.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, expected: true},
		{name: "Corner", point: linalg.One3, expected: true},
		{name: "On a face", point: linalg.Vector3{X: 0.5, Y: 0, Z: 0.5}, expected: true},
		{name: "Outside on X", point: linalg.Vector3{X: 1.5, Y: 0.5, Z: 0.5}, expected: false},
		{name: "Outside on Z", point: linalg.Vector3{X: 0.5, Y: 0.5, Z: -0.1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unitBox().ContainsPoint(tt.point); got != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestBoxFromPoints(t *testing.T) {
	b := BoxFromPoints(
		linalg.Vector3{X: 1, Y: -2, Z: 3},
		linalg.Vector3{X: -4, Y: 5, Z: 0},
		linalg.Vector3{X: 2, Y: 0, Z: -1},
	)

	if b.Min != (linalg.Vector3{X: -4, Y: -2, Z: -1}) || b.Max != (linalg.Vector3{X: 2, Y: 5, Z: 3}) {
		t.Errorf("BoxFromPoints = %v", b)
	}
	if got := b.Center(); got != (linalg.Vector3{X: -1, Y: 1.5, Z: 1}) {
		t.Errorf("Center = %v", got)
	}
	if got := b.Size(); got != (linalg.Vector3{X: 6, Y: 7, Z: 4}) {
		t.Errorf("Size = %v", got)
	}

	if !BoxFromPoints().IsEmpty() {
		t.Errorf("a box of no points should be empty")
	}
	single := EmptyBox().ExpandByPoint(linalg.One3)
	if single.IsEmpty() || single.Min != linalg.One3 || single.Max != linalg.One3 {
		t.Errorf("expanding an empty box by a point = %v", single)
	}
}

func TestBoxApplyMatrix4(t *testing.T) {
	b := Box{Min: linalg.Vector3{X: -1, Y: -1, Z: -1}, Max: linalg.One3}

	rotated := b.ApplyMatrix4(linalg.RotationZ(math.Pi / 4))
	expected := Box{
		Min: linalg.Vector3{X: -math.Sqrt2, Y: -math.Sqrt2, Z: -1},
		Max: linalg.Vector3{X: math.Sqrt2, Y: math.Sqrt2, Z: 1},
	}
	if !rotated.Min.ApproxEqual(expected.Min, eps) || !rotated.Max.ApproxEqual(expected.Max, eps) {
		t.Errorf("rotated box = %v, expected %v", rotated, expected)
	}

	moved := b.ApplyMatrix4(linalg.Translation3D(linalg.Vector3{X: 10}))
	if moved.Min != (linalg.Vector3{X: 9, Y: -1, Z: -1}) || moved.Max != (linalg.Vector3{X: 11, Y: 1, Z: 1}) {
		t.Errorf("translated box = %v", moved)
	}

	if got := EmptyBox().ApplyMatrix4(linalg.Translation3D(linalg.One3)); !got.IsEmpty() {
		t.Errorf("transforming an empty box should keep it empty, got %v", got)
	}
}
