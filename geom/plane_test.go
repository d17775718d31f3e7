package geom

import (
	"math"
	"testing"

	"github.com/akmonengine/linalg"
)

const eps = 1e-9

var groundPlane = Plane{Normal: linalg.UnitZ3, Constant: 0}

func TestPlaneFromCoplanarPoints(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  linalg.Vector3
		expected Plane
	}{
		{
			name:     "Counter-clockwise in XY",
			a:        linalg.Vector3{},
			b:        linalg.Vector3{X: 1},
			c:        linalg.Vector3{Y: 1},
			expected: groundPlane,
		},
		{
			name:     "Clockwise flips the normal",
			a:        linalg.Vector3{},
			b:        linalg.Vector3{Y: 1},
			c:        linalg.Vector3{X: 1},
			expected: Plane{Normal: linalg.Vector3{Z: -1}, Constant: 0},
		},
		{
			name:     "Offset plane",
			a:        linalg.Vector3{X: 0, Y: 0, Z: 2},
			b:        linalg.Vector3{X: 1, Y: 0, Z: 2},
			c:        linalg.Vector3{X: 0, Y: 1, Z: 2},
			expected: Plane{Normal: linalg.UnitZ3, Constant: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaneFromCoplanarPoints(tt.a, tt.b, tt.c)
			if !got.ApproxEqual(tt.expected, eps) {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
			for _, p := range []linalg.Vector3{tt.a, tt.b, tt.c} {
				if d := got.DistanceToPoint(p); math.Abs(d) > eps {
					t.Errorf("point %v is at distance %v from its own plane", p, d)
				}
			}
		})
	}
}

func TestPlaneDistanceAndProjection(t *testing.T) {
	p := PlaneFromNormalAndCoplanarPoint(linalg.UnitZ3, linalg.Vector3{X: 4, Y: 4, Z: 1})

	if p.Constant != -1 {
		t.Errorf("Constant = %v, expected -1", p.Constant)
	}
	if got := p.DistanceToPoint(linalg.Vector3{X: 3, Y: -2, Z: 6}); got != 5 {
		t.Errorf("DistanceToPoint = %v, expected 5", got)
	}
	if got := p.DistanceToPoint(linalg.Vector3{Z: -1}); got != -2 {
		t.Errorf("DistanceToPoint below = %v, expected -2", got)
	}
	if got := p.ProjectPoint(linalg.Vector3{X: 2, Y: 3, Z: 5}); !got.ApproxEqual(linalg.Vector3{X: 2, Y: 3, Z: 1}, eps) {
		t.Errorf("ProjectPoint = %v", got)
	}
	if got := p.CoplanarPoint(); got != (linalg.Vector3{Z: 1}) {
		t.Errorf("CoplanarPoint = %v", got)
	}
}

func TestPlaneNormalizeNegate(t *testing.T) {
	p := Plane{Normal: linalg.Vector3{Z: 2}, Constant: 4}

	if got := p.Normalize(); !got.ApproxEqual(Plane{Normal: linalg.UnitZ3, Constant: 2}, eps) {
		t.Errorf("Normalize = %v", got)
	}

	n := p.Normalize().Negate()
	if !n.ApproxEqual(Plane{Normal: linalg.Vector3{Z: -1}, Constant: -2}, eps) {
		t.Errorf("Negate = %v", n)
	}
	point := linalg.Vector3{X: 1, Y: 1, Z: -2}
	if n.DistanceToPoint(point) != 0 || p.Normalize().DistanceToPoint(point) != 0 {
		t.Errorf("negating a plane should keep its points")
	}
}

func TestPlaneTranslate(t *testing.T) {
	p := groundPlane.Translate(linalg.Vector3{X: 5, Y: -1, Z: 3})

	if d := p.DistanceToPoint(linalg.Vector3{X: 7, Y: 7, Z: 3}); math.Abs(d) > eps {
		t.Errorf("translated plane misses the moved point, distance %v", d)
	}
	if p.Constant != -3 {
		t.Errorf("Constant = %v, expected -3", p.Constant)
	}
}

func TestPlaneApplyMatrix4(t *testing.T) {
	tests := []struct {
		name     string
		plane    Plane
		m        linalg.Matrix4
		expected Plane
	}{
		{
			name:     "Translation",
			plane:    groundPlane,
			m:        linalg.Translation3D(linalg.Vector3{Z: 2}),
			expected: Plane{Normal: linalg.UnitZ3, Constant: -2},
		},
		{
			name:     "Rotation",
			plane:    groundPlane,
			m:        linalg.RotationX(math.Pi / 2),
			expected: Plane{Normal: linalg.Vector3{Y: -1}, Constant: 0},
		},
		{
			name:     "Non-uniform scale",
			plane:    Plane{Normal: linalg.UnitZ3, Constant: -1},
			m:        linalg.Scale3D(linalg.Vector3{X: 1, Y: 1, Z: 2}),
			expected: Plane{Normal: linalg.UnitZ3, Constant: -2},
		},
		{
			name:     "Tilted plane under non-uniform scale",
			plane:    PlaneFromNormalAndCoplanarPoint(linalg.Vector3{X: 1, Y: 1}.Normalize(), linalg.Vector3{X: 1}),
			m:        linalg.Scale3D(linalg.Vector3{X: 2, Y: 1, Z: 1}),
			expected: PlaneFromNormalAndCoplanarPoint(linalg.Vector3{X: 1, Y: 2}.Normalize(), linalg.Vector3{X: 2}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.plane.ApplyMatrix4(tt.m)
			if !got.ApproxEqual(tt.expected, eps) {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}

			withNormal := tt.plane.ApplyMatrix4WithNormal(tt.m, linalg.NormalMatrix(tt.m))
			if !withNormal.ApproxEqual(got, 0) {
				t.Errorf("ApplyMatrix4WithNormal = %v, ApplyMatrix4 = %v", withNormal, got)
			}
		})
	}
}

func TestPlaneString(t *testing.T) {
	p := Plane{Normal: linalg.UnitZ3, Constant: -3}
	if got := p.String(); got != "plane<vec3<0, 0, 1>, -3>" {
		t.Errorf("String = %q", got)
	}
}
