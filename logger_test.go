package linalg

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLogger_DefaultIsSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	if debugEnabled() {
		t.Errorf("the default logger should not enable debug records")
	}
}

func TestLogger_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		trigger func()
		message string
	}{
		{
			name:    "Singular Matrix4",
			trigger: func() { Scale3D(Vector3{1, 0, 1}).Invert() },
			message: "singular Matrix4",
		},
		{
			name:    "Singular Matrix3",
			trigger: func() { Scale2D(0, 1).Invert() },
			message: "singular Matrix3",
		},
		{
			name:    "Gimbal lock",
			trigger: func() { EulerFromRotationMatrix(RotationFromEuler(NewEuler(0, math.Pi/2, 0, ZYX)), ZYX) },
			message: "gimbal lock",
		},
		{
			name:    "Opposite vectors",
			trigger: func() { QuaternionFromVectors(UnitX3, UnitX3.Negate()) },
			message: "opposite vectors",
		},
		{
			name:    "Flattened decomposition",
			trigger: func() { Scale3D(Vector3{0, 1, 1}).Decompose() },
			message: "flattened Matrix4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureDebug(t)
			tt.trigger()

			if !strings.Contains(buf.String(), tt.message) {
				t.Errorf("log output %q does not mention %q", buf.String(), tt.message)
			}
		})
	}
}

func TestSetLogger_NilRestoresSilence(t *testing.T) {
	buf := captureDebug(t)
	SetLogger(nil)

	Matrix4{}.Invert()
	if buf.Len() != 0 {
		t.Errorf("nothing should be logged after SetLogger(nil), got %q", buf.String())
	}
}
