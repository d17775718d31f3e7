package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/akmonengine/linalg"
	"github.com/akmonengine/linalg/geom"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/text/language"
)

// printConversions walks one Euler value around the conversion triangle
func printConversions(e linalg.Euler) {
	m := linalg.RotationFromEuler(e)
	q := linalg.QuaternionFromRotationMatrix(m)
	back := linalg.EulerFromQuaternion(q, e.Order)

	fmt.Printf("%v\n", e)
	fmt.Printf("   quaternion: %v\n", q)
	fmt.Printf("   back:       %v\n", back)
	fmt.Printf("   match:      %v\n", back.ApproxEqual(e, 1e-9))
}

// SetupLogging routes the library's debug records to stderr
func SetupLogging() {
	linalg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func main() {
	SetupLogging()
	defer linalg.SetLogger(nil)

	fmt.Println("=== Round trips ===")
	for _, order := range linalg.AxisOrders() {
		printConversions(linalg.NewEuler(0.3, -0.5, 1.2, order))
	}

	fmt.Println("\n=== Gimbal lock ===")
	locked := linalg.NewEuler(0.4, math.Pi/2, 0.2, linalg.ZYX)
	recovered := linalg.EulerFromRotationMatrix(linalg.RotationFromEuler(locked), linalg.ZYX)
	fmt.Printf("   input:     %v\n", locked)
	fmt.Printf("   recovered: %v\n", recovered)
	fmt.Printf("   same rotation: %v\n",
		linalg.RotationFromEuler(recovered).ApproxEqual(linalg.RotationFromEuler(locked), 1e-9))

	fmt.Println("\n=== Reorder ===")
	yawPitchRoll := linalg.NewEulerDefault(0.1, 0.2, 0.3)
	fmt.Printf("   %v -> %v\n", yawPitchRoll, yawPitchRoll.Reorder(linalg.YZX))

	fmt.Println("\n=== mathgl interop ===")
	view := mgl64.LookAtV(mgl64.Vec3{3, 3, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	camera := linalg.Matrix4FromMat4(view).Invert()
	position, rotation, _ := camera.Decompose()
	fmt.Printf("   camera position: %v\n", position)
	fmt.Printf("   camera rotation: %v\n", linalg.EulerFromQuaternion(rotation, linalg.YXZ))

	fmt.Println("\n=== Geometry ===")
	tri := geom.NewTriangle(
		linalg.Vector3{},
		linalg.Vector3{X: 2},
		linalg.Vector3{Y: 2},
	)
	tri = geom.NewTriangle(
		tri.A.ApplyEuler(locked),
		tri.B.ApplyEuler(locked),
		tri.C.ApplyEuler(locked),
	)
	p := linalg.Vector3{X: 1, Y: 1, Z: 1}
	fmt.Printf("   %v\n", tri)
	fmt.Printf("   area:          %v\n", tri.Area())
	fmt.Printf("   closest point: %v\n", tri.ClosestPoint(p))
	fmt.Printf("   bounds:        %v\n", tri.Bounds())

	degenerate := geom.NewTriangle(linalg.Vector3{}, linalg.One3, linalg.One3.Scale(2))
	if _, ok := degenerate.Barycoord(p); !ok {
		fmt.Printf("   %v is degenerate\n", degenerate)
	}

	fmt.Println("\n=== Localized output ===")
	de := linalg.NewFormatter(language.German, linalg.WithPrecision(3))
	fmt.Printf("   %s\n", de.Euler(locked))
	fmt.Printf("   %s\n", tri.Plane().Localized(de))
	fmt.Printf("   %s\n", de.Matrix3(linalg.NormalMatrix(linalg.Scale3D(linalg.Vector3{X: 1, Y: 2, Z: 4}))))
}
