package linalg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidAxisOrder is wrapped by every failure caused by an AxisOrder outside
// the six defined orders.
var ErrInvalidAxisOrder = errors.New("linalg: invalid axis order")

// AxisOrder names the order in which the three elemental rotations of an Euler
// value are composed. For XYZ the rotation matrix is Rx * Ry * Rz: the frame turns
// about X first, then about its rotated Y, then about its rotated Z. Seen from the
// fixed world axes the same matrix turns a vector about Z first.
type AxisOrder uint8

const (
	XYZ AxisOrder = iota
	YXZ
	ZXY
	// ZYX is the yaw/pitch/roll order used by Z-up worlds.
	ZYX
	// YZX is the yaw/pitch/roll order used by Y-up worlds.
	YZX
	XZY
)

// DefaultAxisOrder is the order used by NewEulerDefault.
const DefaultAxisOrder = ZYX

var axisOrderNames = [...]string{
	XYZ: "XYZ",
	YXZ: "YXZ",
	ZXY: "ZXY",
	ZYX: "ZYX",
	YZX: "YZX",
	XZY: "XZY",
}

// AxisOrders lists the six valid orders.
func AxisOrders() []AxisOrder {
	return []AxisOrder{XYZ, YXZ, ZXY, ZYX, YZX, XZY}
}

// Valid reports whether o is one of the six defined orders.
func (o AxisOrder) Valid() bool {
	return int(o) < len(axisOrderNames)
}

func (o AxisOrder) String() string {
	if !o.Valid() {
		return fmt.Sprintf("AxisOrder(%d)", uint8(o))
	}
	return axisOrderNames[o]
}

// ParseAxisOrder parses a case-insensitive order name such as "zyx".
func ParseAxisOrder(s string) (AxisOrder, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range axisOrderNames {
		if n == name {
			return AxisOrder(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAxisOrder, s)
}

// RotationOrder returns the mgl64 order that composes the same rotation. mgl64
// takes its angles in the order they are named, so for ZYX pass (z, y, x) to
// mgl64.AnglesToQuat.
func (o AxisOrder) RotationOrder() mgl64.RotationOrder {
	switch o {
	case XYZ:
		return mgl64.XYZ
	case YXZ:
		return mgl64.YXZ
	case ZXY:
		return mgl64.ZXY
	case ZYX:
		return mgl64.ZYX
	case YZX:
		return mgl64.YZX
	case XZY:
		return mgl64.XZY
	}
	panic(fmt.Errorf("%w: %d", ErrInvalidAxisOrder, uint8(o)))
}

// formulas returns the conversion formulas of o, panicking for an invalid order.
func (o AxisOrder) formulas() *orderFormulas {
	if !o.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidAxisOrder, uint8(o)))
	}
	return &orderTable[o]
}
