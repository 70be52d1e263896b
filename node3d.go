package tweener

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Node3D is a minimal transform hierarchy implementing Transform. Local
// rotation is stored as a quaternion; Euler angles are in degrees and follow
// the Y-X-Z convention common to game engines (yaw, then pitch, then roll in
// the rotated frame).
type Node3D struct {
	Name   string
	Parent *Node3D

	position mgl64.Vec3
	rotation mgl64.Quat
	scale    mgl64.Vec3
	disposed bool
}

// NewNode3D creates a node at the origin with identity rotation and unit scale.
func NewNode3D(name string) *Node3D {
	return &Node3D{
		Name:     name,
		rotation: mgl64.QuatIdent(),
		scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Dispose marks the node destroyed. Tweens on it finish on their next tick.
func (n *Node3D) Dispose() {
	n.disposed = true
	n.Parent = nil
}

// Alive reports whether the node has not been disposed.
func (n *Node3D) Alive() bool {
	return n != nil && !n.disposed
}

// LocalMatrix returns translation * rotation * scale in parent space.
func (n *Node3D) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.position[0], n.position[1], n.position[2])
	s := mgl64.Scale3D(n.scale[0], n.scale[1], n.scale[2])
	return t.Mul4(n.rotation.Mat4()).Mul4(s)
}

// WorldMatrix returns the node's transform in world space.
func (n *Node3D) WorldMatrix() mgl64.Mat4 {
	if n.Parent == nil {
		return n.LocalMatrix()
	}
	return n.Parent.WorldMatrix().Mul4(n.LocalMatrix())
}

func (n *Node3D) worldRotation() mgl64.Quat {
	if n.Parent == nil {
		return n.rotation
	}
	return n.Parent.worldRotation().Mul(n.rotation)
}

// Position returns the node's position in the given space.
func (n *Node3D) Position(space Space) mgl64.Vec3 {
	if space == SpaceLocal || n.Parent == nil {
		return n.position
	}
	return n.Parent.WorldMatrix().Mul4x1(n.position.Vec4(1)).Vec3()
}

// SetPosition moves the node so that its position in space equals p.
func (n *Node3D) SetPosition(space Space, p mgl64.Vec3) {
	if space == SpaceLocal || n.Parent == nil {
		n.position = p
		return
	}
	inv := n.Parent.WorldMatrix().Inv()
	n.position = inv.Mul4x1(p.Vec4(1)).Vec3()
}

// EulerAngles returns the node's rotation in degrees, each in [0, 360).
func (n *Node3D) EulerAngles(space Space) mgl64.Vec3 {
	if space == SpaceLocal {
		return quatToEuler(n.rotation)
	}
	return quatToEuler(n.worldRotation())
}

// SetEulerAngles sets the node's rotation in space from degrees.
func (n *Node3D) SetEulerAngles(space Space, e mgl64.Vec3) {
	q := eulerToQuat(e)
	if space == SpaceWorld && n.Parent != nil {
		q = n.Parent.worldRotation().Inverse().Mul(q)
	}
	n.rotation = q.Normalize()
}

// LocalScale returns the node's scale relative to its parent.
func (n *Node3D) LocalScale() mgl64.Vec3 {
	return n.scale
}

// SetLocalScale sets the node's scale relative to its parent.
func (n *Node3D) SetLocalScale(s mgl64.Vec3) {
	n.scale = s
}

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// eulerToQuat builds Ry * Rx * Rz from angles in degrees.
func eulerToQuat(e mgl64.Vec3) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(e[0]), axisX)
	qy := mgl64.QuatRotate(mgl64.DegToRad(e[1]), axisY)
	qz := mgl64.QuatRotate(mgl64.DegToRad(e[2]), axisZ)
	return qy.Mul(qx).Mul(qz)
}

// quatToEuler inverts eulerToQuat. At +-90 degrees pitch the yaw and roll
// axes coincide and the whole turn is reported as yaw.
func quatToEuler(q mgl64.Quat) mgl64.Vec3 {
	m := q.Normalize().Mat4()
	sinX := -m.At(1, 2)
	var x, y, z float64
	if math.Abs(sinX) > 0.999999 {
		x = math.Copysign(math.Pi/2, sinX)
		y = math.Atan2(-m.At(2, 0), m.At(0, 0))
	} else {
		x = math.Asin(sinX)
		y = math.Atan2(m.At(0, 2), m.At(2, 2))
		z = math.Atan2(m.At(1, 0), m.At(1, 1))
	}
	return mgl64.Vec3{wrapDegrees(mgl64.RadToDeg(x)), wrapDegrees(mgl64.RadToDeg(y)), wrapDegrees(mgl64.RadToDeg(z))}
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360-1e-9 {
		d = 0
	}
	return d
}
