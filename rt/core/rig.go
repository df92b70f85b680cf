package core

import (
	"errors"
	"fmt"
)

var ErrInvalidParent = errors.New("invalid parent index")

// Pose is a scale / Euler rotation / translation triple.
type Pose struct {
	Scale     Vector3
	Rotate    Vector3
	Translate Vector3
}

func NewPose(rotate, translate Vector3) Pose {
	return Pose{Scale: Vector3{1, 1, 1}, Rotate: rotate, Translate: translate}
}

func (p Pose) Matrix() Matrix4x4 {
	return MakeAffineMatrix(p.Scale, p.Rotate, p.Translate)
}

// Joint is one segment of a chain. Parent is -1 for the root and must
// otherwise point at an earlier joint.
type Joint struct {
	Name   string
	Parent int
	Pose   Pose
}

// JointChain is ordered so every parent precedes its children.
type JointChain []Joint

// Append adds a joint parented to the current last joint.
func (c JointChain) Append(name string, pose Pose) JointChain {
	return append(c, Joint{Name: name, Parent: len(c) - 1, Pose: pose})
}

func (c JointChain) Validate() error {
	for i, j := range c {
		if j.Parent >= i || j.Parent < -1 {
			return fmt.Errorf("joint %d (%s): parent %d: %w", i, j.Name, j.Parent, ErrInvalidParent)
		}
	}
	return nil
}

// WorldMatrices folds the chain from the root: world[i] = world[parent] * local[i].
// A joint with an out-of-order parent is treated as a root.
func (c JointChain) WorldMatrices() []Matrix4x4 {
	worlds := make([]Matrix4x4, len(c))
	for i, j := range c {
		local := j.Pose.Matrix()
		if j.Parent >= 0 && j.Parent < i {
			worlds[i] = Multiply(worlds[j.Parent], local)
		} else {
			worlds[i] = local
		}
	}
	return worlds
}

// NewArmChain returns the shoulder → elbow → hand arm in its initial pose.
func NewArmChain() JointChain {
	var c JointChain
	c = c.Append("Shoulder", NewPose(Vector3{0, 0, -6.8}, Vector3{0.2, 1.0, 0}))
	c = c.Append("Elbow", NewPose(Vector3{0, 0, -1.4}, Vector3{0.4, 0, 0}))
	c = c.Append("Hand", NewPose(Vector3{0, 0, 0}, Vector3{0.3, 0, 0}))
	return c
}

// ViewConfig carries the window-dependent projection and viewport parameters.
type ViewConfig struct {
	Width  int
	Height int
	FovY   float32
	NearZ  float32
	FarZ   float32
}

func DefaultViewConfig() ViewConfig {
	return ViewConfig{Width: 1280, Height: 720, FovY: 0.45, NearZ: 0.1, FarZ: 100}
}

func (v ViewConfig) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

func (v ViewConfig) Projection() Matrix4x4 {
	return MakePerspectiveFovMatrix(v.FovY, v.Aspect(), v.NearZ, v.FarZ)
}

func (v ViewConfig) Viewport() Matrix4x4 {
	return MakeViewportMatrix(0, 0, float32(v.Width), float32(v.Height), 0, 1)
}

// Rig is the editable scene state: a world orbit pose, the camera and the chain.
type Rig struct {
	World  Pose
	Camera Pose
	Joints JointChain
}

func NewRig() *Rig {
	return &Rig{
		World:  NewPose(Vector3{}, Vector3{}),
		Camera: NewPose(Vector3{0.26, 0, 0}, Vector3{0, 1.9, -6.49}),
		Joints: NewArmChain(),
	}
}

// Frame is everything derived from a Rig for one rendered frame.
type Frame struct {
	View           ViewConfig
	ViewProjection Matrix4x4
	Viewport       Matrix4x4
	JointWorlds    []Matrix4x4
	JointPositions []Vector3
	JointScreen    []Vector3
	// Parents mirrors Joint.Parent for drawing bones.
	Parents []int
}

// ComputeFrame derives matrices and joint positions from scratch. Camera and
// world scale are forced to 1.
func ComputeFrame(r *Rig, view ViewConfig) Frame {
	unit := Vector3{1, 1, 1}
	worldMatrix := MakeAffineMatrix(unit, r.World.Rotate, r.World.Translate)
	cameraMatrix := MakeAffineMatrix(unit, r.Camera.Rotate, r.Camera.Translate)
	viewProjection := Multiply(Inverse(worldMatrix), Multiply(Inverse(cameraMatrix), view.Projection()))
	viewport := view.Viewport()

	worlds := r.Joints.WorldMatrices()
	f := Frame{
		View:           view,
		ViewProjection: viewProjection,
		Viewport:       viewport,
		JointWorlds:    worlds,
		JointPositions: make([]Vector3, len(worlds)),
		JointScreen:    make([]Vector3, len(worlds)),
		Parents:        make([]int, len(worlds)),
	}
	for i, w := range worlds {
		f.Parents[i] = r.Joints[i].Parent
		f.JointPositions[i] = w.Translation()
		f.JointScreen[i] = ProjectToScreen(f.JointPositions[i], viewProjection, viewport)
	}
	return f
}

// Frame is ComputeFrame on the receiver.
func (r *Rig) Frame(view ViewConfig) Frame {
	return ComputeFrame(r, view)
}

// Field returns a pointer to one of the editable triples of joint i:
// kind 0 is Translate, 1 Rotate, 2 Scale.
func (r *Rig) Field(joint, kind int) *Vector3 {
	p := &r.Joints[joint].Pose
	switch kind {
	case 0:
		return &p.Translate
	case 1:
		return &p.Rotate
	default:
		return &p.Scale
	}
}
