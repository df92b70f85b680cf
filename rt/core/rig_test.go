package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainComposition(t *testing.T) {
	var c JointChain
	c = c.Append("Shoulder", NewPose(Vector3{}, Vector3{0.2, 1, 0}))
	c = c.Append("Elbow", NewPose(Vector3{}, Vector3{0.4, 0, 0}))
	c = c.Append("Hand", NewPose(Vector3{}, Vector3{0.3, 0, 0}))
	require.NoError(t, c.Validate())

	worlds := c.WorldMatrices()
	require.Len(t, worlds, 3)
	assert.InDelta(t, 0.2, worlds[0].Translation().X, 1e-6)
	assert.Equal(t, float32(1), worlds[0].Translation().Y)

	elbow := worlds[1].Translation()
	assert.InDelta(t, 0.6, elbow.X, 1e-6)
	assert.InDelta(t, 1, elbow.Y, 1e-6)
	assert.InDelta(t, 0, elbow.Z, 1e-6)

	hand := worlds[2].Translation()
	assert.InDelta(t, 0.9, hand.X, 1e-6)
}

func TestChainParentTimesChild(t *testing.T) {
	c := NewArmChain()
	worlds := c.WorldMatrices()
	for i := 1; i < len(c); i++ {
		want := Multiply(worlds[i-1], c[i].Pose.Matrix())
		assert.Equal(t, want, worlds[i], "joint %s", c[i].Name)
	}
	assert.Equal(t, c[0].Pose.Matrix(), worlds[0])
}

func TestChainValidate(t *testing.T) {
	c := JointChain{
		{Name: "a", Parent: -1, Pose: NewPose(Vector3{}, Vector3{})},
		{Name: "b", Parent: 1, Pose: NewPose(Vector3{}, Vector3{1, 0, 0})},
	}
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParent))

	// Out-of-order parents compose as roots.
	worlds := c.WorldMatrices()
	assert.Equal(t, Vector3{1, 0, 0}, worlds[1].Translation())
}

func TestDefaultRig(t *testing.T) {
	r := NewRig()
	require.Len(t, r.Joints, 3)
	assert.Equal(t, "Shoulder", r.Joints[0].Name)
	assert.Equal(t, -1, r.Joints[0].Parent)
	assert.Equal(t, Vector3{0, 1.9, -6.49}, r.Camera.Translate)
	assert.Equal(t, Vector3{1, 1, 1}, r.Joints[2].Pose.Scale)
	require.NoError(t, r.Joints.Validate())
}

func TestRigFrame(t *testing.T) {
	r := NewRig()
	f := r.Frame(DefaultViewConfig())

	require.Len(t, f.JointPositions, 3)
	assert.Equal(t, Vector3{0.2, 1, 0}, f.JointPositions[0])
	for i, p := range f.JointScreen {
		assert.True(t, p.IsFinite(), "joint %d", i)
		assert.True(t, p.X > 0 && p.X < 1280, "joint %d x=%v", i, p.X)
		assert.True(t, p.Y > 0 && p.Y < 720, "joint %d y=%v", i, p.Y)
	}

	// Frames are recomputed from scratch, edits show up immediately.
	r.Field(0, 0).X += 1
	g := r.Frame(DefaultViewConfig())
	assert.InDelta(t, 1.2, g.JointPositions[0].X, 1e-6)
	assert.NotEqual(t, f.JointScreen[2], g.JointScreen[2])
}

func TestRigFrameIgnoresCameraScale(t *testing.T) {
	r := NewRig()
	f := r.Frame(DefaultViewConfig())
	r.Camera.Scale = Vector3{3, 3, 3}
	g := r.Frame(DefaultViewConfig())
	assert.Equal(t, f.ViewProjection, g.ViewProjection)
}

func TestWorldRotationMovesJoints(t *testing.T) {
	r := NewRig()
	f := r.Frame(DefaultViewConfig())
	r.World.Rotate.Y = 0.5
	g := r.Frame(DefaultViewConfig())
	assert.NotEqual(t, f.JointScreen[0], g.JointScreen[0])
	// World positions are unaffected by the orbit pose.
	assert.Equal(t, f.JointPositions, g.JointPositions)
}
