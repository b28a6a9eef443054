package main

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewport holds the 3D view state shared between the frame loop and the
// animator goroutine, hence the mutex. Rotation follows the usual view
// convention: the view looks down its local -Z with +Y up.
type Viewport struct {
	mu           sync.Mutex
	rotation     rl.Quaternion
	orthographic bool
}

func NewViewport() *Viewport {
	return &Viewport{rotation: rl.QuaternionIdentity()}
}

// SetViewRotation implements RotationSink.
func (v *Viewport) SetViewRotation(q rl.Quaternion) {
	v.mu.Lock()
	v.rotation = q
	v.mu.Unlock()
}

func (v *Viewport) ViewRotation() rl.Quaternion {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rotation
}

// SetOrthographic switches the projection used from the next frame on.
func (v *Viewport) SetOrthographic() {
	v.mu.Lock()
	v.orthographic = true
	v.mu.Unlock()
}

func (v *Viewport) Orthographic() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.orthographic
}

// Camera derives the raylib camera for the current view state, orbiting the
// origin at the given distance.
func (v *Viewport) Camera(distance float32) rl.Camera3D {
	v.mu.Lock()
	q := v.rotation
	ortho := v.orthographic
	v.mu.Unlock()

	forward := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, -1), q)
	up := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), q)

	proj := rl.CameraPerspective
	fovy := float32(45)
	if ortho {
		proj = rl.CameraOrthographic
		fovy = 10 // for orthographic this is the world-space view height
	}
	return rl.Camera3D{
		Position:   rl.Vector3Scale(forward, -distance),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         up,
		Fovy:       fovy,
		Projection: proj,
	}
}
