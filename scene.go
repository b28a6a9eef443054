package main

import rl "github.com/gen2brain/raylib-go/raylib"

// Scene carries the two reference frames a view can align against. The
// cursor frame always exists; the custom transform orientation is optional,
// matching a scene where no custom orientation has been configured.
type Scene struct {
	cursor rl.Matrix
	custom *rl.Matrix
}

func NewScene() *Scene {
	return &Scene{cursor: rl.MatrixIdentity()}
}

func (s *Scene) CursorOrientation() rl.Matrix { return s.cursor }

func (s *Scene) SetCursorOrientation(m rl.Matrix) { s.cursor = m }

// CustomOrientation returns the active custom transform orientation, if any.
func (s *Scene) CustomOrientation() (rl.Matrix, bool) {
	if s.custom == nil {
		return rl.Matrix{}, false
	}
	return *s.custom, true
}

func (s *Scene) SetCustomOrientation(m rl.Matrix) { s.custom = &m }

func (s *Scene) ClearCustomOrientation() { s.custom = nil }
