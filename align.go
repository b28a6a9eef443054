package main

import (
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewpoint is one of the six canonical view directions.
type Viewpoint int

const (
	Top Viewpoint = iota
	Bottom
	Front
	Back
	Right
	Left
)

func (v Viewpoint) String() string {
	switch v {
	case Bottom:
		return "bottom"
	case Front:
		return "front"
	case Back:
		return "back"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "top"
	}
}

// AlignSource selects the reference frame a viewpoint is composed against.
type AlignSource int

const (
	SourceCustom AlignSource = iota
	SourceCursor
)

func (s AlignSource) String() string {
	if s == SourceCursor {
		return "cursor"
	}
	return "custom"
}

// AlignResult tells the three observable outcomes of an align request apart.
type AlignResult int

const (
	AlignSkipped   AlignResult = iota // dropped: busy, no viewport, or no source
	AlignSnapped                      // target written immediately
	AlignAnimating                    // animation launched
)

// mul returns the math product a*b, i.e. b applied first. raylib's
// MatrixMultiply composes the other way around (left argument applied first).
func mul(a, b rl.Matrix) rl.Matrix {
	return rl.MatrixMultiply(b, a)
}

// viewpointMatrix returns the fixed rotation for a viewpoint, composed from
// local-axis rotations, X first.
func viewpointMatrix(v Viewpoint) rl.Matrix {
	const quarter = math.Pi / 2
	switch v {
	case Bottom:
		return rl.MatrixRotateX(math.Pi)
	case Front:
		return rl.MatrixRotateX(quarter)
	case Back:
		return mul(rl.MatrixRotateX(quarter), rl.MatrixRotateY(math.Pi))
	case Right:
		return mul(rl.MatrixRotateX(quarter), rl.MatrixRotateY(quarter))
	case Left:
		return mul(rl.MatrixRotateX(quarter), rl.MatrixRotateY(-quarter))
	default: // Top
		return rl.MatrixIdentity()
	}
}

// Aligner computes target orientations and hands them to the viewport,
// either as an instant snap or through the animator.
type Aligner struct {
	scene  *Scene
	view   *Viewport
	anim   *Animator
	log    *slog.Logger
	Smooth bool
}

func NewAligner(scene *Scene, view *Viewport, anim *Animator, smooth bool, log *slog.Logger) *Aligner {
	return &Aligner{scene: scene, view: view, anim: anim, Smooth: smooth, log: log}
}

// Align orients the viewport so the chosen viewpoint faces the chosen
// reference frame. Requests that cannot proceed are dropped, not queued:
// an animation already in flight, a missing viewport, or a custom source
// without an active custom orientation all yield AlignSkipped.
func (al *Aligner) Align(vp Viewpoint, src AlignSource) AlignResult {
	if al.view == nil || al.anim.Busy() {
		return AlignSkipped
	}

	var source rl.Matrix
	switch src {
	case SourceCursor:
		source = al.scene.CursorOrientation()
	default:
		m, ok := al.scene.CustomOrientation()
		if !ok {
			al.log.Debug("align dropped, no custom orientation", "viewpoint", vp)
			return AlignSkipped
		}
		source = m
	}

	target := rl.QuaternionNormalize(rl.QuaternionFromMatrix(mul(source, viewpointMatrix(vp))))

	al.view.SetOrthographic()

	if !al.Smooth {
		al.view.SetViewRotation(target)
		al.log.Info("view aligned", "viewpoint", vp, "source", src)
		return AlignSnapped
	}

	if !al.anim.Start(al.view.ViewRotation(), target, al.view) {
		// Lost the race against a request that slipped in after the Busy check.
		return AlignSkipped
	}
	al.log.Info("view rotation started", "viewpoint", vp, "source", src)
	return AlignAnimating
}
