package main

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RotationSink receives view rotation updates while an animation runs.
type RotationSink interface {
	SetViewRotation(q rl.Quaternion)
}

// Animation pacing strategies.
const (
	ModeDuration = "duration" // continuous sampling against a wall clock
	ModeFrames   = "frames"   // fixed list of eased samples
)

type AnimatorConfig struct {
	Mode        string
	MaxDuration time.Duration // duration of a full 180° turn; smaller turns scale down
	Step        time.Duration // sleep between duration-mode writes
	MaxFrames   int           // frame count of a full 180° turn
	FrameDelay  time.Duration // sleep between frame-mode writes
}

// Animator rotates a viewport from a start to an end orientation on its own
// goroutine. At most one animation is in flight: Start rejects requests while
// the busy flag is held, and only the worker goroutine releases it.
type Animator struct {
	cfg  AnimatorConfig
	log  *slog.Logger
	busy atomic.Bool
	wg   sync.WaitGroup
}

func NewAnimator(cfg AnimatorConfig, log *slog.Logger) *Animator {
	return &Animator{cfg: cfg, log: log}
}

// Busy reports whether an animation is currently in flight.
func (a *Animator) Busy() bool { return a.busy.Load() }

// Wait blocks until the in-flight animation, if any, has finished.
func (a *Animator) Wait() { a.wg.Wait() }

// Start launches the rotation from begin to end. It returns false without
// side effects when another animation still holds the busy flag.
func (a *Animator) Start(begin, end rl.Quaternion, sink RotationSink) bool {
	if !a.busy.CompareAndSwap(false, true) {
		return false
	}
	a.wg.Add(1)
	go a.run(begin, end, sink)
	return true
}

func (a *Animator) run(begin, end rl.Quaternion, sink RotationSink) {
	defer a.wg.Done()
	// The worker is the sole writer of false. Deferred, so a detached sink
	// still releases the flag.
	defer a.busy.Store(false)

	if sink == nil {
		a.log.Warn("rotation sink detached, skipping animation")
		return
	}

	angle := rotationAngle(begin, end)
	switch a.cfg.Mode {
	case ModeFrames:
		a.runFrames(begin, end, angle, sink)
	default:
		a.runDuration(begin, end, angle, sink)
	}
	a.log.Debug("view rotation finished", "angle", angle)
}

// rotationAngle returns the magnitude of the rotation taking a to b,
// always in [0, pi].
func rotationAngle(a, b rl.Quaternion) float64 {
	diff := rl.QuaternionNormalize(rl.QuaternionMultiply(b, rl.QuaternionInvert(a)))
	w := math.Abs(float64(diff.W))
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}

func (a *Animator) runDuration(begin, end rl.Quaternion, angle float64, sink RotationSink) {
	duration := time.Duration(float64(a.cfg.MaxDuration) * (angle / math.Pi))
	start := time.Now()
	for {
		elapsed := time.Since(start)
		if elapsed > duration {
			break
		}
		f := float32(1.0)
		if duration > 0 {
			f = sCurve(float32(float64(elapsed) / float64(duration)))
		}
		sink.SetViewRotation(rl.QuaternionSlerp(begin, end, f))
		time.Sleep(a.cfg.Step)
	}
	// Land exactly on the target regardless of floating point drift.
	sink.SetViewRotation(end)
}

func (a *Animator) runFrames(begin, end rl.Quaternion, angle float64, sink RotationSink) {
	for i, f := range easeRange(frameCount(angle, a.cfg.MaxFrames)) {
		if i > 0 {
			time.Sleep(a.cfg.FrameDelay)
		}
		sink.SetViewRotation(rl.QuaternionSlerp(begin, end, f))
	}
}

// frameCount scales the full-turn frame budget by the rotation angle.
// A zero-angle turn still gets one frame.
func frameCount(angle float64, maxFrames int) int {
	// The ratio is computed first so a half-turn divides to exactly 1.0.
	n := int(math.Floor(float64(maxFrames) * (angle / math.Pi)))
	if n < 1 {
		n = 1
	}
	return n
}
