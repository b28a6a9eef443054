package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 800
	panelHeight  = 96
	camDistance  = 12.0
	spinSpeed    = 1.2 // rad/s while a spin key is held
)

func main() {
	runtime.LockOSThread() // <-- must be first on macOS

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, _ := parseLogLevel(cfg.Logging.Level)
	logger := setupLogger(level)

	rl.InitWindow(int32(screenWidth), int32(screenHeight), "viewsnap")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	scene := NewScene()
	view := NewViewport()
	anim := NewAnimator(cfg.ToAnimatorConfig(), logger)
	aligner := NewAligner(scene, view, anim, cfg.Smooth, logger)

	logger.Info("viewsnap ready", "smooth", cfg.Smooth, "mode", cfg.Animation.Mode)

	// Demo reference frames to align against; spun interactively so the
	// alignment is visible.
	cursorAngle := float32(0.5)
	customAngle := float32(0.8)
	customActive := true
	srcActive := int32(SourceCustom)

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		// Spin the reference frames
		if rl.IsKeyDown(rl.KeyQ) {
			cursorAngle -= spinSpeed * dt
		}
		if rl.IsKeyDown(rl.KeyE) {
			cursorAngle += spinSpeed * dt
		}
		if rl.IsKeyDown(rl.KeyA) {
			customAngle -= spinSpeed * dt
		}
		if rl.IsKeyDown(rl.KeyD) {
			customAngle += spinSpeed * dt
		}
		if rl.IsKeyPressed(rl.KeyC) {
			customActive = !customActive
		}

		scene.SetCursorOrientation(rl.MatrixRotateZ(cursorAngle))
		if customActive {
			scene.SetCustomOrientation(rl.MatrixRotateY(customAngle))
		} else {
			scene.ClearCustomOrientation()
		}

		// Numpad keymap: 7/1/3 against the custom orientation, 8/5/6 against
		// the cursor, Ctrl for the opposite side.
		ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		align := func(plain, flipped Viewpoint, src AlignSource) {
			if ctrl {
				aligner.Align(flipped, src)
			} else {
				aligner.Align(plain, src)
			}
		}
		if rl.IsKeyPressed(rl.KeyKp7) {
			align(Top, Bottom, SourceCustom)
		}
		if rl.IsKeyPressed(rl.KeyKp1) {
			align(Front, Back, SourceCustom)
		}
		if rl.IsKeyPressed(rl.KeyKp3) {
			align(Right, Left, SourceCustom)
		}
		if rl.IsKeyPressed(rl.KeyKp8) {
			align(Top, Bottom, SourceCursor)
		}
		if rl.IsKeyPressed(rl.KeyKp5) {
			align(Front, Back, SourceCursor)
		}
		if rl.IsKeyPressed(rl.KeyKp6) {
			align(Right, Left, SourceCursor)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 24, 28, 255))

		rl.BeginMode3D(view.Camera(camDistance))
		drawScene(scene)
		rl.EndMode3D()

		// --- HUD panel ---
		py := int32(screenHeight - panelHeight)
		rl.DrawRectangle(0, py, screenWidth, panelHeight, hudBG)
		drawHairlineX(0, screenWidth, py)

		bx := float32(16)
		for _, vp := range []Viewpoint{Top, Bottom, Front, Back, Right, Left} {
			if gui.Button(rl.NewRectangle(bx, float32(py)+12, 86, 28), vp.String()) {
				aligner.Align(vp, AlignSource(srcActive))
			}
			bx += 94
		}

		srcActive = gui.ToggleGroup(rl.NewRectangle(16, float32(py)+52, 120, 28), "custom;cursor", srcActive)
		aligner.Smooth = gui.CheckBox(rl.NewRectangle(300, float32(py)+56, 20, 20), "Smooth rotation", aligner.Smooth)

		rl.DrawText("mode: "+cfg.Animation.Mode, 470, py+58, 14, hudText)
		rl.DrawText("Q/E spin cursor  A/D spin custom  C toggle custom  KP7/1/3 custom  KP8/5/6 cursor  Ctrl flips", 12, 10, 14, hudSub)
		if anim.Busy() {
			rl.DrawText("Rotating...", screenWidth-130, py+16, 20, hudAccent)
		}
		if !customActive {
			rl.DrawText("no custom orientation", screenWidth-240, py+44, 16, hudSub)
		}

		rl.EndDrawing()
	}

	anim.Wait()
}
