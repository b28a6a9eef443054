package main

import rl "github.com/gen2brain/raylib-go/raylib"

// --- HUD palette ---
var hudBG = rl.NewColor(22, 22, 26, 235)       // dark, slightly translucent
var hudLine = rl.NewColor(255, 255, 255, 30)   // hairlines
var hudText = rl.NewColor(235, 235, 238, 255)  // main text
var hudSub = rl.NewColor(185, 185, 192, 255)   // secondary text
var hudAccent = rl.NewColor(255, 196, 86, 255) // accent (busy indicator)

func drawScene(scene *Scene) {
	rl.DrawGrid(16, 1)
	rl.DrawCube(rl.NewVector3(0, 0.5, 0), 1, 1, 1, rl.Beige)
	rl.DrawCubeWires(rl.NewVector3(0, 0.5, 0), 1, 1, 1, rl.Brown)

	// 3D cursor frame
	drawAxes(rl.NewVector3(3, 0, 2), scene.CursorOrientation(), 1.2)

	// custom transform orientation frame, when one is active
	if m, ok := scene.CustomOrientation(); ok {
		drawAxes(rl.NewVector3(-3, 0, -2), m, 1.6)
	}
}

// drawAxes renders an orientation as three colored axis lines.
func drawAxes(origin rl.Vector3, m rl.Matrix, size float32) {
	q := rl.QuaternionFromMatrix(m)
	x := rl.Vector3RotateByQuaternion(rl.NewVector3(size, 0, 0), q)
	y := rl.Vector3RotateByQuaternion(rl.NewVector3(0, size, 0), q)
	z := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, size), q)
	rl.DrawLine3D(origin, rl.Vector3Add(origin, x), rl.Red)
	rl.DrawLine3D(origin, rl.Vector3Add(origin, y), rl.Green)
	rl.DrawLine3D(origin, rl.Vector3Add(origin, z), rl.Blue)
}

func drawHairlineX(x1, x2, y int32) {
	rl.DrawLine(x1, y, x2, y, hudLine)
}
