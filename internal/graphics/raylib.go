package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// api is the slice of raylib the display calls.
type api interface {
	InitWindow(width, height int, title string)
	IsWindowReady() bool
	DisableExitKey()
	SetTargetFPS(fps int)
	WindowShouldClose() bool
	BeginDrawing()
	ClearBackground(c color.RGBA)
	EndDrawing()
	CloseWindow()
	ScreenWidth() int
	ScreenHeight() int
}

type raylib struct{}

func (raylib) InitWindow(width, height int, title string) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
}

func (raylib) IsWindowReady() bool     { return rl.IsWindowReady() }
func (raylib) DisableExitKey()         { rl.SetExitKey(rl.KeyNull) }
func (raylib) SetTargetFPS(fps int)    { rl.SetTargetFPS(int32(fps)) }
func (raylib) WindowShouldClose() bool { return rl.WindowShouldClose() }
func (raylib) BeginDrawing()           { rl.BeginDrawing() }
func (raylib) EndDrawing()             { rl.EndDrawing() }
func (raylib) CloseWindow()            { rl.CloseWindow() }
func (raylib) ScreenWidth() int        { return rl.GetScreenWidth() }
func (raylib) ScreenHeight() int       { return rl.GetScreenHeight() }

func (raylib) ClearBackground(c color.RGBA) {
	rl.ClearBackground(rl.NewColor(c.R, c.G, c.B, c.A))
}
