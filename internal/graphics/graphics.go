package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxel-lab/internal/engineconfig"
)

// Run opens the window and runs the main loop until the window is closed. Each frame it calls
// update with the time since the window opened, then calls draw between BeginDrawing and EndDrawing.
// The window is resizable; ESC does not quit because the console uses it.
func Run(w engineconfig.WindowConfig, update func(now time.Duration), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(w.FPS))

	for !rl.WindowShouldClose() {
		update(Now())

		rl.BeginDrawing()
		draw()
		rl.EndDrawing()
	}
}

// Now returns the time since the window opened as a Duration.
func Now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

// ScreenSize returns the current drawable size in pixels.
func ScreenSize() (width, height int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}
