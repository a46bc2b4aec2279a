// Package graphics wraps the window and main loop so the preview shell only
// supplies update and draw callbacks.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run opens a resizable window and loops until it is closed. Each frame it
// calls update (input, simulation), then clears the screen and calls draw.
func Run(title string, width, height int32, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 32, 255))
		draw()
		rl.EndDrawing()
	}
}
