// Command simpleclear opens a window and clears it to red every frame.
package main

import (
	"sb7/internal/app"
	"sb7/internal/app/desktop"
	"sb7/internal/color"
	"sb7/internal/gfx"
)

type simpleClear struct {
	app.BaseDemo
}

func (simpleClear) Init() app.Config {
	cfg := app.DefaultConfig()
	cfg.Title = "OpenGL SuperBible - Simple Clear"
	return cfg
}

func (simpleClear) Render(ctx *app.Context, _ float64) {
	ctx.GL().ClearBufferfv(gfx.Color, 0, color.Red[:])
}

func main() {
	desktop.Main(simpleClear{})
}
