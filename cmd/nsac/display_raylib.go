//go:build !ebiten

package main

import (
	"nsac/internal/config"
	"nsac/internal/graphics"
	"nsac/internal/window"
)

func init() {
	displays[config.BackendRaylib] = func(cfg config.Config) window.Display {
		return graphics.New(graphics.Options{
			TargetFPS:  cfg.TargetFPS,
			ShowFPS:    cfg.ShowFPS,
			ShowMem:    cfg.ShowMem,
			ShowFrames: cfg.ShowFrames,
		})
	}
}
