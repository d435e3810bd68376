//go:build ebiten

package main

import (
	"nsac/internal/config"
	"nsac/internal/ebitengfx"
	"nsac/internal/window"
)

func init() {
	displays[config.BackendEbiten] = func(cfg config.Config) window.Display {
		return ebitengfx.New(ebitengfx.Options{TargetFPS: cfg.TargetFPS})
	}
}
