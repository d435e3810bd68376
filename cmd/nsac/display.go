package main

import (
	"fmt"

	"nsac/internal/config"
	"nsac/internal/headless"
	"nsac/internal/terminal"
	"nsac/internal/window"
)

// displays maps a backend name to its constructor. raylib and ebiten each link
// their own copy of GLFW, so exactly one of them is registered per build: raylib
// by default, ebiten with -tags ebiten.
var displays = map[string]func(config.Config) window.Display{
	config.BackendTerminal: func(cfg config.Config) window.Display {
		return terminal.New(terminal.Options{TargetFPS: cfg.TargetFPS})
	},
	config.BackendHeadless: func(cfg config.Config) window.Display {
		return headless.New(headless.Config{Frames: cfg.Headless.Frames, Snapshot: cfg.Headless.Snapshot})
	},
}

func newDisplay(cfg config.Config) (window.Display, error) {
	newFn, ok := displays[cfg.Backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not built into this binary", config.ErrUnknownBackend, cfg.Backend)
	}
	return newFn(cfg), nil
}
