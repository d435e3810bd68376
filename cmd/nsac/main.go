package main

import (
	"flag"
	"fmt"
	"os"

	"nsac/internal/config"
	"nsac/internal/env"
	"nsac/internal/logger"
	"nsac/internal/window"
)

func main() {
	configPath := flag.String("config", "", "Path to the window config (default config/window.yaml or $NSAC_CONFIG).")
	backend := flag.String("backend", "", "Display backend: raylib, ebiten, terminal or headless.")
	flag.Parse()

	if err := run(*configPath, *backend); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, backend string) error {
	if err := env.Load(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := loadConfig(configPath, backend, os.LookupEnv)
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogPath)
	display, err := newDisplay(cfg)
	if err != nil {
		return err
	}
	log.Log("backend " + cfg.Backend)

	loop := window.New(display,
		window.WithSize(cfg.Width, cfg.Height),
		window.WithTitle(cfg.Title),
		window.WithColor(cfg.Color.RGBA()),
		window.WithLogger(log),
	)
	return loop.Run()
}

// loadConfig resolves the config path, then applies env and flag overrides in that order.
func loadConfig(path, backend string, lookup func(string) (string, bool)) (config.Config, error) {
	if path == "" {
		path = config.DefaultPath
		if v, ok := lookup(config.EnvConfig); ok && v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(lookup)
	if backend != "" {
		cfg.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
