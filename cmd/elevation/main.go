// Package main is the entry point for the elevation preview.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelview/internal/config"
	"github.com/Faultbox/voxelview/internal/engine/debug"
	"github.com/Faultbox/voxelview/internal/game"
	"github.com/Faultbox/voxelview/internal/game/display"
	"github.com/Faultbox/voxelview/internal/game/preview"
	"github.com/Faultbox/voxelview/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.InitWithOptions(cfg.LogOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	state := preview.DefaultState()
	if seed, ok := config.SeedFlag(); ok {
		state.Seed = seed
	}
	scene, err := preview.New(state, nil)
	if err != nil {
		logger.Error("failed to create preview", zap.Error(err))
		return 1
	}
	logger.Info("elevation preview", zap.Stringer("state", scene.State()))

	screen, err := display.Open(cfg.Display)
	if err != nil {
		logger.Error("failed to open display", zap.Error(err))
		return 1
	}
	g := game.New(screen, scene, cfg.Display.FPSLimit)
	defer g.Close()
	if dir := cfg.Display.ScreenshotDir; dir != "" {
		g.EnableScreenshots(debug.NewScreenshotCapture(dir, "elevation"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("preview error", zap.Error(err))
		return 1
	}
	return 0
}
