// Package main is the entry point for the voxel slice viewer.
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
	"github.com/Faultbox/voxelview/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
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

	logger.Info("=== voxelview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Generation happens before the display takes over the terminal.
	opts, err := game.ViewerOptionsFromConfig(cfg)
	if err != nil {
		logger.Error("invalid viewer settings", zap.Error(err))
		return 1
	}
	viewer, err := game.NewViewer(opts)
	if err != nil {
		logger.Error("failed to build map", zap.Error(err))
		return 1
	}

	screen, err := display.Open(cfg.Display)
	if err != nil {
		logger.Error("failed to open display", zap.Error(err))
		return 1
	}
	g := game.New(screen, viewer, cfg.Display.FPSLimit)
	defer g.Close()
	if dir := cfg.Display.ScreenshotDir; dir != "" {
		g.EnableScreenshots(debug.NewScreenshotCapture(dir, "voxelview"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}

