// Package display opens the output backend a configuration names. It is the
// only game package that links SDL.
package display

import (
	"fmt"

	"github.com/Faultbox/voxelview/internal/config"
	"github.com/Faultbox/voxelview/internal/engine/terminal"
	"github.com/Faultbox/voxelview/internal/engine/window"
	"github.com/Faultbox/voxelview/internal/game"
)

// Open opens the backend named by cfg.
func Open(cfg config.DisplayConfig) (game.Display, error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		t, err := terminal.New()
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		return t, nil
	case config.BackendWindow:
		w, err := window.New(window.Config{
			Title:  cfg.Title,
			Width:  cfg.Width,
			Height: cfg.Height,
			VSync:  cfg.VSync,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create window: %w", err)
		}
		return w, nil
	default:
		return nil, fmt.Errorf("%w: unknown display backend %q", config.ErrInvalid, cfg.Backend)
	}
}
