package display

import (
	"errors"
	"testing"

	"github.com/Faultbox/voxelview/internal/config"
)

func TestOpenUnknownBackend(t *testing.T) {
	d, err := Open(config.DisplayConfig{Backend: "vga"})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Open(vga) error = %v, want ErrInvalid", err)
	}
	if d != nil {
		t.Errorf("Open(vga) = %v, want nil display", d)
	}
}
