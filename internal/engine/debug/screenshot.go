// Package debug provides capture utilities for inspecting rendered frames.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/voxelview/internal/engine/glyph"
	"github.com/Faultbox/voxelview/internal/engine/renderer"
)

// ScreenshotCapture writes frames to timestamped PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	raster    *glyph.Rasterizer
	now       func() time.Time
	seq       int
}

// NewScreenshotCapture returns a capture writing prefix_<time>.png files
// into outputDir. An empty outputDir means the working directory.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		raster:    glyph.NewRasterizer(),
		now:       time.Now,
	}
}

// CaptureBuffer rasterises buf and saves it.
func (sc *ScreenshotCapture) CaptureBuffer(buf *renderer.Buffer) (string, error) {
	return sc.CaptureFromImage(sc.raster.Image(buf))
}

// CaptureFromImage saves img and returns the file written.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// GenerateFilename returns the next file name. Captures within the same
// second get a sequence suffix so they do not overwrite each other.
func (sc *ScreenshotCapture) GenerateFilename() string {
	sc.seq++
	timestamp := sc.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_%03d.png", sc.prefix, timestamp, sc.seq)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
