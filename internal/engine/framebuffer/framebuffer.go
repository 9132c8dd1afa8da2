// Package framebuffer provides the offscreen colour target the window
// backend uploads finished frames into.
package framebuffer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an FBO with a single RGBA colour texture.
type Framebuffer struct {
	fbo          uint32
	colorTexture uint32
	width        int32
	height       int32
}

// New creates a framebuffer. Sizes below one pixel are raised to one.
// Requires a current OpenGL context.
func New(width, height int32) (*Framebuffer, error) {
	fb := &Framebuffer{width: max(width, 1), height: max(height, 1)}
	if err := fb.create(); err != nil {
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}
	return fb, nil
}

func (fb *Framebuffer) create() error {
	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	gl.GenTextures(1, &fb.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	fb.allocate()
	// Glyphs are pixel art; keep edges hard when the blit scales.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.colorTexture, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return nil
}

func (fb *Framebuffer) allocate() {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// Resize reallocates the colour texture when the size changes.
func (fb *Framebuffer) Resize(width, height int32) {
	width, height = max(width, 1), max(height, 1)
	if width == fb.width && height == fb.height {
		return
	}
	fb.width, fb.height = width, height
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	fb.allocate()
}

// Upload copies img into the colour texture. img must match the
// framebuffer size and is stored top row first.
func (fb *Framebuffer) Upload(img *image.RGBA) error {
	b := img.Bounds()
	if int32(b.Dx()) != fb.width || int32(b.Dy()) != fb.height {
		return fmt.Errorf("frame is %dx%d, framebuffer is %dx%d", b.Dx(), b.Dy(), fb.width, fb.height)
	}
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	return nil
}

// BlitToScreen copies the colour texture onto the default framebuffer,
// stretched to dstW x dstH. Rows are flipped because uploads are top row
// first and OpenGL's origin is bottom-left.
func (fb *Framebuffer) BlitToScreen(dstW, dstH int32) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, dstW, dstH)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BlitFramebuffer(
		0, 0, fb.width, fb.height,
		0, dstH, dstW, 0,
		gl.COLOR_BUFFER_BIT, gl.NEAREST,
	)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

// Destroy releases the OpenGL objects.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.colorTexture != 0 {
		gl.DeleteTextures(1, &fb.colorTexture)
		fb.colorTexture = 0
	}
}
