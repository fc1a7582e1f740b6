package overlay

import (
	"image"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// Surface is a destination the overlay blits frames onto.
type Surface interface {
	Bounds() image.Rectangle
	Blit(img image.Image) error
	Close() error
}

// ImageSurface keeps the last blitted frame in memory. Used by tests and as
// the headless fallback when no framebuffer is available.
type ImageSurface struct {
	mu    sync.Mutex
	frame *image.RGBA
}

func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{frame: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *ImageSurface) Bounds() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame.Bounds()
}

func (s *ImageSurface) Blit(img image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	xdraw.Draw(s.frame, s.frame.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return nil
}

func (s *ImageSurface) Close() error { return nil }

// Frame returns a copy of the last blitted frame.
func (s *ImageSurface) Frame() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := image.NewRGBA(s.frame.Bounds())
	copy(cp.Pix, s.frame.Pix)
	return cp
}
