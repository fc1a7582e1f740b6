//go:build linux

package overlay

import (
	"image"

	"github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// FramebufferSurface paints directly onto a Linux framebuffer device.
type FramebufferSurface struct {
	dev *framebuffer.Device
}

// OpenFramebuffer opens the given framebuffer device, e.g. /dev/fb0.
func OpenFramebuffer(device string) (Surface, error) {
	dev, err := framebuffer.Open(device)
	if err != nil {
		return nil, err
	}
	return &FramebufferSurface{dev: dev}, nil
}

func (s *FramebufferSurface) Bounds() image.Rectangle {
	return s.dev.Bounds()
}

func (s *FramebufferSurface) Blit(img image.Image) error {
	xdraw.Draw(s.dev, s.dev.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return nil
}

func (s *FramebufferSurface) Close() error {
	s.dev.Close()
	return nil
}
