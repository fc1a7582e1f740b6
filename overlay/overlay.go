package overlay

import (
	"image"
	"image/color"
	"sync"

	xdraw "golang.org/x/image/draw"

	"reticle/crosshair"
	"reticle/render"
)

// Overlay holds the live configuration and repaints the surface whenever it
// changes. The surface may be nil, in which case the overlay only tracks
// state — useful when the daemon runs headless.
type Overlay struct {
	mu      sync.Mutex
	surface Surface
	cfg     crosshair.Config
}

func New(surface Surface, cfg crosshair.Config) *Overlay {
	return &Overlay{surface: surface, cfg: cfg.Clone()}
}

// Config returns a snapshot of the current configuration.
func (o *Overlay) Config() crosshair.Config {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cfg.Clone()
}

// Update replaces the whole configuration and repaints.
func (o *Overlay) Update(cfg crosshair.Config) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cfg = cfg.Normalize().Clone()
	return o.repaint()
}

// Toggle merges only the enabled flag into the current configuration, never
// overwriting unrelated pending edits, and repaints. Returns the enabled
// state after the call.
func (o *Overlay) Toggle(enabled bool) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cfg.Enabled = enabled
	return enabled, o.repaint()
}

// repaint draws the current config onto the surface; a disabled config
// clears it. Caller holds o.mu.
func (o *Overlay) repaint() error {
	if o.surface == nil {
		return nil
	}
	b := o.surface.Bounds()
	if !o.cfg.Enabled {
		blank := image.NewRGBA(b)
		xdraw.Draw(blank, b, image.NewUniform(color.Black), image.Point{}, xdraw.Src)
		return o.surface.Blit(blank)
	}

	img, err := render.Raster(o.cfg, b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	// Paint over black so the crosshair's own alpha still composes.
	frame := image.NewRGBA(b)
	xdraw.Draw(frame, b, image.NewUniform(color.Black), image.Point{}, xdraw.Src)
	xdraw.Draw(frame, b, img, img.Bounds().Min, xdraw.Over)
	return o.surface.Blit(frame)
}
