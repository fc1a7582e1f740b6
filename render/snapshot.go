package render

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"reticle/crosshair"
)

// Snapshot renders the crosshair on a dark backdrop with a caption line
// summarizing the configuration, and writes the result as a PNG. Meant for
// sharing a preset as a picture rather than feeding a render surface.
func Snapshot(cfg crosshair.Config, w, h int, filename string) error {
	ops, err := crosshair.Plan(cfg, w, h)
	if err != nil {
		return err
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.NRGBA{R: 24, G: 24, B: 28, A: 255})
	dc.Clear()
	drawOps(dc, ops)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(color.White)

	caption := fmt.Sprintf("%s  size %d  gap %d  thickness %d  #%06X",
		cfg.Style, cfg.Size, cfg.Gap, cfg.Thickness, cfg.Color)
	dc.DrawString(caption, 8, float64(h)-8)

	return dc.SavePNG(filename)
}
