package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"reticle/crosshair"
)

// rgba expands a 24-bit RGB value and an opacity multiplier into a color.
func rgba(c uint32, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(alpha*255 + 0.5),
	}
}

// drawOps paints a composed sequence onto a gg context in order.
func drawOps(dc *gg.Context, ops []crosshair.PaintOp) {
	for _, op := range ops {
		dc.SetColor(rgba(op.Color, op.Alpha))
		switch op.Kind {
		case crosshair.OpLine:
			if op.Width <= 0 {
				continue
			}
			dc.SetLineWidth(op.Width)
			dc.DrawLine(op.X1, op.Y1, op.X2, op.Y2)
			dc.Stroke()
		case crosshair.OpCircle:
			if op.Width <= 0 || op.R <= 0 {
				continue
			}
			dc.SetLineWidth(op.Width)
			dc.DrawCircle(op.CX, op.CY, op.R)
			dc.Stroke()
		case crosshair.OpPolygon:
			if op.Width <= 0 || len(op.Pts) < 2 {
				continue
			}
			dc.SetLineWidth(op.Width)
			dc.MoveTo(op.Pts[0][0], op.Pts[0][1])
			for _, p := range op.Pts[1:] {
				dc.LineTo(p[0], p[1])
			}
			dc.ClosePath()
			dc.Stroke()
		case crosshair.OpFillCircle:
			if op.R <= 0 {
				continue
			}
			dc.DrawCircle(op.CX, op.CY, op.R)
			dc.Fill()
		}
	}
}

// Raster resolves and composites the configuration, then paints it onto a
// transparent canvas of the given size.
func Raster(cfg crosshair.Config, w, h int) (image.Image, error) {
	ops, err := crosshair.Plan(cfg, w, h)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(w, h)
	drawOps(dc, ops)
	return dc.Image(), nil
}

// WritePNG encodes an image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
