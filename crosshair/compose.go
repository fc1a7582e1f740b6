package crosshair

import "math"

// Layer identifies which paint pass produced an op, back to front.
type Layer int

const (
	LayerShadow Layer = iota
	LayerOutline
	LayerMain
	LayerDot
)

func (l Layer) String() string {
	switch l {
	case LayerShadow:
		return "shadow"
	case LayerOutline:
		return "outline"
	case LayerMain:
		return "main"
	case LayerDot:
		return "dot"
	}
	return "unknown"
}

// OpKind is the drawing verb of a PaintOp.
type OpKind int

const (
	OpLine OpKind = iota
	OpCircle
	OpPolygon
	OpFillCircle
)

// PaintOp is a fully resolved, device-space drawing instruction. Coordinates
// are absolute; Width is the stroke width; Alpha is the final opacity
// multiplier in [0,1].
type PaintOp struct {
	Kind   OpKind
	Layer  Layer
	X1, Y1 float64 // line start
	X2, Y2 float64 // line end
	CX, CY float64 // circle center
	R      float64 // circle radius
	Pts    [][2]float64
	Width  float64
	Color  uint32
	Alpha  float64
}

// Composite turns a primitive list into the final ordered paint sequence for
// a surface of the given size. Layer order is shadow, outline, main, dot,
// each gated by its toggle. Geometry is translated to the surface center
// plus the configured offset, then rotated clockwise about that origin; the
// shadow offset is added after rotation so the shadow behaves like a light
// source fixed relative to the screen rather than the shape.
func Composite(cfg Config, prims []Primitive, surfaceW, surfaceH int) []PaintOp {
	cx := float64(surfaceW)/2 + float64(cfg.PositionX)
	cy := float64(surfaceH)/2 + float64(cfg.PositionY)

	angle := float64(cfg.Normalize().Rotation) * math.Pi / 180
	sin, cos := math.Sin(angle), math.Cos(angle)

	place := func(p Point, dx, dy float64) (float64, float64) {
		x, y := float64(p.X), float64(p.Y)
		rx := x*cos - y*sin
		ry := x*sin + y*cos
		return cx + rx + dx, cy + ry + dy
	}

	emit := func(prim Primitive, layer Layer, color uint32, width float64, dx, dy float64) PaintOp {
		op := PaintOp{Layer: layer, Color: color, Width: width, Alpha: cfg.Opacity}
		switch prim.Kind {
		case KindLine:
			op.Kind = OpLine
			op.X1, op.Y1 = place(prim.From, dx, dy)
			op.X2, op.Y2 = place(prim.To, dx, dy)
		case KindArc:
			op.Kind = OpCircle
			op.CX, op.CY = cx+dx, cy+dy
			op.R = float64(prim.Radius)
		case KindRect:
			op.Kind = OpPolygon
			h := prim.Half
			corners := []Point{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
			op.Pts = make([][2]float64, len(corners))
			for i, c := range corners {
				x, y := place(c, dx, dy)
				op.Pts[i] = [2]float64{x, y}
			}
		}
		return op
	}

	var ops []PaintOp

	if cfg.ShadowEnabled {
		off := float64(cfg.ShadowOffset)
		for _, p := range prims {
			ops = append(ops, emit(p, LayerShadow, cfg.ShadowColor, float64(p.Thickness), off, off))
		}
	}

	if cfg.ShowOutline {
		for _, p := range prims {
			w := float64(p.Thickness + cfg.OutlineThickness*2)
			ops = append(ops, emit(p, LayerOutline, cfg.OutlineColor, w, 0, 0))
		}
	}

	for _, p := range prims {
		color := cfg.Color
		if p.ColorSet {
			color = p.Color
		}
		ops = append(ops, emit(p, LayerMain, color, float64(p.Thickness), 0, 0))
	}

	if cfg.ShowDot && cfg.DotSize > 0 {
		ops = append(ops, PaintOp{
			Kind:  OpFillCircle,
			Layer: LayerDot,
			CX:    cx,
			CY:    cy,
			R:     float64(cfg.DotSize),
			Color: cfg.Color,
			Alpha: cfg.Opacity,
		})
	}

	return ops
}

// Plan resolves and composites in one call. Validation is the caller's job;
// the only error here is an unknown style.
func Plan(cfg Config, surfaceW, surfaceH int) ([]PaintOp, error) {
	prims, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}
	return Composite(cfg, prims, surfaceW, surfaceH), nil
}
