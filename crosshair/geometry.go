package crosshair

// PrimitiveKind tags the closed set of drawable shapes the resolver emits.
type PrimitiveKind int

const (
	KindLine PrimitiveKind = iota
	KindArc
	KindRect
	KindDot
)

// Point is a position in local coordinates, origin at the crosshair center.
type Point struct {
	X, Y int
}

// Primitive is a style-resolved shape in local, untransformed coordinates.
// Which fields are meaningful depends on Kind: From/To for lines, Radius for
// arcs and dots, Half for rects. Color carries a per-segment override for
// custom lines; ColorSet distinguishes it from "use the global color".
type Primitive struct {
	Kind      PrimitiveKind
	From, To  Point
	Radius    int
	Half      int
	Thickness int
	Color     uint32
	ColorSet  bool
}

// Resolve turns a configuration into its ordered primitive list. It is pure
// and deterministic; the only error is an unknown style tag, which callers
// are expected to have rejected via Validate already. Degenerate shapes
// (zero-length arms, zero-radius rings) are dropped rather than emitted, so
// a size=0 gap=0 config resolves to an empty list.
func Resolve(cfg Config) ([]Primitive, error) {
	switch cfg.Style {
	case StyleClassic:
		return classicArms(cfg), nil
	case StyleDot:
		// The dot itself is a compositor layer gated by show_dot, so the
		// Dot style contributes no primitives of its own.
		return nil, nil
	case StyleCircle:
		var prims []Primitive
		if r := cfg.Size + cfg.Gap; r > 0 {
			prims = append(prims, Primitive{Kind: KindArc, Radius: r, Thickness: cfg.Thickness})
		}
		if cfg.Gap > 0 {
			prims = append(prims, classicArms(cfg)...)
		}
		return prims, nil
	case StyleSquare:
		var prims []Primitive
		if h := cfg.Size + cfg.Gap; h > 0 {
			prims = append(prims, Primitive{Kind: KindRect, Half: h, Thickness: cfg.Thickness})
		}
		if cfg.Gap > 0 {
			prims = append(prims, classicArms(cfg)...)
		}
		return prims, nil
	case StyleTShape:
		return tShape(cfg), nil
	case StyleCustom:
		var prims []Primitive
		for _, l := range cfg.Lines {
			if l.StartX == l.EndX && l.StartY == l.EndY {
				continue
			}
			prims = append(prims, Primitive{
				Kind:      KindLine,
				From:      Point{l.StartX, l.StartY},
				To:        Point{l.EndX, l.EndY},
				Thickness: l.Thickness,
				Color:     l.Color,
				ColorSet:  true,
			})
		}
		return prims, nil
	default:
		return nil, &ValidationError{Field: "style", Reason: "unknown style " + string(cfg.Style)}
	}
}

// classicArms emits the four cardinal lines, each spanning from the gap
// boundary outward by size. Order: top, bottom, left, right.
func classicArms(cfg Config) []Primitive {
	if cfg.Size == 0 {
		return nil
	}
	inner, outer := cfg.Gap, cfg.Gap+cfg.Size
	t := cfg.Thickness
	return []Primitive{
		{Kind: KindLine, From: Point{0, -outer}, To: Point{0, -inner}, Thickness: t},
		{Kind: KindLine, From: Point{0, inner}, To: Point{0, outer}, Thickness: t},
		{Kind: KindLine, From: Point{-outer, 0}, To: Point{-inner, 0}, Thickness: t},
		{Kind: KindLine, From: Point{inner, 0}, To: Point{outer, 0}, Thickness: t},
	}
}

// tShape emits the horizontal bar at the top arm's outer edge plus the
// vertical stem. The top classic arm is replaced by the bar, so with gap>0
// only the bottom, left, and right arms are added back.
func tShape(cfg Config) []Primitive {
	if cfg.Gap+cfg.Size == 0 {
		// The whole shape collapses to the origin.
		return nil
	}
	var prims []Primitive
	top := -(cfg.Gap + cfg.Size)
	t := cfg.Thickness
	if cfg.TLength > 0 {
		prims = append(prims, Primitive{
			Kind: KindLine, From: Point{-cfg.TLength, top}, To: Point{cfg.TLength, top}, Thickness: t,
		})
	}
	if cfg.Size > 0 {
		prims = append(prims, Primitive{
			Kind: KindLine, From: Point{0, top}, To: Point{0, -cfg.Gap}, Thickness: t,
		})
	}
	if cfg.Gap > 0 && cfg.Size > 0 {
		inner, outer := cfg.Gap, cfg.Gap+cfg.Size
		prims = append(prims,
			Primitive{Kind: KindLine, From: Point{0, inner}, To: Point{0, outer}, Thickness: t},
			Primitive{Kind: KindLine, From: Point{-outer, 0}, To: Point{-inner, 0}, Thickness: t},
			Primitive{Kind: KindLine, From: Point{inner, 0}, To: Point{outer, 0}, Thickness: t},
		)
	}
	return prims
}
