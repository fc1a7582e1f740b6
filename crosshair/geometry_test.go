package crosshair

import (
	"reflect"
	"testing"
)

func lineLength(p Primitive) int {
	dx := p.To.X - p.From.X
	dy := p.To.Y - p.From.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy // arms are axis-aligned
}

func TestResolveClassic(t *testing.T) {
	cfg := Default()
	cfg.Size, cfg.Thickness, cfg.Gap = 8, 2, 4

	prims, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(prims) != 4 {
		t.Fatalf("expected 4 line primitives, got %d", len(prims))
	}
	for i, p := range prims {
		if p.Kind != KindLine {
			t.Fatalf("primitive %d: expected line, got kind %d", i, p.Kind)
		}
		if got := lineLength(p); got != 8 {
			t.Fatalf("primitive %d: expected length 8, got %d", i, got)
		}
		if p.Thickness != 2 {
			t.Fatalf("primitive %d: expected thickness 2, got %d", i, p.Thickness)
		}
	}
	// Top arm starts 4px above center and extends to 12.
	top := prims[0]
	if top.From != (Point{0, -12}) || top.To != (Point{0, -4}) {
		t.Fatalf("top arm wrong: %+v", top)
	}
}

func TestResolveCircleWithGap(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleCircle
	cfg.Size, cfg.Gap = 12, 3

	prims, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(prims) != 5 {
		t.Fatalf("expected arc + 4 arms, got %d primitives", len(prims))
	}
	if prims[0].Kind != KindArc || prims[0].Radius != 15 {
		t.Fatalf("expected arc of radius 15, got %+v", prims[0])
	}
	for _, p := range prims[1:] {
		if p.Kind != KindLine {
			t.Fatalf("expected arm line, got kind %d", p.Kind)
		}
	}
}

func TestResolveCircleNoGap(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleCircle
	cfg.Size, cfg.Gap = 12, 0

	prims, _ := Resolve(cfg)
	if len(prims) != 1 || prims[0].Kind != KindArc || prims[0].Radius != 12 {
		t.Fatalf("expected a single arc of radius 12, got %+v", prims)
	}
}

func TestResolveSquare(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleSquare
	cfg.Size, cfg.Gap = 6, 2

	prims, _ := Resolve(cfg)
	if len(prims) != 5 {
		t.Fatalf("expected rect + 4 arms, got %d", len(prims))
	}
	if prims[0].Kind != KindRect || prims[0].Half != 8 {
		t.Fatalf("expected rect of half-extent 8, got %+v", prims[0])
	}
}

func TestResolveTShape(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleTShape
	cfg.Size, cfg.Gap, cfg.TLength = 10, 5, 15

	prims, _ := Resolve(cfg)
	// Bar, stem, and the bottom/left/right arms; the top arm is replaced
	// by the bar, never duplicated.
	if len(prims) != 5 {
		t.Fatalf("expected 5 primitives, got %d", len(prims))
	}
	bar := prims[0]
	if bar.From != (Point{-15, -15}) || bar.To != (Point{15, -15}) {
		t.Fatalf("bar wrong: %+v", bar)
	}
	stem := prims[1]
	if stem.From != (Point{0, -15}) || stem.To != (Point{0, -5}) {
		t.Fatalf("stem wrong: %+v", stem)
	}
	for _, p := range prims[2:] {
		if p.From.Y < 0 && p.From.X == 0 {
			t.Fatalf("top arm duplicated: %+v", p)
		}
	}
}

func TestResolveDotStyle(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleDot

	prims, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(prims) != 0 {
		t.Fatalf("Dot style should emit no primitives, got %d", len(prims))
	}
}

func TestResolveCustom(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleCustom
	cfg.Lines = []Line{
		{StartX: -5, StartY: 0, EndX: 5, EndY: 0, Thickness: 3, Color: 0xFF0000},
		{StartX: 2, StartY: 2, EndX: 2, EndY: 2, Thickness: 1, Color: 0x0000FF}, // degenerate
		{StartX: 0, StartY: -5, EndX: 0, EndY: 5, Thickness: 1, Color: 0x0000FF},
	}

	prims, _ := Resolve(cfg)
	if len(prims) != 2 {
		t.Fatalf("expected degenerate line dropped, got %d primitives", len(prims))
	}
	if prims[0].Thickness != 3 || !prims[0].ColorSet || prims[0].Color != 0xFF0000 {
		t.Fatalf("custom line must carry its own thickness and color: %+v", prims[0])
	}
}

func TestResolveIgnoresLinesOutsideCustom(t *testing.T) {
	cfg := Default()
	cfg.Lines = []Line{{EndX: 10, Thickness: 1}}

	prims, _ := Resolve(cfg)
	if len(prims) != 4 {
		t.Fatalf("classic with stray lines should still emit 4 arms, got %d", len(prims))
	}
	for _, p := range prims {
		if p.ColorSet {
			t.Fatalf("no primitive should carry a custom color: %+v", p)
		}
	}
}

func TestResolveEmptyWhenCollapsed(t *testing.T) {
	for _, style := range Styles {
		cfg := Default()
		cfg.Style = style
		cfg.Size, cfg.Gap, cfg.Thickness = 0, 0, 0
		cfg.ShowDot = false
		cfg.Lines = nil

		prims, err := Resolve(cfg)
		if err != nil {
			t.Fatalf("style %s: %v", style, err)
		}
		if len(prims) != 0 {
			t.Fatalf("style %s: expected empty primitive list, got %d", style, len(prims))
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleTShape
	cfg.Rotation = 45
	cfg.ShadowEnabled = true

	a, _ := Resolve(cfg)
	b, _ := Resolve(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Resolve is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestResolveUnknownStyle(t *testing.T) {
	cfg := Default()
	cfg.Style = Style("Hexagon")

	if _, err := Resolve(cfg); err == nil {
		t.Fatal("expected error for unknown style")
	}
}
