package render_test

import (
	"image/color"
	"os"
	"strings"
	"testing"

	"reticle/crosshair"
	"reticle/render"
)

func flatConfig() crosshair.Config {
	cfg := crosshair.Default()
	cfg.ShowOutline = false
	cfg.ShowDot = false
	cfg.ShadowEnabled = false
	return cfg
}

func TestRasterClassicArmPixels(t *testing.T) {
	cfg := flatConfig()
	cfg.Size, cfg.Gap, cfg.Thickness = 8, 4, 2

	img, err := render.Raster(cfg, 64, 64)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}

	// Right arm runs from x=36 to x=44 on the center row.
	r, g, b, a := img.At(40, 32).RGBA()
	if a == 0 {
		t.Fatal("expected painted pixel on the right arm")
	}
	if g < r || g < b {
		t.Fatalf("arm should be green, got r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}

	// The gap stays empty.
	if _, _, _, a := img.At(33, 32).RGBA(); a != 0 {
		t.Fatal("gap pixel should be transparent")
	}
	if _, _, _, a := img.At(32, 32).RGBA(); a != 0 {
		t.Fatal("center should be transparent with the dot off")
	}
}

func TestRasterDotOnly(t *testing.T) {
	cfg := flatConfig()
	cfg.Style = crosshair.StyleDot
	cfg.ShowDot = true
	cfg.DotSize = 3
	cfg.Size, cfg.Thickness = 0, 0

	img, err := render.Raster(cfg, 50, 50)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}
	if _, _, _, a := img.At(25, 25).RGBA(); a == 0 {
		t.Fatal("dot center should be painted")
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Fatal("far corner should be transparent")
	}
}

func TestRasterDisabledLayersLeaveNoTrace(t *testing.T) {
	cfg := flatConfig()
	cfg.Size, cfg.Gap, cfg.Thickness = 0, 0, 0

	img, err := render.Raster(cfg, 32, 32)
	if err != nil {
		t.Fatalf("Raster: %v", err)
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				t.Fatalf("pixel (%d,%d) painted on an empty config", x, y)
			}
		}
	}
}

func TestRasterOpacity(t *testing.T) {
	cfg := flatConfig()
	cfg.Style = crosshair.StyleDot
	cfg.ShowDot = true
	cfg.DotSize = 4
	cfg.Opacity = 0.5

	img, _ := render.Raster(cfg, 40, 40)
	c := color.NRGBAModel.Convert(img.At(20, 20)).(color.NRGBA)
	if c.A < 100 || c.A > 160 {
		t.Fatalf("expected roughly half alpha, got %d", c.A)
	}
}

func TestShareCodeRoundTrip(t *testing.T) {
	cfg := crosshair.Default()
	cfg.Style = crosshair.StyleCustom
	cfg.Lines = []crosshair.Line{{StartX: -4, EndX: 4, Thickness: 2, Color: 0xAA00FF}}

	code, err := render.ShareCode(cfg)
	if err != nil {
		t.Fatalf("ShareCode: %v", err)
	}
	if !strings.HasPrefix(code, "XH1:") {
		t.Fatalf("code missing prefix: %q", code)
	}

	back, err := render.ParseShareCode(code)
	if err != nil {
		t.Fatalf("ParseShareCode: %v", err)
	}
	if !back.Equal(cfg) {
		t.Fatal("share code round trip changed the config")
	}
}

func TestParseShareCodeRejectsGarbage(t *testing.T) {
	if _, err := render.ParseShareCode("hello"); err == nil {
		t.Fatal("expected error for missing prefix")
	}
	if _, err := render.ParseShareCode("XH1:!!!"); err == nil {
		t.Fatal("expected error for bad base64")
	}
}

func TestSnapshotWritesFile(t *testing.T) {
	path := t.TempDir() + "/snap.png"
	if err := render.Snapshot(crosshair.Default(), 200, 160, path); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("snapshot file is empty")
	}
}

func TestShareQRWritesFile(t *testing.T) {
	path := t.TempDir() + "/share.png"
	if err := render.ShareQR(crosshair.Default(), 256, path); err != nil {
		t.Fatalf("ShareQR: %v", err)
	}
	if info, _ := os.Stat(path); info == nil || info.Size() == 0 {
		t.Fatal("QR file missing or empty")
	}
}
