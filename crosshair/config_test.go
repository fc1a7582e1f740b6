package crosshair

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative size", func(c *Config) { c.Size = -1 }},
		{"negative gap", func(c *Config) { c.Gap = -2 }},
		{"opacity above one", func(c *Config) { c.Opacity = 1.5 }},
		{"opacity negative", func(c *Config) { c.Opacity = -0.1 }},
		{"position out of range", func(c *Config) { c.PositionX = 101 }},
		{"rotation out of range", func(c *Config) { c.Rotation = 360 }},
		{"color too wide", func(c *Config) { c.Color = 0x1000000 }},
		{"unknown style", func(c *Config) { c.Style = "Starburst" }},
		{"bad line thickness", func(c *Config) {
			c.Lines = []Line{{Thickness: -1}}
		}},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected *ValidationError, got %T", tc.name, err)
		}
	}
}

func TestNormalizeRotation(t *testing.T) {
	cfg := Default()
	cfg.Rotation = 360
	if got := cfg.Normalize().Rotation; got != 0 {
		t.Fatalf("360 should normalize to 0, got %d", got)
	}
	cfg.Rotation = 725
	if got := cfg.Normalize().Rotation; got != 5 {
		t.Fatalf("725 should normalize to 5, got %d", got)
	}
	cfg.Rotation = -90
	if got := cfg.Normalize().Rotation; got != 270 {
		t.Fatalf("-90 should normalize to 270, got %d", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleCustom
	cfg.Lines = []Line{{EndX: 5, Thickness: 1}}

	cp := cfg.Clone()
	cp.Lines[0].EndX = 99
	if cfg.Lines[0].EndX != 5 {
		t.Fatal("Clone must not share the lines slice")
	}
}

func TestEqualStructural(t *testing.T) {
	a := Default()
	b := Default()
	if !a.Equal(b) {
		t.Fatal("identical configs must be equal")
	}

	b.Color = 0xFF0000
	if a.Equal(b) {
		t.Fatal("differing color must not be equal")
	}

	a.Style, b.Style = StyleCustom, StyleCustom
	b.Color = a.Color
	a.Lines = []Line{{EndX: 1}, {EndX: 2}}
	b.Lines = []Line{{EndX: 2}, {EndX: 1}}
	if a.Equal(b) {
		t.Fatal("line order matters for equality")
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Style = StyleCustom
	cfg.Color = 0x12AB34
	cfg.Opacity = 0.75
	cfg.Lines = []Line{{StartX: -3, StartY: 1, EndX: 4, EndY: -2, Thickness: 2, Color: 0x00FFAA}}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Config
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !cfg.Equal(back) {
		t.Fatalf("round trip changed config:\n%+v\n%+v", cfg, back)
	}
}

func TestConfigJSONFieldNames(t *testing.T) {
	data, _ := json.Marshal(Default())
	var raw map[string]any
	json.Unmarshal(data, &raw)

	for _, key := range []string{
		"enabled", "size", "thickness", "gap", "color", "outline_color",
		"outline_thickness", "show_dot", "dot_size", "show_outline",
		"opacity", "style", "position_x", "position_y", "rotation",
		"t_length", "shadow_enabled", "shadow_color", "shadow_offset", "lines",
	} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("serialized config missing %q", key)
		}
	}
	if raw["style"] != "Classic" {
		t.Fatalf("style must serialize as its tag name, got %v", raw["style"])
	}
	if _, ok := raw["color"].(float64); !ok {
		t.Fatalf("color must serialize as a number, got %T", raw["color"])
	}
}
