package main

import (
	"fmt"

	"reticle/crosshair"
)

// A field is one adjustable row in the edit pane. adjust applies a signed
// step count and is responsible for keeping the value inside the valid range.
type field struct {
	name    string
	display func(cfg crosshair.Config) string
	adjust  func(cfg *crosshair.Config, delta int)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stepColor nudges one 8-bit channel of a 24-bit color. Left/right walk the
// blue channel; holding shift is mapped by the caller to bigger deltas so the
// red and green channels move too.
func stepColor(c uint32, delta int) uint32 {
	v := int(c) + delta
	if v < 0 {
		v = 0
	}
	if v > 0xFFFFFF {
		v = 0xFFFFFF
	}
	return uint32(v)
}

func styleIndex(s crosshair.Style) int {
	for i, st := range crosshair.Styles {
		if st == s {
			return i
		}
	}
	return 0
}

var fields = []field{
	{
		name:    "Enabled",
		display: func(c crosshair.Config) string { return onOff(c.Enabled) },
		adjust:  func(c *crosshair.Config, d int) { c.Enabled = !c.Enabled },
	},
	{
		name:    "Style",
		display: func(c crosshair.Config) string { return string(c.Style) },
		adjust: func(c *crosshair.Config, d int) {
			n := len(crosshair.Styles)
			c.Style = crosshair.Styles[((styleIndex(c.Style)+d)%n+n)%n]
		},
	},
	{
		name:    "Size",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.Size) },
		adjust:  func(c *crosshair.Config, d int) { c.Size = clampInt(c.Size+d, 0, 200) },
	},
	{
		name:    "Thickness",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.Thickness) },
		adjust:  func(c *crosshair.Config, d int) { c.Thickness = clampInt(c.Thickness+d, 0, 50) },
	},
	{
		name:    "Gap",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.Gap) },
		adjust:  func(c *crosshair.Config, d int) { c.Gap = clampInt(c.Gap+d, 0, 100) },
	},
	{
		name:    "Color",
		display: func(c crosshair.Config) string { return fmt.Sprintf("#%06X", c.Color) },
		adjust:  func(c *crosshair.Config, d int) { c.Color = stepColor(c.Color, d*0x111111/16) },
	},
	{
		name:    "Opacity",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%.2f", c.Opacity) },
		adjust: func(c *crosshair.Config, d int) {
			c.Opacity += float64(d) * 0.05
			if c.Opacity < 0 {
				c.Opacity = 0
			}
			if c.Opacity > 1 {
				c.Opacity = 1
			}
		},
	},
	{
		name:    "Show dot",
		display: func(c crosshair.Config) string { return onOff(c.ShowDot) },
		adjust:  func(c *crosshair.Config, d int) { c.ShowDot = !c.ShowDot },
	},
	{
		name:    "Dot size",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.DotSize) },
		adjust:  func(c *crosshair.Config, d int) { c.DotSize = clampInt(c.DotSize+d, 0, 50) },
	},
	{
		name:    "Show outline",
		display: func(c crosshair.Config) string { return onOff(c.ShowOutline) },
		adjust:  func(c *crosshair.Config, d int) { c.ShowOutline = !c.ShowOutline },
	},
	{
		name:    "Outline color",
		display: func(c crosshair.Config) string { return fmt.Sprintf("#%06X", c.OutlineColor) },
		adjust:  func(c *crosshair.Config, d int) { c.OutlineColor = stepColor(c.OutlineColor, d*0x111111/16) },
	},
	{
		name:    "Outline thickness",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.OutlineThickness) },
		adjust:  func(c *crosshair.Config, d int) { c.OutlineThickness = clampInt(c.OutlineThickness+d, 0, 20) },
	},
	{
		name:    "Position X",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.PositionX) },
		adjust:  func(c *crosshair.Config, d int) { c.PositionX = clampInt(c.PositionX+d, -100, 100) },
	},
	{
		name:    "Position Y",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.PositionY) },
		adjust:  func(c *crosshair.Config, d int) { c.PositionY = clampInt(c.PositionY+d, -100, 100) },
	},
	{
		name:    "Rotation",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d°", c.Rotation) },
		adjust: func(c *crosshair.Config, d int) {
			c.Rotation += d * 5
			*c = c.Normalize()
		},
	},
	{
		name:    "T length",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.TLength) },
		adjust:  func(c *crosshair.Config, d int) { c.TLength = clampInt(c.TLength+d, 0, 200) },
	},
	{
		name:    "Shadow",
		display: func(c crosshair.Config) string { return onOff(c.ShadowEnabled) },
		adjust:  func(c *crosshair.Config, d int) { c.ShadowEnabled = !c.ShadowEnabled },
	},
	{
		name:    "Shadow color",
		display: func(c crosshair.Config) string { return fmt.Sprintf("#%06X", c.ShadowColor) },
		adjust:  func(c *crosshair.Config, d int) { c.ShadowColor = stepColor(c.ShadowColor, d*0x111111/16) },
	},
	{
		name:    "Shadow offset",
		display: func(c crosshair.Config) string { return fmt.Sprintf("%d", c.ShadowOffset) },
		adjust:  func(c *crosshair.Config, d int) { c.ShadowOffset = clampInt(c.ShadowOffset+d, 0, 20) },
	},
}
