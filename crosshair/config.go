package crosshair

import (
	"fmt"
	"reflect"
)

// Style selects which resolver branch turns a Config into primitives.
type Style string

const (
	StyleClassic Style = "Classic"
	StyleDot     Style = "Dot"
	StyleCircle  Style = "Circle"
	StyleSquare  Style = "Square"
	StyleTShape  Style = "TShape"
	StyleCustom  Style = "Custom"
)

// Styles lists every known style in display order.
var Styles = []Style{StyleClassic, StyleDot, StyleCircle, StyleSquare, StyleTShape, StyleCustom}

func (s Style) Known() bool {
	for _, k := range Styles {
		if s == k {
			return true
		}
	}
	return false
}

// Line is one user-authored segment in local coordinates relative to the
// crosshair origin. Only meaningful when the style is Custom.
type Line struct {
	StartX    int    `json:"start_x"`
	StartY    int    `json:"start_y"`
	EndX      int    `json:"end_x"`
	EndY      int    `json:"end_y"`
	Thickness int    `json:"thickness"`
	Color     uint32 `json:"color"`
}

// Config is the single source of truth describing a crosshair. It is treated
// as an immutable value: every edit copies the old value (Clone for the lines
// slice) and replaces it wholesale, so concurrent readers always observe a
// consistent snapshot.
type Config struct {
	Enabled          bool    `json:"enabled"`
	Size             int     `json:"size"`
	Thickness        int     `json:"thickness"`
	Gap              int     `json:"gap"`
	Color            uint32  `json:"color"`
	OutlineColor     uint32  `json:"outline_color"`
	OutlineThickness int     `json:"outline_thickness"`
	ShowDot          bool    `json:"show_dot"`
	DotSize          int     `json:"dot_size"`
	ShowOutline      bool    `json:"show_outline"`
	Opacity          float64 `json:"opacity"`
	Style            Style   `json:"style"`
	PositionX        int     `json:"position_x"`
	PositionY        int     `json:"position_y"`
	Rotation         int     `json:"rotation"`
	TLength          int     `json:"t_length"`
	ShadowEnabled    bool    `json:"shadow_enabled"`
	ShadowColor      uint32  `json:"shadow_color"`
	ShadowOffset     int     `json:"shadow_offset"`
	Lines            []Line  `json:"lines"`
}

// Default returns the built-in configuration: a green classic crosshair with
// a black outline and a small center dot.
func Default() Config {
	return Config{
		Enabled:          true,
		Size:             10,
		Thickness:        2,
		Gap:              5,
		Color:            0x00FF00,
		OutlineColor:     0x000000,
		OutlineThickness: 1,
		ShowDot:          true,
		DotSize:          2,
		ShowOutline:      true,
		Opacity:          1.0,
		Style:            StyleClassic,
		PositionX:        0,
		PositionY:        0,
		Rotation:         0,
		TLength:          15,
		ShadowEnabled:    false,
		ShadowColor:      0x000000,
		ShadowOffset:     2,
		Lines:            []Line{},
	}
}

// Clone returns a deep copy. The lines slice is the only reference field.
func (c Config) Clone() Config {
	out := c
	out.Lines = make([]Line, len(c.Lines))
	copy(out.Lines, c.Lines)
	return out
}

// Equal reports full structural equality, including the ordered lines list.
// This is the equality favorites are keyed by.
func (c Config) Equal(o Config) bool {
	if len(c.Lines) != len(o.Lines) {
		return false
	}
	for i := range c.Lines {
		if c.Lines[i] != o.Lines[i] {
			return false
		}
	}
	c.Lines, o.Lines = nil, nil
	return reflect.DeepEqual(c, o)
}

// Normalize returns a copy with the rotation wrapped into [0,360).
func (c Config) Normalize() Config {
	out := c
	out.Rotation = ((c.Rotation % 360) + 360) % 360
	return out
}

// ValidationError rejects a Config before it reaches the resolver.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

const maxColor = 0xFFFFFF

// Validate checks every invariant from the data model. Values are never
// clamped here; the caller decides whether to reject or fix the edit.
func (c Config) Validate() error {
	nonNegative := []struct {
		name string
		v    int
	}{
		{"size", c.Size},
		{"thickness", c.Thickness},
		{"gap", c.Gap},
		{"dot_size", c.DotSize},
		{"t_length", c.TLength},
		{"outline_thickness", c.OutlineThickness},
		{"shadow_offset", c.ShadowOffset},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return &ValidationError{Field: f.name, Reason: "must not be negative"}
		}
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return &ValidationError{Field: "opacity", Reason: "must be within [0,1]"}
	}
	if c.PositionX < -100 || c.PositionX > 100 {
		return &ValidationError{Field: "position_x", Reason: "must be within [-100,100]"}
	}
	if c.PositionY < -100 || c.PositionY > 100 {
		return &ValidationError{Field: "position_y", Reason: "must be within [-100,100]"}
	}
	if c.Rotation < 0 || c.Rotation >= 360 {
		return &ValidationError{Field: "rotation", Reason: "must be within [0,360)"}
	}
	for _, col := range []struct {
		name string
		v    uint32
	}{{"color", c.Color}, {"outline_color", c.OutlineColor}, {"shadow_color", c.ShadowColor}} {
		if col.v > maxColor {
			return &ValidationError{Field: col.name, Reason: "must be a 24-bit RGB value"}
		}
	}
	if !c.Style.Known() {
		return &ValidationError{Field: "style", Reason: fmt.Sprintf("unknown style %q", string(c.Style))}
	}
	for i, l := range c.Lines {
		if l.Thickness < 0 {
			return &ValidationError{Field: fmt.Sprintf("lines[%d].thickness", i), Reason: "must not be negative"}
		}
		if l.Color > maxColor {
			return &ValidationError{Field: fmt.Sprintf("lines[%d].color", i), Reason: "must be a 24-bit RGB value"}
		}
	}
	return nil
}
