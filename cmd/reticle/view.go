package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reticle/render"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// backdrop behind the preview so light crosshairs stay visible.
var previewBackdrop = color.NRGBA{R: 24, G: 24, B: 28, A: 255}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var left []string
	switch m.mode {
	case ModePresets, ModeConfirmDelete:
		left = m.presetPane()
	case ModeNameInput:
		left = m.nameInputPane()
	default:
		left = m.fieldPane()
	}

	preview := m.previewPane()

	var b strings.Builder
	b.WriteString(titleStyle.Render("reticle"))
	b.WriteString("\n\n")

	rows := len(left)
	if len(preview) > rows {
		rows = len(preview)
	}
	for i := 0; i < rows; i++ {
		line := ""
		if i < len(left) {
			line = left[i]
		}
		pad := m.previewX - lipgloss.Width(line)
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		if i < len(preview) {
			line += preview[i]
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) fieldPane() []string {
	lines := make([]string, 0, len(fields))
	for i, f := range fields {
		row := fmt.Sprintf("%-18s %s", f.name, f.display(m.cfg))
		if i == m.selectedField && m.mode == ModeEdit {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}
	if m.mode == ModeAuthor {
		lines = append(lines, "")
		lines = append(lines, titleStyle.Render("Authoring custom lines"))
		if p, ok := m.author.Pending(); ok {
			lines = append(lines, fmt.Sprintf("Pending point: (%d, %d)", p.X, p.Y))
		} else {
			lines = append(lines, "Click the preview to start a line")
		}
		lines = append(lines, fmt.Sprintf("Lines: %d", len(m.cfg.Lines)))
	}
	return lines
}

func (m model) presetPane() []string {
	lines := []string{titleStyle.Render("Presets"), ""}
	if len(m.presets) == 0 {
		lines = append(lines, dimStyle.Render("(no presets saved yet)"))
	}
	for i, p := range m.presets {
		row := fmt.Sprintf("%-20s %s", p.Name, dimStyle.Render(string(p.Config.Style)))
		if i == m.selectedPreset {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}
	if m.mode == ModeConfirmDelete {
		lines = append(lines, "", errorStyle.Render("Delete this preset? y/n"))
	}
	return lines
}

func (m model) nameInputPane() []string {
	return []string{
		titleStyle.Render("Save preset"),
		"",
		"Name: " + m.nameInput + "█",
	}
}

// previewPane rasters the configuration and renders it with half blocks, two
// pixel rows per terminal row.
func (m model) previewPane() []string {
	pw, ph := m.previewW, m.previewH*2
	if pw < 2 || ph < 2 {
		return nil
	}
	img, err := render.Raster(m.cfg, pw, ph)
	if err != nil {
		return []string{errorStyle.Render(err.Error())}
	}
	lines := make([]string, 0, m.previewH)
	for row := 0; row < m.previewH; row++ {
		var b strings.Builder
		for x := 0; x < pw; x++ {
			top := pixelHex(img, x, row*2)
			bottom := pixelHex(img, x, row*2+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func pixelHex(img image.Image, x, y int) string {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	// Blend over the backdrop so opacity reads correctly in the terminal.
	a := int(c.A)
	r := (int(c.R)*a + int(previewBackdrop.R)*(255-a)) / 255
	g := (int(c.G)*a + int(previewBackdrop.G)*(255-a)) / 255
	bl := (int(c.B)*a + int(previewBackdrop.B)*(255-a)) / 255
	return fmt.Sprintf("#%02X%02X%02X", r, g, bl)
}

func (m model) statusLine() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return okStyle.Render(m.successMessage)
	}
	switch m.mode {
	case ModePresets:
		return "Enter=apply | n=new | d=delete | y=duplicate | E=export | I=import | Esc=back"
	case ModeNameInput:
		return "Enter=save | Esc=cancel"
	case ModeAuthor:
		return "Click twice per line | r=cancel point | u=undo line | C=clear all | Esc=done"
	default:
		return "↑/↓=field | ←/→=adjust | t=toggle | s=save | S=preset | p=presets | f=favorite | c/v=share | a=author | ?=help | q=quit"
	}
}

func (m model) helpView() string {
	help := []string{
		"Reticle Help",
		"============",
		"",
		"Edit mode:",
		"  ↑/↓ or k/j       Select field",
		"  ←/→ or h/l       Adjust value (Shift for bigger steps)",
		"  Enter/Space      Toggle or step the selected field",
		"  t                Toggle the overlay on/off",
		"  s                Save configuration",
		"  S                Save current configuration as a preset",
		"  p                Open the preset list",
		"  f                Toggle favorite for the current configuration",
		"  c                Copy a share code to the clipboard",
		"  v                Import a share code from the clipboard",
		"  x                Write a PNG snapshot of the crosshair",
		"  g                Write a QR code holding the share code",
		"  a                Author custom lines with the mouse",
		"",
		"Preset list:",
		"  Enter            Apply the selected preset",
		"  n                Save the current configuration as a new preset",
		"  d                Delete the selected preset (asks first)",
		"  y                Duplicate the selected preset",
		"  E / I            Export to / import from " + exportFilename,
		"",
		"Authoring:",
		"  Click            Set line start, then line end",
		"  r                Cancel the pending point",
		"  u                Remove the last line",
		"  C                Clear all lines and any pending point",
		"",
		"Press Esc, q or ? to close this help.",
	}
	return strings.Join(help, "\n")
}
