package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"reticle/crosshair"
)

const exportFilename = "reticle-presets.json"

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPreview()
		return m, nil

	case configLoadedMsg:
		m.cfg = msg.cfg
		if msg.fallback {
			m.successMessage = "No saved configuration, starting from defaults"
		}
		return m, updateLiveCmd(m.ctx, m.host, m.cfg)

	case presetsMsg:
		m.presets = msg
		if m.selectedPreset >= len(m.presets) {
			m.selectedPreset = len(m.presets) - 1
		}
		if m.selectedPreset < 0 && len(m.presets) > 0 {
			m.selectedPreset = 0
		}
		return m, nil

	case statusMsg:
		m.successMessage = string(msg)
		m.errorMessage = ""
		return m, nil

	case errMsg:
		m.errorMessage = msg.err.Error()
		m.successMessage = ""
		return m, nil

	case subscribedMsg:
		m.events = msg.ch
		return m, waitForEventCmd(m.events)

	case toggleEventMsg:
		// Another toggle source flipped the overlay; merge only the flag.
		m.cfg.Enabled = msg.Enabled
		return m, waitForEventCmd(m.events)

	case eventsClosedMsg:
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) layoutPreview() {
	// Fields pane on the left, preview pane to its right. Each preview cell
	// holds two pixel rows via half blocks.
	m.previewX = 32
	m.previewY = 2
	m.previewW = m.width - m.previewX - 2
	if m.previewW > 48 {
		m.previewW = 48
	}
	if m.previewW < 8 {
		m.previewW = 8
	}
	m.previewH = m.height - m.previewY - 3
	if m.previewH > 24 {
		m.previewH = 24
	}
	if m.previewH < 4 {
		m.previewH = 4
	}
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeAuthor || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	px := msg.X - m.previewX
	py := (msg.Y - m.previewY) * 2
	if px < 0 || px >= m.previewW || py < 0 || py >= m.previewH*2 {
		return m, nil
	}
	p := crosshair.ToLocal(px, py, m.previewW/2, m.previewH)
	line, done := m.author.Click(p)
	if !done {
		m.successMessage = fmt.Sprintf("First point set at (%d, %d), click the end point", p.X, p.Y)
		return m, nil
	}
	m.cfg.Lines = append(m.cfg.Lines, line)
	m.successMessage = fmt.Sprintf("Line added (%d total)", len(m.cfg.Lines))
	return m, updateLiveCmd(m.ctx, m.host, m.cfg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		switch msg.String() {
		case "escape", "q", "?":
			m.help = false
		}
		return m, nil
	}

	switch m.mode {
	case ModeEdit:
		return m.handleEditKey(msg)
	case ModePresets:
		return m.handlePresetsKey(msg)
	case ModeNameInput:
		return m.handleNameInputKey(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKey(msg)
	case ModeAuthor:
		return m.handleAuthorKey(msg)
	}
	return m, nil
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.cancel()
		return m, tea.Quit

	case "?":
		m.help = true
		return m, nil

	case "up", "k":
		if m.selectedField > 0 {
			m.selectedField--
		}
		return m, nil

	case "down", "j":
		if m.selectedField < len(fields)-1 {
			m.selectedField++
		}
		return m, nil

	case "left", "h":
		return m.adjustField(-1)

	case "right", "l":
		return m.adjustField(1)

	case "shift+left", "H":
		return m.adjustField(-10)

	case "shift+right", "L":
		return m.adjustField(10)

	case "enter", " ":
		return m.adjustField(1)

	case "t":
		m.cfg.Enabled = !m.cfg.Enabled
		return m, toggleCmd(m.ctx, m.host, m.cfg.Enabled)

	case "s":
		return m, saveConfigCmd(m.ctx, m.host, m.cfg)

	case "S":
		m.mode = ModeNameInput
		m.nameInput = ""
		return m, nil

	case "p":
		m.mode = ModePresets
		return m, loadPresetsCmd(m.ctx, m.host)

	case "f":
		return m, toggleFavoriteCmd(m.ctx, m.host, m.cfg)

	case "c":
		return m, copyShareCmd(m.cfg)

	case "v":
		return m, pasteShareCmd()

	case "x":
		return m, snapshotCmd(m.cfg, "reticle-snapshot.png")

	case "g":
		return m, shareQRCmd(m.cfg, "reticle-share-qr.png")

	case "a":
		m.cfg.Style = crosshair.StyleCustom
		m.author.Start()
		m.mode = ModeAuthor
		m.successMessage = "Authoring: click two points per line, Esc to finish"
		return m, updateLiveCmd(m.ctx, m.host, m.cfg)
	}
	return m, nil
}

func (m model) adjustField(delta int) (tea.Model, tea.Cmd) {
	fields[m.selectedField].adjust(&m.cfg, delta)
	m.errorMessage = ""
	if err := m.cfg.Validate(); err != nil {
		// Steps clamp into range, so this only trips on odd stored state.
		m.errorMessage = err.Error()
		return m, nil
	}
	return m, updateLiveCmd(m.ctx, m.host, m.cfg)
}

func (m model) handlePresetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "escape", "p", "q":
		m.mode = ModeEdit
		return m, nil

	case "up", "k":
		if m.selectedPreset > 0 {
			m.selectedPreset--
		}
		return m, nil

	case "down", "j":
		if m.selectedPreset < len(m.presets)-1 {
			m.selectedPreset++
		}
		return m, nil

	case "enter":
		if m.selectedPreset >= 0 && m.selectedPreset < len(m.presets) {
			m.cfg = m.presets[m.selectedPreset].Config.Clone()
			m.mode = ModeEdit
			m.successMessage = "Preset applied: " + m.presets[m.selectedPreset].Name
			return m, updateLiveCmd(m.ctx, m.host, m.cfg)
		}
		return m, nil

	case "n":
		m.mode = ModeNameInput
		m.nameInput = ""
		return m, nil

	case "d":
		if m.selectedPreset >= 0 && m.selectedPreset < len(m.presets) {
			m.confirmID = m.presets[m.selectedPreset].ID
			m.mode = ModeConfirmDelete
		}
		return m, nil

	case "y":
		if m.selectedPreset >= 0 && m.selectedPreset < len(m.presets) {
			return m, duplicatePresetCmd(m.ctx, m.host, m.presets[m.selectedPreset].ID)
		}
		return m, nil

	case "E":
		return m, exportFileCmd(m.ctx, m.host, exportFilename)

	case "I":
		return m, importFileCmd(m.ctx, m.host, exportFilename)
	}
	return m, nil
}

func (m model) handleNameInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "escape":
		m.mode = ModeEdit
		m.nameInput = ""
		return m, nil

	case "enter":
		name := m.nameInput
		if name == "" {
			m.errorMessage = "Preset name cannot be empty"
			return m, nil
		}
		m.mode = ModePresets
		m.nameInput = ""
		m.successMessage = "Preset saved: " + name
		return m, savePresetCmd(m.ctx, m.host, name, m.cfg)

	case "backspace":
		if len(m.nameInput) > 0 {
			runes := []rune(m.nameInput)
			m.nameInput = string(runes[:len(runes)-1])
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.nameInput += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.nameInput += " "
		}
		return m, nil
	}
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmID
		m.confirmID = ""
		m.mode = ModePresets
		return m, deletePresetCmd(m.ctx, m.host, id)

	case "n", "escape":
		m.confirmID = ""
		m.mode = ModePresets
		return m, nil
	}
	return m, nil
}

func (m model) handleAuthorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "escape", "a":
		m.author.Stop()
		m.mode = ModeEdit
		m.successMessage = "Authoring finished"
		return m, nil

	case "r":
		m.author.Reset()
		m.successMessage = "Pending point cancelled"
		return m, nil

	case "u":
		if len(m.cfg.Lines) > 0 {
			m.cfg.Lines = m.cfg.Lines[:len(m.cfg.Lines)-1]
			return m, updateLiveCmd(m.ctx, m.host, m.cfg)
		}
		return m, nil

	case "C":
		m.cfg.Lines = []crosshair.Line{}
		m.author.Reset()
		m.successMessage = "All custom lines cleared"
		return m, updateLiveCmd(m.ctx, m.host, m.cfg)
	}
	return m, nil
}
