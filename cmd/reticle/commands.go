package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"reticle/client"
	"reticle/crosshair"
	"reticle/render"
	"reticle/store"
)

type configLoadedMsg struct {
	cfg      crosshair.Config
	fallback bool
}

type presetsMsg []store.Preset

type statusMsg string

type errMsg struct{ err error }

type toggleEventMsg client.ToggleEvent

type eventsClosedMsg struct{}

type subscribedMsg struct {
	ch <-chan client.ToggleEvent
}

func loadConfigCmd(ctx context.Context, host client.Host) tea.Cmd {
	return func() tea.Msg {
		cfg, err := host.LoadConfig(ctx)
		if err != nil {
			return configLoadedMsg{cfg: crosshair.Default(), fallback: true}
		}
		return configLoadedMsg{cfg: cfg}
	}
}

func loadPresetsCmd(ctx context.Context, host client.Host) tea.Cmd {
	return func() tea.Msg {
		list, err := host.ListPresets(ctx)
		if err != nil {
			return errMsg{err}
		}
		return presetsMsg(list)
	}
}

func saveConfigCmd(ctx context.Context, host client.Host, cfg crosshair.Config) tea.Cmd {
	return func() tea.Msg {
		if err := host.SaveConfig(ctx, cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg("Configuration saved")
	}
}

func updateLiveCmd(ctx context.Context, host client.Host, cfg crosshair.Config) tea.Cmd {
	return func() tea.Msg {
		if err := host.UpdateLiveOverlay(ctx, cfg); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func toggleCmd(ctx context.Context, host client.Host, enabled bool) tea.Cmd {
	return func() tea.Msg {
		if err := host.ToggleOverlay(ctx, enabled); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func savePresetCmd(ctx context.Context, host client.Host, name string, cfg crosshair.Config) tea.Cmd {
	return func() tea.Msg {
		if _, err := host.SavePreset(ctx, store.Preset{Name: name, Config: cfg}); err != nil {
			return errMsg{err}
		}
		list, err := host.ListPresets(ctx)
		if err != nil {
			return errMsg{err}
		}
		return presetsMsg(list)
	}
}

func deletePresetCmd(ctx context.Context, host client.Host, id string) tea.Cmd {
	return func() tea.Msg {
		if err := host.DeletePreset(ctx, id); err != nil {
			return errMsg{err}
		}
		list, err := host.ListPresets(ctx)
		if err != nil {
			return errMsg{err}
		}
		return presetsMsg(list)
	}
}

func duplicatePresetCmd(ctx context.Context, host client.Host, id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := host.DuplicatePreset(ctx, id); err != nil {
			return errMsg{err}
		}
		list, err := host.ListPresets(ctx)
		if err != nil {
			return errMsg{err}
		}
		return presetsMsg(list)
	}
}

func toggleFavoriteCmd(ctx context.Context, host client.Host, cfg crosshair.Config) tea.Cmd {
	return func() tea.Msg {
		on, err := host.ToggleFavorite(ctx, cfg)
		if err != nil {
			return errMsg{err}
		}
		if on {
			return statusMsg("Added to favorites")
		}
		return statusMsg("Removed from favorites")
	}
}

func copyShareCmd(cfg crosshair.Config) tea.Cmd {
	return func() tea.Msg {
		code, err := render.ShareCode(cfg)
		if err != nil {
			return errMsg{err}
		}
		if err := clipboard.WriteAll(code); err != nil {
			return errMsg{err}
		}
		return statusMsg("Share code copied to clipboard")
	}
}

func pasteShareCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		if err != nil {
			return errMsg{err}
		}
		cfg, err := render.ParseShareCode(text)
		if err != nil {
			return errMsg{fmt.Errorf("clipboard does not hold a share code: %w", err)}
		}
		return configLoadedMsg{cfg: cfg}
	}
}

func snapshotCmd(cfg crosshair.Config, filename string) tea.Cmd {
	return func() tea.Msg {
		if err := render.Snapshot(cfg, 256, 256, filename); err != nil {
			return errMsg{err}
		}
		return statusMsg("Snapshot written to " + filename)
	}
}

func shareQRCmd(cfg crosshair.Config, filename string) tea.Cmd {
	return func() tea.Msg {
		if err := render.ShareQR(cfg, 256, filename); err != nil {
			return errMsg{err}
		}
		return statusMsg("QR code written to " + filename)
	}
}

func exportFileCmd(ctx context.Context, host client.Host, filename string) tea.Cmd {
	return func() tea.Msg {
		data, err := host.ExportPresets(ctx)
		if err != nil {
			return errMsg{err}
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return errMsg{err}
		}
		return statusMsg("Presets exported to " + filename)
	}
}

func importFileCmd(ctx context.Context, host client.Host, filename string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(filename)
		if err != nil {
			return errMsg{err}
		}
		imported, err := host.ImportPresets(ctx, data)
		if err != nil {
			return errMsg{err}
		}
		list, err := host.ListPresets(ctx)
		if err != nil {
			return errMsg{err}
		}
		return tea.BatchMsg{
			func() tea.Msg { return statusMsg(fmt.Sprintf("Imported %d presets", len(imported))) },
			func() tea.Msg { return presetsMsg(list) },
		}
	}
}

func subscribeCmd(ctx context.Context, host client.Host) tea.Cmd {
	return func() tea.Msg {
		ch, err := host.Events(ctx)
		if err != nil {
			return errMsg{err}
		}
		return subscribedMsg{ch: ch}
	}
}

func waitForEventCmd(ch <-chan client.ToggleEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return toggleEventMsg(ev)
	}
}
