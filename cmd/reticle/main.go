package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"reticle/client"
	"reticle/crosshair"
	"reticle/store"
)

func main() {
	addr := flag.String("addr", os.Getenv("RETICLE_ADDR"), "daemon address, e.g. http://127.0.0.1:7420 (empty: run against local files)")
	dataDir := flag.String("data", os.Getenv("RETICLE_DATA"), "data directory for local mode (default: user config dir)")
	flag.Parse()

	host, err := buildHost(*addr, *dataDir)
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(
		initialModel(host),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func buildHost(addr, dataDir string) (client.Host, error) {
	if addr != "" {
		return client.NewRemote(addr), nil
	}
	dir := dataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "reticle")
	}
	presets, err := store.NewManager(filepath.Join(dir, "presets.json"))
	if err != nil {
		return nil, err
	}
	favorites, err := store.NewFavorites(filepath.Join(dir, "favorites.json"))
	if err != nil {
		return nil, err
	}
	configs := store.NewConfigStore(filepath.Join(dir, "config.json"))
	return client.NewLocal(configs, presets, favorites, nil), nil
}

type Mode int

const (
	ModeEdit Mode = iota
	ModePresets
	ModeNameInput
	ModeConfirmDelete
	ModeAuthor
)

type model struct {
	width  int
	height int

	host   client.Host
	ctx    context.Context
	cancel context.CancelFunc
	events <-chan client.ToggleEvent

	cfg           crosshair.Config
	mode          Mode
	help          bool
	selectedField int

	presets        []store.Preset
	selectedPreset int
	nameInput      string
	confirmID      string

	author *crosshair.Author

	// preview geometry in terminal cells, set on WindowSizeMsg
	previewX, previewY int
	previewW, previewH int

	errorMessage   string
	successMessage string
}

func initialModel(host client.Host) model {
	ctx, cancel := context.WithCancel(context.Background())
	return model{
		host:           host,
		ctx:            ctx,
		cancel:         cancel,
		cfg:            crosshair.Default(),
		mode:           ModeEdit,
		selectedPreset: -1,
		author:         crosshair.NewAuthor(2, 0x00FF00),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		loadConfigCmd(m.ctx, m.host),
		loadPresetsCmd(m.ctx, m.host),
		subscribeCmd(m.ctx, m.host),
	)
}
