// Package tui implements the interactive terminal UI for Text2Song Studio.
package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/text2song/studio/internal/api"
	"github.com/text2song/studio/internal/config"
	"github.com/text2song/studio/internal/telemetry"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI against the configured backend.
func Run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client := api.NewClient(config.APIConfig(settings))
	analytics := telemetry.New(settings.Telemetry.Enabled)
	defer analytics.Close()

	// Settings watcher is optional; the TUI works without live reload.
	watcher, err := config.NewWatcher()
	if err == nil {
		if err := watcher.Start(); err != nil {
			watcher = nil
		}
	} else {
		watcher = nil
	}

	ref := &programRef{}
	model := NewModel(client, settings, watcher, analytics, ref)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	ref.Set(p)

	analytics.Capture("tui_started", nil)
	_, err = p.Run()
	return err
}
