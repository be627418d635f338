// Package tui provides the interactive terminal launcher for tabfind.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Coordinator turns keystrokes into result sets.
	Coordinator driving.QueryCoordinator

	// Settings supplies theme colours. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Coordinator == nil {
		return ErrMissingCoordinator
	}
	return nil
}

// theme returns the configured colours, or the defaults.
func (p *Ports) theme() domain.ThemeSettings {
	if p.Settings == nil {
		return domain.DefaultAppSettings().Theme
	}
	settings, err := p.Settings.Get()
	if err != nil || settings == nil {
		return domain.DefaultAppSettings().Theme
	}
	return settings.Theme
}
