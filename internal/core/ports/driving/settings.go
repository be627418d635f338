package driving

import "github.com/custodia-labs/tabfind/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	// Missing or invalid values fall back to defaults.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetFuzziness persists the match threshold.
	SetFuzziness(v float64) error

	// Reset writes the default settings.
	Reset() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
