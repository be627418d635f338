package services

import (
	"fmt"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyFuzziness           = "search.fuzziness"
	keyDebounceMs          = "search.debounce_ms"
	keyBrowseLimit         = "search.browse_limit"
	keySearchURL           = "search.url"
	keyHistoryMaxResults   = "history.max_results"
	keyClosedTabMaxResults = "closed_tabs.max_results"
	keyAccentColor         = "ui.accent_color"
	keyTextColor           = "ui.text_color"
	keyDevToolsURL         = "browser.devtools_url"
	keyProfileDir          = "browser.profile_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Each missing or out-of-range value falls back to its default.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Fuzziness:           s.getFuzziness(defaults.Fuzziness),
		DebounceMs:          s.getNonNegative(keyDebounceMs, defaults.DebounceMs),
		BrowseLimit:         s.getPositive(keyBrowseLimit, defaults.BrowseLimit, 0),
		HistoryMaxResults:   s.getPositive(keyHistoryMaxResults, defaults.HistoryMaxResults, domain.HistoryCapacity),
		ClosedTabMaxResults: s.getPositive(keyClosedTabMaxResults, defaults.ClosedTabMaxResults, domain.ClosedTabCapacity),
		SearchURL:           s.getString(keySearchURL, defaults.SearchURL),
		Theme: domain.ThemeSettings{
			AccentColor: s.getString(keyAccentColor, defaults.Theme.AccentColor),
			TextColor:   s.getString(keyTextColor, defaults.Theme.TextColor),
		},
		Browser: domain.BrowserSettings{
			DevToolsURL: s.getString(keyDevToolsURL, defaults.Browser.DevToolsURL),
			ProfileDir:  s.getString(keyProfileDir, defaults.Browser.ProfileDir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyFuzziness, settings.Fuzziness},
		{keyDebounceMs, settings.DebounceMs},
		{keyBrowseLimit, settings.BrowseLimit},
		{keySearchURL, settings.SearchURL},
		{keyHistoryMaxResults, settings.HistoryMaxResults},
		{keyClosedTabMaxResults, settings.ClosedTabMaxResults},
		{keyAccentColor, settings.Theme.AccentColor},
		{keyTextColor, settings.Theme.TextColor},
		{keyDevToolsURL, settings.Browser.DevToolsURL},
		{keyProfileDir, settings.Browser.ProfileDir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// SetFuzziness persists the match threshold.
func (s *SettingsService) SetFuzziness(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: fuzziness %.2f outside [0,1]", domain.ErrInvalidInput, v)
	}
	if err := s.configStore.Set(keyFuzziness, v); err != nil {
		return fmt.Errorf("save %s: %w", keyFuzziness, err)
	}
	logger.Debug("Fuzziness set to %.2f", v)
	return nil
}

// Reset writes the default settings.
func (s *SettingsService) Reset() error {
	defaults := domain.DefaultAppSettings()
	return s.Save(&defaults)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFuzziness(defaultVal float64) float64 {
	// Zero is a valid fuzziness, so presence decides.
	if _, exists := s.configStore.Get(keyFuzziness); !exists {
		return defaultVal
	}
	v := s.configStore.GetFloat(keyFuzziness)
	if v < 0 || v > 1 {
		logger.Warn("Ignoring out-of-range %s=%v", keyFuzziness, v)
		return defaultVal
	}
	return v
}

func (s *SettingsService) getNonNegative(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	v := s.configStore.GetInt(key)
	if v < 0 {
		return defaultVal
	}
	return v
}

// getPositive reads a positive int no larger than maxVal (0 = no maximum).
func (s *SettingsService) getPositive(key string, defaultVal, maxVal int) int {
	v := s.configStore.GetInt(key)
	if v <= 0 || (maxVal > 0 && v > maxVal) {
		return defaultVal
	}
	return v
}
