package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change tabfind settings. Settings are stored in
~/.tabfind/config.toml unless --config-dir is given.`,
	RunE: runSettingsGet,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it.

Keys:
  fuzziness          match threshold, 0 (exact substring) to 1 (anything)
  debounce_ms        keystroke quiet period before searching
  browse_limit       rows per source when the query is empty
  history_max        history entries loaded per fetch
  closed_tabs_max    closed tabs loaded per fetch
  search_url         web search template, %s is the query
  accent_color       focused row and heading colour
  text_color         row colour
  devtools_url       browser remote debugging URL
  profile_dir        browser profile directory`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingSetters apply a textual value to one field.
var settingSetters = map[string]func(s *domain.AppSettings, v string) error{
	"fuzziness": func(s *domain.AppSettings, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: fuzziness must be a number", domain.ErrInvalidInput)
		}
		s.Fuzziness = f
		return nil
	},
	"debounce_ms":     intSetter(func(s *domain.AppSettings) *int { return &s.DebounceMs }),
	"browse_limit":    intSetter(func(s *domain.AppSettings) *int { return &s.BrowseLimit }),
	"history_max":     intSetter(func(s *domain.AppSettings) *int { return &s.HistoryMaxResults }),
	"closed_tabs_max": intSetter(func(s *domain.AppSettings) *int { return &s.ClosedTabMaxResults }),
	"search_url":      stringSetter(func(s *domain.AppSettings) *string { return &s.SearchURL }),
	"accent_color":    stringSetter(func(s *domain.AppSettings) *string { return &s.Theme.AccentColor }),
	"text_color":      stringSetter(func(s *domain.AppSettings) *string { return &s.Theme.TextColor }),
	"devtools_url":    stringSetter(func(s *domain.AppSettings) *string { return &s.Browser.DevToolsURL }),
	"profile_dir":     stringSetter(func(s *domain.AppSettings) *string { return &s.Browser.ProfileDir }),
}

func intSetter(field func(*domain.AppSettings) *int) func(*domain.AppSettings, string) error {
	return func(s *domain.AppSettings, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, v)
		}
		*field(s) = n
		return nil
	}
}

func stringSetter(field func(*domain.AppSettings) *string) func(*domain.AppSettings, string) error {
	return func(s *domain.AppSettings, v string) error {
		*field(s) = v
		return nil
	}
}

func settingKeys() []string {
	keys := make([]string, 0, len(settingSetters))
	for k := range settingSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func runSettingsGet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings service")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	profile := settings.Browser.ProfileDir
	if profile == "" {
		profile = "(platform default)"
	}

	cmd.Println("[Search]")
	cmd.Printf("  Fuzziness: %.2f\n", settings.Fuzziness)
	cmd.Printf("  Debounce: %dms\n", settings.DebounceMs)
	cmd.Printf("  Browse limit: %d\n", settings.BrowseLimit)
	cmd.Printf("  Web search: %s\n", settings.SearchURL)
	cmd.Println()
	cmd.Println("[Sources]")
	cmd.Printf("  History max results: %d\n", settings.HistoryMaxResults)
	cmd.Printf("  Closed tabs max results: %d\n", settings.ClosedTabMaxResults)
	cmd.Println()
	cmd.Println("[Browser]")
	cmd.Printf("  DevTools URL: %s\n", settings.Browser.DevToolsURL)
	cmd.Printf("  Profile: %s\n", profile)
	cmd.Println()
	cmd.Println("[UI]")
	cmd.Printf("  Accent colour: %s\n", settings.Theme.AccentColor)
	cmd.Printf("  Text colour: %s\n", settings.Theme.TextColor)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings service")
	}

	key := strings.ToLower(args[0])
	set, ok := settingSetters[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (known: %s)",
			domain.ErrInvalidInput, args[0], strings.Join(settingKeys(), ", "))
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := set(settings, args[1]); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if key == "fuzziness" {
		err = settingsService.SetFuzziness(settings.Fuzziness)
	} else {
		err = settingsService.Save(settings)
	}
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("%s set to %s\n", key, args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings service")
	}
	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}
