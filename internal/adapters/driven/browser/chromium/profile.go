package chromium

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	bookmarksFile = "Bookmarks"
	historyFile   = "History"
)

// Profile locates files inside a browser profile directory.
type Profile struct {
	Dir string
}

// NewProfile returns the profile at dir, or the platform default when dir is empty.
func NewProfile(dir string) (Profile, error) {
	if dir != "" {
		return Profile{Dir: dir}, nil
	}
	def, err := DefaultProfileDir()
	if err != nil {
		return Profile{}, err
	}
	return Profile{Dir: def}, nil
}

// DefaultProfileDir returns Chrome's default profile directory for this platform.
func DefaultProfileDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default"), nil
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			return "", fmt.Errorf("LOCALAPPDATA not set")
		}
		return filepath.Join(local, "Google", "Chrome", "User Data", "Default"), nil
	default:
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("getting config directory: %w", err)
		}
		return filepath.Join(cfg, "google-chrome", "Default"), nil
	}
}

// BookmarksPath returns the path of the Bookmarks JSON file.
func (p Profile) BookmarksPath() string {
	return filepath.Join(p.Dir, bookmarksFile)
}

// HistoryPath returns the path of the History database.
func (p Profile) HistoryPath() string {
	return filepath.Join(p.Dir, historyFile)
}

// Bookmarks returns a provider over the profile's Bookmarks file.
func (p Profile) Bookmarks() *BookmarkFile {
	return NewBookmarkFile(p.BookmarksPath())
}

// History returns a provider over the profile's History database.
func (p Profile) History() *HistoryDB {
	return NewHistoryDB(p.HistoryPath())
}
