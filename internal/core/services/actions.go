package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// schemePrefix matches an absolute URL's scheme, e.g. "https:" or "localhost:".
var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:\S`)

// ResultActionService performs the action behind a result row.
type ResultActionService struct {
	browser   driven.BrowserActions
	clipboard driven.Clipboard
}

// NewResultActionService creates a new result action service.
// The clipboard is optional (can be nil).
func NewResultActionService(browser driven.BrowserActions, clipboard driven.Clipboard) *ResultActionService {
	return &ResultActionService{
		browser:   browser,
		clipboard: clipboard,
	}
}

// Open performs the record's kind-specific action.
func (s *ResultActionService) Open(ctx context.Context, record domain.Record) error {
	logger.Debug("Activating %s record %q", record.Kind, record.ID)

	switch record.Kind {
	case domain.SourceTab:
		if err := s.browser.ActivateTab(ctx, record.ID); err != nil {
			return fmt.Errorf("activate tab %s: %w", record.ID, err)
		}
		if record.WindowID != "" {
			if err := s.browser.FocusWindow(ctx, record.WindowID); err != nil {
				return fmt.Errorf("focus window %s: %w", record.WindowID, err)
			}
		}
		return nil

	case domain.SourceBookmark, domain.SourceHistory:
		if record.URL == "" {
			return fmt.Errorf("%w: %s record %q has no URL", domain.ErrInvalidInput, record.Kind, record.ID)
		}
		if err := s.browser.OpenURL(ctx, record.URL); err != nil {
			return fmt.Errorf("open %s: %w", record.URL, err)
		}
		return nil

	case domain.SourceClosedTab:
		if err := s.browser.RestoreSession(ctx, record.ID); err != nil {
			return fmt.Errorf("restore session %s: %w", record.ID, err)
		}
		return nil
	}

	return fmt.Errorf("open %s: %w", record.Kind, domain.ErrUnsupportedKind)
}

// OpenText opens URL-like text, prefixing https:// when no scheme is
// given, and web-searches anything else.
func (s *ResultActionService) OpenText(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: empty text", domain.ErrInvalidInput)
	}

	if LooksLikeURL(text) {
		target := NormalizeURL(text)
		logger.Debug("Opening typed URL %s", target)
		if err := s.browser.OpenURL(ctx, target); err != nil {
			return fmt.Errorf("open %s: %w", target, err)
		}
		return nil
	}

	logger.Debug("Web search for %q", text)
	if err := s.browser.WebSearch(ctx, text); err != nil {
		return fmt.Errorf("web search: %w", err)
	}
	return nil
}

// CopyURL copies the record's URL to the clipboard.
func (s *ResultActionService) CopyURL(record domain.Record) error {
	if s.clipboard == nil {
		return errors.New("no clipboard available")
	}
	if record.URL == "" {
		return fmt.Errorf("%w: record has no URL", domain.ErrInvalidInput)
	}
	return s.clipboard.Copy(record.URL)
}

// LooksLikeURL reports whether typed text should be opened rather than
// searched for. Anything with a scheme qualifies, as does a single word with
// an inner dot such as "example.com".
func LooksLikeURL(text string) bool {
	if text == "" || strings.IndexFunc(text, unicode.IsSpace) >= 0 {
		return false
	}
	if schemePrefix.MatchString(text) {
		return true
	}
	return strings.Contains(text, ".") &&
		!strings.HasPrefix(text, ".") &&
		!strings.HasSuffix(text, ".")
}

// NormalizeURL prefixes https:// unless the text already names a scheme
// with an authority ("http://", "chrome://", ...).
func NormalizeURL(text string) string {
	if strings.Contains(text, "://") {
		return text
	}
	return "https://" + text
}
