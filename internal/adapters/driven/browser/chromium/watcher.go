package chromium

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// Protocol methods used by the watcher.
const (
	methodSetDiscoverTargets = "Target.setDiscoverTargets"
	eventTargetCreated       = "Target.targetCreated"
	eventTargetInfoChanged   = "Target.targetInfoChanged"
	eventTargetDestroyed     = "Target.targetDestroyed"
)

// targetInfo mirrors the protocol's Target.TargetInfo.
type targetInfo struct {
	TargetID string `json:"targetId"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

type cdpRequest struct {
	ID     int    `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

type cdpMessage struct {
	ID     int             `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChangeFunc is called when a source's data is known to have changed.
type ChangeFunc func(kind domain.SourceKind)

// TargetWatcher follows target lifecycle events on the browser websocket.
// Destroyed page targets are appended to the closed-tab journal.
type TargetWatcher struct {
	devtools *DevTools
	journal  driven.ClosedTabStore
	onChange ChangeFunc
	dialer   *websocket.Dialer

	mu    sync.Mutex
	known map[string]targetInfo
}

// NewTargetWatcher creates a watcher. journal and onChange may be nil.
func NewTargetWatcher(devtools *DevTools, journal driven.ClosedTabStore, onChange ChangeFunc) *TargetWatcher {
	return &TargetWatcher{
		devtools: devtools,
		journal:  journal,
		onChange: onChange,
		dialer:   websocket.DefaultDialer,
		known:    make(map[string]targetInfo),
	}
}

// Run connects and processes events until ctx is cancelled or the
// connection drops. It blocks.
func (w *TargetWatcher) Run(ctx context.Context) error {
	version, err := w.devtools.Version(ctx)
	if err != nil {
		return err
	}
	if version.WebSocketDebuggerURL == "" {
		return fmt.Errorf("%w: no browser websocket url", domain.ErrBrowserUnavailable)
	}

	conn, _, err := w.dialer.DialContext(ctx, version.WebSocketDebuggerURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBrowserUnavailable, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
			conn.Close()
		case <-done:
		}
	}()

	req := cdpRequest{ID: 1, Method: methodSetDiscoverTargets, Params: map[string]bool{"discover": true}}
	if err := conn.WriteJSON(req); err != nil {
		return fmt.Errorf("sending %s: %w", methodSetDiscoverTargets, err)
	}
	logger.Debug("watcher: connected to %s", version.Browser)

	for {
		var msg cdpMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("reading event: %w", err)
		}
		if msg.Error != nil {
			logger.Warn("watcher: request %d failed: %s", msg.ID, msg.Error.Message)
			continue
		}
		w.handle(ctx, msg)
	}
}

// RunForever calls Run again after the connection drops or the browser is
// not reachable, waiting retry between attempts, until ctx is cancelled.
func (w *TargetWatcher) RunForever(ctx context.Context, retry time.Duration) {
	for {
		if err := w.Run(ctx); err != nil {
			logger.Debug("watcher: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(retry):
		}
	}
}

// Known returns the number of tracked page targets.
func (w *TargetWatcher) Known() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.known)
}

func (w *TargetWatcher) handle(ctx context.Context, msg cdpMessage) {
	switch msg.Method {
	case eventTargetCreated, eventTargetInfoChanged:
		var p struct {
			TargetInfo targetInfo `json:"targetInfo"`
		}
		if err := json.Unmarshal(msg.Params, &p); err != nil {
			logger.Debug("watcher: bad %s params: %v", msg.Method, err)
			return
		}
		if p.TargetInfo.Type != targetTypePage {
			return
		}
		w.mu.Lock()
		w.known[p.TargetInfo.TargetID] = p.TargetInfo
		w.mu.Unlock()
		w.notify(domain.SourceTab)

	case eventTargetDestroyed:
		var p struct {
			TargetID string `json:"targetId"`
		}
		if err := json.Unmarshal(msg.Params, &p); err != nil {
			logger.Debug("watcher: bad %s params: %v", msg.Method, err)
			return
		}
		w.mu.Lock()
		info, ok := w.known[p.TargetID]
		delete(w.known, p.TargetID)
		w.mu.Unlock()
		if !ok {
			return
		}
		w.notify(domain.SourceTab)
		if w.record(ctx, info) {
			w.notify(domain.SourceClosedTab)
		}
	}
}

// record journals a destroyed page. It reports whether an entry was added.
func (w *TargetWatcher) record(ctx context.Context, info targetInfo) bool {
	if w.journal == nil || !journalable(info.URL) {
		return false
	}
	entry := driven.ClosedTabPayload{
		ClosedAt: time.Now(),
		Tab: &driven.TabPayload{
			ID:    info.TargetID,
			Title: info.Title,
			URL:   info.URL,
		},
	}
	if _, err := w.journal.Append(ctx, entry); err != nil {
		logger.Warn("watcher: journal append failed: %v", err)
		return false
	}
	if err := w.journal.Prune(ctx, domain.ClosedTabCapacity); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("watcher: journal prune failed: %v", err)
	}
	return true
}

func (w *TargetWatcher) notify(kind domain.SourceKind) {
	if w.onChange != nil {
		w.onChange(kind)
	}
}

// journalable excludes blank and new-tab pages.
func journalable(rawURL string) bool {
	switch {
	case rawURL == "", rawURL == "about:blank":
		return false
	case strings.HasPrefix(rawURL, "chrome://newtab"), strings.HasPrefix(rawURL, "edge://newtab"):
		return false
	case strings.HasPrefix(rawURL, "devtools://"):
		return false
	}
	return true
}
