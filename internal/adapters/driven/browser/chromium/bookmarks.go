package chromium

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// DefaultBookmarkDebounce coalesces the burst of events the browser emits
// while rewriting the Bookmarks file.
const DefaultBookmarkDebounce = 250 * time.Millisecond

// Ensure BookmarkFile implements BookmarkProvider.
var _ driven.BookmarkProvider = (*BookmarkFile)(nil)

// bookmarkJSON is a node of the Bookmarks file.
type bookmarkJSON struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	URL      string         `json:"url"`
	Children []bookmarkJSON `json:"children"`
}

type bookmarksDocument struct {
	Roots struct {
		BookmarkBar *bookmarkJSON `json:"bookmark_bar"`
		Other       *bookmarkJSON `json:"other"`
		Synced      *bookmarkJSON `json:"synced"`
	} `json:"roots"`
}

// BookmarkFile reads bookmarks from a profile's Bookmarks file.
type BookmarkFile struct {
	path     string
	debounce time.Duration
}

// NewBookmarkFile creates a provider for the file at path.
func NewBookmarkFile(path string) *BookmarkFile {
	return &BookmarkFile{path: path, debounce: DefaultBookmarkDebounce}
}

// Path returns the watched file.
func (b *BookmarkFile) Path() string {
	return b.path
}

// BookmarkTree parses the file. The synthetic root holds the bookmark bar,
// other bookmarks and mobile bookmarks, in that order.
func (b *BookmarkFile) BookmarkTree(ctx context.Context) (driven.BookmarkNode, error) {
	if err := ctx.Err(); err != nil {
		return driven.BookmarkNode{}, err
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		return driven.BookmarkNode{}, fmt.Errorf("reading bookmarks: %w", err)
	}
	return ParseBookmarks(data)
}

// ParseBookmarks decodes the content of a Bookmarks file.
func ParseBookmarks(data []byte) (driven.BookmarkNode, error) {
	var doc bookmarksDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return driven.BookmarkNode{}, fmt.Errorf("decoding bookmarks: %w", err)
	}

	root := driven.BookmarkNode{ID: "root"}
	for _, n := range []*bookmarkJSON{doc.Roots.BookmarkBar, doc.Roots.Other, doc.Roots.Synced} {
		if n != nil {
			root.Children = append(root.Children, convertBookmark(*n))
		}
	}
	return root, nil
}

func convertBookmark(n bookmarkJSON) driven.BookmarkNode {
	node := driven.BookmarkNode{ID: n.ID, Title: n.Name}
	if n.Type == "url" {
		node.URL = n.URL
		return node
	}
	node.Children = make([]driven.BookmarkNode, 0, len(n.Children))
	for _, c := range n.Children {
		node.Children = append(node.Children, convertBookmark(c))
	}
	return node
}

// Watch calls onChange after the file changes, until ctx is cancelled.
// The parent directory is watched because the browser replaces the file
// by rename.
func (b *BookmarkFile) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(b.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(b.path), err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	target := filepath.Clean(b.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(b.debounce, func() {
				logger.Debug("bookmarks: %s changed", target)
				onChange()
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("bookmarks: watcher error: %v", err)
		}
	}
}
