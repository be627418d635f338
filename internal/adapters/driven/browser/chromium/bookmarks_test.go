package chromium

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabfind/internal/normalisers"
)

const sampleBookmarks = `{
  "checksum": "0",
  "roots": {
    "bookmark_bar": {
      "id": "1", "name": "Bookmarks bar", "type": "folder",
      "children": [
        {"id": "4", "name": "GitHub", "type": "url", "url": "https://github.com"},
        {"id": "5", "name": "Go", "type": "folder", "children": [
          {"id": "6", "name": "Go Docs", "type": "url", "url": "https://go.dev/doc"}
        ]}
      ]
    },
    "other": {
      "id": "2", "name": "Other bookmarks", "type": "folder",
      "children": [
        {"id": "7", "name": "Hacker News", "type": "url", "url": "https://news.ycombinator.com"}
      ]
    },
    "synced": {"id": "3", "name": "Mobile bookmarks", "type": "folder", "children": []}
  },
  "version": 1
}`

func writeBookmarks(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, bookmarksFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseBookmarks_RootOrder(t *testing.T) {
	root, err := ParseBookmarks([]byte(sampleBookmarks))
	require.NoError(t, err)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "Bookmarks bar", root.Children[0].Title)
	assert.Equal(t, "Other bookmarks", root.Children[1].Title)
	assert.True(t, root.Children[0].IsFolder())
	assert.False(t, root.Children[0].Children[0].IsFolder())
}

func TestBookmarkFile_FlattensInProviderOrder(t *testing.T) {
	path := writeBookmarks(t, t.TempDir(), sampleBookmarks)

	root, err := NewBookmarkFile(path).BookmarkTree(context.Background())
	require.NoError(t, err)

	records := normalisers.Bookmarks(root)
	require.Len(t, records, 3)
	assert.Equal(t, "GitHub", records[0].Title)
	assert.Equal(t, "Go Docs", records[1].Title)
	assert.Equal(t, "Hacker News", records[2].Title)
	assert.Equal(t, "6", records[1].ID)
}

func TestBookmarkFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewBookmarkFile(filepath.Join(dir, "missing")).BookmarkTree(context.Background())
	assert.Error(t, err)

	path := writeBookmarks(t, dir, "{not json")
	_, err = NewBookmarkFile(path).BookmarkTree(context.Background())
	assert.Error(t, err)
}

func TestBookmarkFile_WatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeBookmarks(t, dir, sampleBookmarks)

	b := NewBookmarkFile(path)
	b.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- b.Watch(ctx, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	// An unrelated file in the same directory is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Preferences"), []byte("{}"), 0600))
	for i := 0; i < 3; i++ {
		writeBookmarks(t, dir, sampleBookmarks)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, changed, "burst should coalesce into one notification")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestProfile_Paths(t *testing.T) {
	p, err := NewProfile("/tmp/profile")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/profile", "Bookmarks"), p.BookmarksPath())
	assert.Equal(t, filepath.Join("/tmp/profile", "History"), p.HistoryPath())
	assert.Equal(t, p.BookmarksPath(), p.Bookmarks().Path())
}

func TestDefaultProfileDir(t *testing.T) {
	dir, err := DefaultProfileDir()
	if err != nil {
		t.Skipf("no default profile location: %v", err)
	}
	assert.Equal(t, "Default", filepath.Base(dir))
}
