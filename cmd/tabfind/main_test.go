package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabfind/internal/adapters/driving/cli"
	"github.com/custodia-labs/tabfind/internal/core/domain"
)

func TestBuild_Demo(t *testing.T) {
	dir := t.TempDir()

	svc, err := build(cli.Options{ConfigDir: dir, Demo: true})

	require.NoError(t, err)
	require.NotNil(t, svc.Search)
	require.NotNil(t, svc.Coordinator)
	require.NotNil(t, svc.Refresher)
	assert.Equal(t, filepath.Join(dir, "logs"), svc.LogDir)
	defer svc.Close()

	results, err := svc.Search.Search(context.Background(), "github", domain.SearchOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, results.Results[domain.SourceTab])
}

func TestBuild_ChromiumOpensJournal(t *testing.T) {
	dir := t.TempDir()
	profile := t.TempDir()

	svc, err := build(cli.Options{
		ConfigDir:   dir,
		ProfileDir:  profile,
		DevToolsURL: "http://127.0.0.1:1",
	})

	require.NoError(t, err)
	defer svc.Close()
	_, err = os.Stat(filepath.Join(dir, "data"))
	assert.NoError(t, err)

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDevToolsURL, settings.Browser.DevToolsURL, "flags do not persist")
}
