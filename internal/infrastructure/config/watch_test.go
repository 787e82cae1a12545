package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsConfigChanges(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "catalog")
	require.NoError(t, os.Mkdir(sub, 0o755))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	target := filepath.Join(sub, "attacks.yaml")
	require.NoError(t, os.WriteFile(target, []byte("attacks: []\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for catalog write")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected event for %s", name)
	case <-time.After(200 * time.Millisecond):
	}
	assert.Empty(t, w.Drain())
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NotPanics(t, func() { _ = w.Close() })
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("a/b/attacks.yaml"))
	assert.True(t, isConfigFile("maps/town.JSON"))
	assert.True(t, isConfigFile("x.yml"))
	assert.False(t, isConfigFile("audio/map.wav"))
	assert.True(t, IsCatalogFile("catalog/monsters.yaml"))
	assert.False(t, IsCatalogFile("game.json"))
}
