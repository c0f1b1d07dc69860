package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watcherConfig(lengthScale string) string {
	return `
version: "1"
synthesis:
  backend: piper
  piper:
    bin_path: /usr/local/bin/piper
    model_path: /opt/models/voice.onnx
    params:
      length_scale: ` + lengthScale + `
`
}

// rewrite replaces the watched file after a short grace period so the
// watch goroutine has registered the path with fsnotify.
func rewrite(t *testing.T, path, content string) {
	t.Helper()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher_Reload(t *testing.T) {
	path := writeConfig(t, watcherConfig("1.0"))

	reloaded := make(chan *Config, 1)
	errs := make(chan error, 1)

	watcher, err := NewWatcher(path, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
			return
		}
		reloaded <- cfg
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, watcher.Snapshot().Synthesis.Piper.Params["length_scale"])
	assert.EqualValues(t, 0, watcher.ReloadCount())

	rewrite(t, path, watcherConfig("1.5"))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 1.5, cfg.Synthesis.Piper.Params["length_scale"])
	case err := <-errs:
		t.Fatalf("reload failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	assert.Equal(t, 1.5, watcher.Snapshot().Synthesis.Piper.Params["length_scale"])
	assert.EqualValues(t, 1, watcher.ReloadCount())
}

func TestWatcher_InvalidReloadKeepsSnapshot(t *testing.T) {
	path := writeConfig(t, watcherConfig("1.0"))

	reloaded := make(chan *Config, 1)
	errs := make(chan error, 1)

	watcher, err := NewWatcher(path, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
			return
		}
		reloaded <- cfg
	})
	require.NoError(t, err)

	// The rewritten file is schema-invalid: synthesis is required.
	rewrite(t, path, `version: "1"`)

	select {
	case err := <-errs:
		assert.ErrorContains(t, err, "config validation failed")
	case <-reloaded:
		t.Fatal("invalid config must not reach the callback as a success")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}

	// The previous snapshot stays in place.
	require.NotNil(t, watcher.Snapshot().Synthesis.Piper)
	assert.Equal(t, 1.0, watcher.Snapshot().Synthesis.Piper.Params["length_scale"])
	assert.EqualValues(t, 1, watcher.ReloadCount())
}

func TestWatcher_MissingInitialConfig(t *testing.T) {
	_, err := NewWatcher("/nonexistent/config.yaml", func(*Config, error) {})
	assert.ErrorContains(t, err, "failed to load initial config")
}
