package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivoice/ttsd/internal/audio"
	"github.com/pivoice/ttsd/internal/service"
	"github.com/pivoice/ttsd/internal/synth"
)

// stubSynthesizer writes a tiny RIFF header to the requested output
// path, standing in for the real engine.
type stubSynthesizer struct {
	fail bool
}

func (s *stubSynthesizer) Provider() synth.Provider {
	return synth.ProviderPiper
}

func (s *stubSynthesizer) Synthesize(_ context.Context, req *synth.Request) error {
	if s.fail {
		return errors.New("exit status 1")
	}

	return os.WriteFile(req.OutputPath, []byte("RIFF\x24\x00\x00\x00WAVEfmt "), 0o644)
}

func (s *stubSynthesizer) Close() error {
	return nil
}

func newTestApp(t *testing.T, synthesizer synth.Synthesizer) (*fiber.App, *audio.Store) {
	t.Helper()

	store, err := audio.NewStore(t.TempDir())
	require.NoError(t, err)

	return New(service.NewTTS(synthesizer, store, nil)), store
}

func postSynthesize(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/synthesize", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(data, &payload))

	return resp, payload
}

func TestSynthesize(t *testing.T) {
	app, store := newTestApp(t, &stubSynthesizer{})

	resp, payload := postSynthesize(t, app, `{"text": "hello world"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	audioPath := payload["audio_path"]
	assert.Regexp(t, `^`+regexp.QuoteMeta(store.Dir())+`/tts_[0-9a-f]{32}\.wav$`, audioPath)

	// The file must exist on disk by the time the response returns.
	data, err := os.ReadFile(audioPath)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("RIFF")))
}

func TestSynthesize_EmptyText(t *testing.T) {
	app, store := newTestApp(t, &stubSynthesizer{})

	resp, payload := postSynthesize(t, app, `{"text": ""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{"error": "No text provided"}, payload)

	assertNoFiles(t, store.Dir())
}

func TestSynthesize_MissingTextKey(t *testing.T) {
	app, store := newTestApp(t, &stubSynthesizer{})

	resp, payload := postSynthesize(t, app, `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{"error": "No text provided"}, payload)

	assertNoFiles(t, store.Dir())
}

func TestSynthesize_MalformedBody(t *testing.T) {
	app, store := newTestApp(t, &stubSynthesizer{})

	resp, payload := postSynthesize(t, app, `{"text": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{"error": "No text provided"}, payload)

	assertNoFiles(t, store.Dir())
}

func TestSynthesize_BackendFailure(t *testing.T) {
	app, _ := newTestApp(t, &stubSynthesizer{fail: true})

	resp, payload := postSynthesize(t, app, `{"text": "hello"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]string{"error": "synthesis failed"}, payload)
}

func TestSynthesize_RepeatedTextDistinctFiles(t *testing.T) {
	app, _ := newTestApp(t, &stubSynthesizer{})

	_, first := postSynthesize(t, app, `{"text": "same text"}`)
	_, second := postSynthesize(t, app, `{"text": "same text"}`)

	assert.NotEqual(t, first["audio_path"], second["audio_path"])
}

func TestHealthz(t *testing.T) {
	app, _ := newTestApp(t, &stubSynthesizer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func assertNoFiles(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
