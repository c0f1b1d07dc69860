package audio

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pivoice/ttsd/internal/xfs"
)

// filenamePrefix is the fixed prefix of every generated WAV file.
const filenamePrefix = "tts_"

// Store hands out unique WAV file paths inside a fixed output
// directory. Files are only ever created under fresh names; the store
// never reads, renames or deletes anything, so concurrent requests
// need no coordination.
type Store struct {
	dir string
}

// NewStore resolves dir (expanding a leading tilde) and creates it if
// missing. Runs once at startup, before the server accepts requests.
func NewStore(dir string) (*Store, error) {
	resolved, err := filepath.Abs(xfs.ExpandTilde(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	if err := xfs.EnsureDir(resolved); err != nil {
		return nil, err
	}

	return &Store{dir: resolved}, nil
}

// Dir returns the absolute output directory.
func (s *Store) Dir() string {
	return s.dir
}

// NewWAVPath returns an absolute path for a fresh output file:
// tts_<32 hex chars>.wav. The random token space makes collisions
// between concurrent requests negligible without a central registry.
func (s *Store) NewWAVPath() string {
	token := uuid.New()
	name := filenamePrefix + hex.EncodeToString(token[:]) + ".wav"
	return filepath.Join(s.dir, name)
}
