package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pivoice/ttsd/internal/audio"
	"github.com/pivoice/ttsd/internal/synth"
)

// TTS is the text-to-speech service: it validates input, picks a fresh
// output path and invokes the synthesis backend synchronously.
type TTS struct {
	synthesizer synth.Synthesizer
	store       *audio.Store

	mu     sync.RWMutex
	params map[string]any
}

// NewTTS creates a new TTS service around a preconstructed synthesizer
// and output store.
func NewTTS(synthesizer synth.Synthesizer, store *audio.Store, params map[string]any) *TTS {
	return &TTS{
		synthesizer: synthesizer,
		store:       store,
		params:      params,
	}
}

// UpdateParams replaces the synthesis parameters. Called on config
// reload; in-flight requests keep the parameters they started with.
func (s *TTS) UpdateParams(params map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.params = params
}

// Synthesize converts text to speech and returns the absolute path of
// the written WAV file. Empty or whitespace-only text is rejected with
// ErrNoText before any side effect occurs. Backend failures are
// wrapped in ErrSynthesisFailed.
func (s *TTS) Synthesize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}

	outputPath := s.store.NewWAVPath()

	s.mu.RLock()
	params := s.params
	s.mu.RUnlock()

	start := time.Now()
	if err := s.synthesizer.Synthesize(ctx, &synth.Request{
		Text:       text,
		OutputPath: outputPath,
		Params:     params,
	}); err != nil {
		slog.Error("Synthesis failed",
			"provider", s.synthesizer.Provider(),
			"output_path", outputPath,
			"error", err,
		)
		return "", fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	slog.Info("Synthesis completed",
		"provider", s.synthesizer.Provider(),
		"output_path", outputPath,
		"duration", time.Since(start),
	)

	return outputPath, nil
}
