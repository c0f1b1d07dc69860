package piper

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pivoice/ttsd/internal/synth"
)

// DefaultTimeout bounds a single synthesis call when the config does
// not specify one.
const DefaultTimeout = 30 * time.Second

// Synthesizer implements synth.Synthesizer for Piper TTS.
type Synthesizer struct {
	executor  *synth.Executor
	modelPath string
}

// Option configures the Synthesizer.
type Option func(*options)

type options struct {
	timeout time.Duration
	runner  synth.CommandRunner
}

// WithTimeout sets the per-call synthesis timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithCommandRunner replaces the command runner. The binary existence
// check is skipped when a custom runner is supplied.
func WithCommandRunner(runner synth.CommandRunner) Option {
	return func(o *options) {
		o.runner = runner
	}
}

// New creates a Piper synthesizer. The piper binary and the voice model
// must exist; both are checked once here so a misconfigured process
// fails at startup rather than on the first request.
func New(binPath, modelPath string, opts ...Option) (*Synthesizer, error) {
	o := &options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(o)
	}

	var executor *synth.Executor
	if o.runner != nil {
		executor = synth.NewExecutorWithRunner(binPath, o.timeout, o.runner)
	} else {
		var err error
		executor, err = synth.NewExecutor(binPath, o.timeout)
		if err != nil {
			return nil, err
		}

		if _, err := os.Stat(modelPath); err != nil {
			return nil, fmt.Errorf("voice model not found: %w", err)
		}
	}

	return &Synthesizer{
		executor:  executor,
		modelPath: modelPath,
	}, nil
}

// Provider returns the backend identifier.
func (s *Synthesizer) Provider() synth.Provider {
	return synth.ProviderPiper
}

// Synthesize synthesizes speech from req.Text into req.OutputPath.
// Piper reads text from stdin and writes the WAV file itself.
func (s *Synthesizer) Synthesize(ctx context.Context, req *synth.Request) error {
	args := s.buildArgs(req)

	_, stderr, err := s.executor.Execute(ctx, args, strings.NewReader(req.Text))
	if err != nil {
		return fmt.Errorf("execution failed: %w\nstderr: %s", err, stderr)
	}

	return nil
}

// buildArgs builds Piper command-line arguments.
func (s *Synthesizer) buildArgs(req *synth.Request) []string {
	args := []string{
		"--model", s.modelPath,
		"--output_file", req.OutputPath,
	}

	p := req.Params
	if p == nil {
		return args
	}

	// Speaker ID
	if v, ok := p["speaker_id"].(int); ok {
		args = append(args, "--speaker", fmt.Sprintf("%d", v))
	}

	// Length scale (speed)
	if v, ok := p["length_scale"].(float64); ok {
		args = append(args, "--length_scale", fmt.Sprintf("%.2f", v))
	}

	// Noise scale
	if v, ok := p["noise_scale"].(float64); ok {
		args = append(args, "--noise_scale", fmt.Sprintf("%.2f", v))
	}

	// Noise width
	if v, ok := p["noise_w"].(float64); ok {
		args = append(args, "--noise_w", fmt.Sprintf("%.2f", v))
	}

	// Sentence silence
	if v, ok := p["sentence_silence"].(float64); ok {
		args = append(args, "--sentence_silence", fmt.Sprintf("%.2f", v))
	}

	return args
}

// Close cleans up resources. Piper does not hold any.
func (s *Synthesizer) Close() error {
	return nil
}
