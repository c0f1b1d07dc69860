package synth

import (
	"context"
)

// Provider is a string identifier for a synthesis backend provider.
type Provider string

const (
	// ProviderPiper identifies the Piper CLI backend.
	ProviderPiper Provider = "piper"
)

// Request encapsulates all parameters for a synthesis call.
type Request struct {
	// Text is the input text to synthesize.
	Text string

	// OutputPath is the destination the WAV file is written to.
	OutputPath string

	// Params contains backend-specific synthesis parameters.
	Params map[string]any
}

// Synthesizer defines the core interface for all synthesis backends.
// A backend writes a playable WAV file to req.OutputPath as a side
// effect; there is no return payload.
type Synthesizer interface {
	// Provider returns the backend identifier.
	Provider() Provider

	// Synthesize converts text to speech and writes the result to
	// req.OutputPath, blocking until synthesis completes.
	Synthesize(ctx context.Context, req *Request) error

	// Close cleans up resources.
	Close() error
}
