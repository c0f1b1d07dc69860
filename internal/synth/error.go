package synth

import "errors"

// Error definitions for the synth package.
var (
	ErrNotFound          = errors.New("synthesizer not found in registry")
	ErrAlreadyRegistered = errors.New("synthesizer is already registered in the registry")
)
