package synth

import "sync"

// Registry manages synthesizer instances keyed by provider.
type Registry struct {
	synthesizers map[Provider]Synthesizer
	mu           sync.RWMutex
}

// NewRegistry creates a new synthesizer registry.
func NewRegistry() *Registry {
	return &Registry{
		synthesizers: make(map[Provider]Synthesizer),
	}
}

// Register adds a synthesizer to the registry.
func (r *Registry) Register(s Synthesizer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.synthesizers[s.Provider()]; exists {
		return ErrAlreadyRegistered
	}

	r.synthesizers[s.Provider()] = s
	return nil
}

// Get retrieves a synthesizer by provider.
func (r *Registry) Get(provider Provider) (Synthesizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.synthesizers[provider]
	return s, ok
}

// Close closes all registered synthesizers.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.synthesizers {
		if err := s.Close(); err != nil {
			return err
		}
	}

	return nil
}
