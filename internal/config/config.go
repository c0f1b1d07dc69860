package config

import "fmt"

// Provider is a string identifier for a synthesis backend provider.
type Provider string

const (
	// ProviderPiper selects the Piper CLI backend.
	ProviderPiper Provider = "piper"
)

// Config holds the main configuration for the daemon.
type Config struct {
	Version   string          `json:"version"   yaml:"version"`
	Server    ServerConfig    `json:"server"    yaml:"server"`
	Output    OutputConfig    `json:"output"    yaml:"output"`
	Synthesis SynthesisConfig `json:"synthesis" yaml:"synthesis"`
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// OutputConfig holds configuration for the audio output directory.
type OutputConfig struct {
	// Dir is the directory all synthesized WAV files are written to.
	// A leading tilde is expanded to the user's home directory.
	Dir string `json:"dir" yaml:"dir"`
}

// SynthesisConfig selects and configures the synthesis backend.
type SynthesisConfig struct {
	Backend Provider     `json:"backend" yaml:"backend"`
	Piper   *PiperConfig `json:"piper,omitempty" yaml:"piper,omitempty"`
}

// PiperConfig holds configuration for the Piper backend.
type PiperConfig struct {
	BinPath        string         `json:"bin_path"                  yaml:"bin_path"`
	ModelPath      string         `json:"model_path"                yaml:"model_path"`
	TimeoutSeconds int            `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`
	Params         map[string]any `json:"params,omitempty"          yaml:"params,omitempty"`
}
