package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v3"
)

//go:embed ttsd.v1.schema.json
var schemaJSON string

const schemaName = "ttsd.v1.schema.json"

// envOverrides are environment variables applied on top of the file config.
type envOverrides struct {
	ServerHost string `env:"TTSD_SERVER_HOST"`
	ServerPort int    `env:"TTSD_SERVER_PORT"`
	OutputDir  string `env:"TTSD_OUTPUT_DIR"`
}

// LoadAndValidate loads the configuration file, validates it against the
// embedded schema, fills defaults and applies environment overrides.
func LoadAndValidate(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal into Config struct: %w", err)
	}

	applyDefaults(&config)

	if err := applyEnvOverrides(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return schema, nil
}

func applyDefaults(config *Config) {
	if config.Server.Host == "" {
		config.Server.Host = DefaultHTTPHost()
	}
	if config.Server.Port == 0 {
		config.Server.Port = DefaultHTTPPort()
	}
	if config.Output.Dir == "" {
		config.Output.Dir = DefaultOutputPath()
	}
}

func applyEnvOverrides(config *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if overrides.ServerHost != "" {
		config.Server.Host = overrides.ServerHost
	}
	if overrides.ServerPort != 0 {
		config.Server.Port = overrides.ServerPort
	}
	if overrides.OutputDir != "" {
		config.Output.Dir = overrides.OutputDir
	}

	return nil
}
