package env

import (
	"os"
	"strings"

	"github.com/pivoice/ttsd/internal/envvar"
)

// Environment identifies the runtime environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv resolves the environment from TTSD_ENV.
// Anything other than "production" is treated as development.
func FromEnv() Environment {
	switch strings.ToLower(os.Getenv(envvar.TTSDEnv)) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}
