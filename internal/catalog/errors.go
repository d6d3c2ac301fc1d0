package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration is matched by every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a malformed catalog or generator parameter.
// It is raised before any output is written.
type ConfigurationError struct {
	Problems []string `json:"problems" yaml:"problems"`
}

// NewConfigurationError builds a ConfigurationError from a formatted message.
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Problems: []string{fmt.Sprintf(format, args...)}}
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	switch len(e.Problems) {
	case 0:
		return ErrConfiguration.Error()
	case 1:
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Problems[0])
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s (%d problems):", ErrConfiguration, len(e.Problems)))
	for i, p := range e.Problems {
		result.WriteString(fmt.Sprintf("\n  %d. %s", i+1, p))
	}
	return result.String()
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) add(format string, args ...interface{}) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *ConfigurationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
