package llmroute

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse indicates the provider returned success but no
// extractable text. Adapters wrap it with context; match with errors.Is.
var ErrEmptyResponse = errors.New("empty response from LLM")

// UnknownProviderError indicates a provider identifier outside the closed
// registry.
type UnknownProviderError struct {
	Provider string
}

func (e *UnknownProviderError) Error() string {
	valid := make([]string, len(providerOrder))
	for i, p := range providerOrder {
		valid[i] = string(p)
	}
	return fmt.Sprintf("Unknown provider %q. Valid providers: %s", e.Provider, strings.Join(valid, ", "))
}

// ConfigError indicates options that cannot be resolved into a caller.
// Caller names the package that supplied the options, for caller-side
// debuggability.
type ConfigError struct {
	Caller string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Caller == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Caller, e.Reason)
}

// APIError is a non-success HTTP response from a provider, carrying the
// status and raw body.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}
