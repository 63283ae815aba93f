package textgen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider indicates the configured provider name is not supported.
	ErrUnknownProvider = errors.New("unknown text-generation provider")

	// ErrEmptyCompletion indicates the backend returned no usable text.
	ErrEmptyCompletion = errors.New("empty completion from provider")
)

// ProviderError wraps a backend-specific failure with the provider name.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
