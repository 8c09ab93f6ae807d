package filesystem

import (
	"context"
	"sync"

	"github.com/spf13/afero"
)

var (
	defaultMu       sync.Mutex
	defaultProvider *Provider
)

// Default returns the process-wide provider, constructing one with default
// options on first use. Dependency injection containers that prefer an
// explicit binding can instead register the result of New directly.
func Default() *Provider {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultProvider == nil {
		defaultProvider = New()
	}

	return defaultProvider
}

// SetDefault replaces the process-wide provider. Intended for application
// startup and test harness lifecycle hooks.
func SetDefault(p *Provider) {
	defaultMu.Lock()
	defaultProvider = p
	defaultMu.Unlock()
}

// Current returns the filesystem handle for ctx from the process-wide provider.
func Current(ctx context.Context) (afero.Fs, error) {
	return Default().Current(ctx)
}

// SetFileSystemFactory switches the process-wide provider into test mode.
func SetFileSystemFactory(factory Factory) error {
	return Default().SetFileSystemFactory(factory)
}

// ResetToDefault switches the process-wide provider back to its default backend.
func ResetToDefault() {
	Default().ResetToDefault()
}

// IsInTestMode reports whether the process-wide provider is in test mode.
func IsInTestMode() bool {
	return Default().IsInTestMode()
}
