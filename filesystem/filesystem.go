// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It vends afero-backed filesystem handles through a Provider that can be switched
// into test mode, where a caller-supplied factory hands an isolated in-memory
// backend to each execution scope.
package filesystem

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/mo"
	"github.com/spf13/afero"
)

// Factory produces a fresh filesystem handle. In test mode the provider
// invokes it once per execution scope and caches the result.
type Factory func() afero.Fs

// Operational errors surfaced by the provider.
var (
	// ErrNilFactory indicates that SetFileSystemFactory was called without a factory.
	ErrNilFactory = errors.New("filesystem: factory must not be nil")

	// ErrProductionEnvironment indicates that test mode was requested while the
	// process appears to be running in production and the guard is active.
	ErrProductionEnvironment = errors.New("filesystem: test mode is forbidden in a production environment")

	// ErrNilHandle indicates that the installed factory produced no usable handle.
	ErrNilHandle = errors.New("filesystem: factory returned a nil filesystem handle")
)

// Provider vends filesystem handles. In its default mode every caller shares a
// single lazily constructed backend; in test mode each execution scope receives
// its own handle from the installed factory. Safe for concurrent use.
type Provider struct {
	mu      sync.Mutex
	factory mo.Option[Factory]
	slots   *sync.Map // *Scope -> *slot, replaced wholesale on reconfigure

	defaultOnce sync.Once
	defaultFs   afero.Fs
	makeDefault Factory

	productionGuard bool
	probe           func() bool

	// root is the slot key for callers whose context carries no explicit scope.
	root *Scope
}

// slot caches the factory product for one scope within one factory generation.
type slot struct {
	once sync.Once
	fs   afero.Fs
}

// Option customizes a Provider at construction time.
type Option func(*Provider)

// WithProductionGuard toggles the refusal to enter test mode when the process
// does not look like a non-production environment. Enabled by default.
func WithProductionGuard(enabled bool) Option {
	return func(p *Provider) {
		p.productionGuard = enabled
	}
}

// WithEnvironmentProbe replaces the non-production environment detector.
// The probe must report true when test mode should be permitted.
func WithEnvironmentProbe(probe func() bool) Option {
	return func(p *Provider) {
		p.probe = probe
	}
}

// WithDefaultFs replaces the constructor for the default backend, which is
// otherwise the native OS filesystem.
func WithDefaultFs(factory Factory) Option {
	return func(p *Provider) {
		p.makeDefault = factory
	}
}

// New constructs a Provider in default mode.
func New(opts ...Option) *Provider {
	p := &Provider{
		slots:           &sync.Map{},
		makeDefault:     func() afero.Fs { return afero.NewOsFs() },
		productionGuard: true,
		probe:           NonProduction,
		root:            NewScope(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Current returns the filesystem handle for the calling execution scope.
//
// In default mode every caller receives the same backend, constructed on the
// very first access. In test mode the scope attached to ctx receives the
// factory product cached on its first access; a context without a scope falls
// back to a provider-wide root scope. Repeated calls within one scope return
// the identical handle, so state accumulated on a fake filesystem survives
// across calls.
func (p *Provider) Current(ctx context.Context) (afero.Fs, error) {
	p.mu.Lock()
	factory, testMode := p.factory.Get()
	slots := p.slots
	p.mu.Unlock()

	if !testMode {
		p.defaultOnce.Do(func() {
			p.defaultFs = p.makeDefault()
		})
		return p.defaultFs, nil
	}

	scope, ok := ScopeFrom(ctx)
	if !ok {
		scope = p.root
	}

	// The factory runs outside the provider lock so that concurrent scopes do
	// not serialize their filesystem construction.
	v, _ := slots.LoadOrStore(scope, &slot{})
	s := v.(*slot)
	s.once.Do(func() {
		s.fs = factory()
	})

	if s.fs == nil {
		return nil, ErrNilHandle
	}

	return s.fs, nil
}

// SetFileSystemFactory switches the provider into test mode. The factory is
// installed and every cached scope handle is invalidated in one atomic step.
//
// Returns ErrNilFactory when factory is nil, and ErrProductionEnvironment when
// the production guard is active and the environment probe reports a
// production environment; no state changes on either path.
func (p *Provider) SetFileSystemFactory(factory Factory) error {
	if factory == nil {
		return ErrNilFactory
	}

	if p.productionGuard && !p.probe() {
		return ErrProductionEnvironment
	}

	p.mu.Lock()
	p.factory = mo.Some(factory)
	// Swap the whole container instead of clearing entries so racing lookups
	// never observe a half-invalidated cache.
	p.slots = &sync.Map{}
	p.mu.Unlock()

	return nil
}

// ResetToDefault leaves test mode, clearing the factory and every cached scope
// handle. Idempotent; safe to call when no factory was installed. Scopes with
// in-flight references to an old handle keep using it until their next call to
// Current.
func (p *Provider) ResetToDefault() {
	p.mu.Lock()
	p.factory = mo.None[Factory]()
	p.slots = &sync.Map{}
	p.mu.Unlock()
}

// IsInTestMode reports whether an override factory is currently installed.
func (p *Provider) IsInTestMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.factory.IsPresent()
}
