package filesystem

import (
	"context"
	"sync/atomic"
)

var scopeCounter atomic.Uint64

// Scope identifies one logical unit of work. Each scope caches at most one
// filesystem handle per factory generation, keeping concurrent tasks isolated
// from each other's fakes.
type Scope struct {
	id uint64
}

// NewScope allocates a scope with a process-unique identifier.
func NewScope() *Scope {
	return &Scope{id: scopeCounter.Add(1)}
}

// ID returns the scope's process-unique identifier.
func (s *Scope) ID() uint64 {
	return s.id
}

type scopeContextKey struct{}

// WithScope attaches a fresh execution scope to ctx. All Current calls made
// with the returned context (or contexts derived from it) share one handle.
func WithScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, NewScope())
}

// ScopeFrom extracts the execution scope attached to ctx, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeContextKey{}).(*Scope)
	return scope, ok
}
