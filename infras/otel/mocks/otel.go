package mocks

import (
	"airbnc/infras/otel"
	"context"
	"sync"
)

// Otel hands out recording scopes and keeps the last one per span name.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

var _ otel.Otel = (*Otel)(nil)

func NewOtel() *Otel {
	return &Otel{scopes: map[string]*Scope{}}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := NewScope()

	o.mu.Lock()
	o.scopes[spanName] = scope
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the last scope opened as spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[spanName]
}
