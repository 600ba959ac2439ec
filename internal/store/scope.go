package store

import (
	"context"
	"errors"
)

// ErrNoStore is returned when no live Store is in scope.
var ErrNoStore = errors.New("no spending store in scope")

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the Store carried by ctx. It fails when there is none
// or when the store has already been disposed.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil || s.Disposed() {
		return nil, ErrNoStore
	}
	return s, nil
}
