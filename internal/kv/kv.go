// Package kv defines the asynchronous string key-value store the domain
// persists into, and decorators shared by every backend.
package kv

import (
	"context"
	"errors"
)

// Keys used by the application.
const (
	KeySpendings         = "spendings"
	KeyCategories        = "categories"
	KeyHasLaunchedBefore = "hasLaunchedBefore"
)

var ErrClosed = errors.New("kv store closed")

type (
	// Reader looks up a single key. ok is false when the key is absent.
	Reader interface {
		Get(ctx context.Context, key string) (value string, ok bool, err error)
	}

	// Writer replaces or removes a whole value.
	Writer interface {
		Set(ctx context.Context, key, value string) error
		Remove(ctx context.Context, key string) error
	}

	Store interface {
		Reader
		Writer
	}
)
