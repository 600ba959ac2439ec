package onboarding

import (
	"context"
	"errors"
	"testing"

	"spending/internal/kv"
	"spending/internal/kv/memory"
)

type brokenStore struct{ kv.Store }

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk gone")
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("disk gone")
}

func TestFlagLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	f := New(store, nil)

	if !f.IsFirstLaunch(ctx) {
		t.Fatal("expected first launch on an empty store")
	}
	f.MarkLaunched(ctx)
	if f.IsFirstLaunch(ctx) {
		t.Fatal("expected flag to be set")
	}
	if v, _, _ := store.Get(ctx, kv.KeyHasLaunchedBefore); v != "true" {
		t.Errorf("stored value = %q, want true", v)
	}

	if err := f.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if !f.IsFirstLaunch(ctx) {
		t.Fatal("expected first launch after reset")
	}
}

func TestFlagAnyValueCounts(t *testing.T) {
	f := New(memory.NewWith(map[string]string{kv.KeyHasLaunchedBefore: ""}), nil)
	if f.IsFirstLaunch(context.Background()) {
		t.Fatal("presence of the key, not its value, marks a previous launch")
	}
}

func TestFlagBackendErrors(t *testing.T) {
	f := New(brokenStore{Store: memory.New()}, nil)
	ctx := context.Background()

	if !f.IsFirstLaunch(ctx) {
		t.Fatal("read errors should count as a first launch")
	}
	f.MarkLaunched(ctx) // must not panic
}
