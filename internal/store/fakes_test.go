package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"spending/internal/core"
	"spending/internal/kv/memory"
)

var errBackend = errors.New("backend unavailable")

// fakeKV wraps the memory store with injectable failures.
type fakeKV struct {
	*memory.Store

	mu       sync.Mutex
	getErr   map[string]error
	setErr   error
	gate     chan struct{} // when set, Set blocks until it is closed
	setCalls []string
}

func newFakeKV(seed map[string]string) *fakeKV {
	return &fakeKV{Store: memory.NewWith(seed), getErr: map[string]error{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	err := f.getErr[key]
	f.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	return f.Store.Get(ctx, key)
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	f.setCalls = append(f.setCalls, key)
	gate, err := f.gate, f.setErr
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err != nil {
		return err
	}
	return f.Store.Set(ctx, key, value)
}

func (f *fakeKV) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.setCalls...)
}

func (f *fakeKV) value(t *testing.T, key string) string {
	t.Helper()
	v, _, err := f.Store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get %s: %v", key, err)
	}
	return v
}

var testNow = time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newReadyStore(t *testing.T, backend *fakeKV) *Store {
	t.Helper()
	s := New(backend, WithClock(fixedClock), WithPersistTimeout(time.Second))
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { s.Dispose(context.Background()) })
	return s
}

func flush(t *testing.T, s *Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
}

func spendingOn(amount, category, description string, date time.Time) core.NewSpending {
	return core.NewSpending{
		Amount:      core.MustMoney(amount),
		Category:    category,
		Description: description,
		Date:        date,
	}
}
