// Package store holds the spending tracker's in-memory state.
//
// A Store owns the spending records, the categories and the monthly
// aggregates derived from them. Mutations update memory synchronously and
// then hand the full affected collection to a background writer, so callers
// never wait on, or see errors from, the key-value store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"spending/internal/core"
	"spending/internal/kv"
	"spending/internal/log"
)

var (
	ErrNotReady           = errors.New("store is still loading")
	ErrDisposed           = errors.New("store has been disposed")
	ErrAlreadyInitialized = errors.New("store already initialized")
)

type phase int

const (
	phaseNew phase = iota
	phaseLoading
	phaseReady
	phaseDisposed
)

// State is a point-in-time copy of the store's contents.
type State struct {
	Spendings   []core.Spending
	Categories  []core.Category
	MonthlyData []core.MonthlyData
	Loading     bool
}

type Store struct {
	kv             kv.Store
	logger         *log.Logger
	now            func() time.Time
	persistTimeout time.Duration
	writer         *writer

	mu         sync.RWMutex
	phase      phase
	spendings  []core.Spending
	categories []core.Category
	monthly    []core.MonthlyData
}

// New creates a store over the given key-value backend. It starts empty with
// the seed categories and stays loading until Initialize is called.
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:             store,
		logger:         log.Discard(),
		now:            time.Now,
		persistTimeout: DefaultPersistTimeout,
		spendings:      []core.Spending{},
		categories:     core.SeedCategories(),
		monthly:        []core.MonthlyData{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent(log.ComponentStore)
	s.writer = newWriter(store, s.logger, s.persistTimeout)
	return s
}

// Initialize loads both collections and starts the background writer.
//
// A missing key keeps its default. A key that cannot be read or decoded is
// logged and also keeps its default; the other key is unaffected. Only
// lifecycle misuse is reported as an error.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	switch s.phase {
	case phaseDisposed:
		s.mu.Unlock()
		return ErrDisposed
	case phaseLoading, phaseReady:
		s.mu.Unlock()
		return ErrAlreadyInitialized
	}
	s.phase = phaseLoading
	s.mu.Unlock()

	var (
		g          errgroup.Group
		spendings  []core.Spending
		categories []core.Category
	)
	g.Go(func() error {
		spendings = loadList[core.Spending](ctx, s.kv, kv.KeySpendings, s.logger)
		return nil
	})
	g.Go(func() error {
		categories = loadList[core.Category](ctx, s.kv, kv.KeyCategories, s.logger)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == phaseDisposed {
		return ErrDisposed
	}
	if spendings != nil {
		s.spendings = spendings
	}
	if categories != nil {
		s.categories = categories
	}
	if len(s.spendings) > 0 {
		s.recomputeLocked()
	}
	s.phase = phaseReady

	if err := s.writer.Start(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Store loaded",
		log.FieldOperation, log.OpLoad,
		"spendings", len(s.spendings),
		"categories", len(s.categories))
	return nil
}

// loadList returns nil when the key is absent or unusable.
func loadList[T any](ctx context.Context, r kv.Reader, key string, logger *log.Logger) []T {
	raw, ok, err := r.Get(ctx, key)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read stored data",
			log.FieldOperation, log.OpLoad, log.FieldKey, key, log.FieldError, err)
		return nil
	}
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.ErrorContext(ctx, "Stored data is malformed, using defaults",
			log.FieldOperation, log.OpLoad, log.FieldKey, key, log.FieldError, err)
		return nil
	}
	return items
}

// AddSpending records a new spending and returns it with its generated ID,
// month label and year.
func (s *Store) AddSpending(ctx context.Context, n core.NewSpending) (core.Spending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writableLocked(); err != nil {
		return core.Spending{}, err
	}

	rec := n.Build()
	s.spendings = append(s.spendings, rec)
	s.recomputeLocked()
	s.persistLocked(ctx, kv.KeySpendings, s.spendings)

	s.logger.DebugContext(ctx, "Spending added", log.NewFields().
		WithOperation(log.OpCreate).
		WithSpending(rec.ID, rec.Category, rec.Amount.String(), rec.Year, rec.Month).
		ToSlice()...)
	return rec, nil
}

// AddCategory appends a category. Names are not checked for duplicates here.
func (s *Store) AddCategory(ctx context.Context, name, color, icon string) (core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writableLocked(); err != nil {
		return core.Category{}, err
	}

	c := core.NewCategory(name, color, icon)
	s.categories = append(s.categories, c)
	s.persistLocked(ctx, kv.KeyCategories, s.categories)

	s.logger.DebugContext(ctx, "Category added",
		log.FieldOperation, log.OpCreate,
		log.FieldCategoryID, c.ID,
		log.FieldCategory, c.Name)
	return c, nil
}

// DeleteSpending removes the record with the given id. Unknown ids are a
// no-op.
func (s *Store) DeleteSpending(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writableLocked(); err != nil {
		return err
	}

	kept := make([]core.Spending, 0, len(s.spendings))
	for _, rec := range s.spendings {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(s.spendings) {
		return nil
	}

	s.spendings = kept
	s.recomputeLocked()
	s.persistLocked(ctx, kv.KeySpendings, s.spendings)

	s.logger.DebugContext(ctx, "Spending deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldSpendingID, id)
	return nil
}

// GetMonthlyData returns the aggregates for year in the order they were last
// computed. Only the current year is ever aggregated.
func (s *Store) GetMonthlyData(year int) []core.MonthlyData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.monthlyLocked(year)
}

func (s *Store) monthlyLocked(year int) []core.MonthlyData {
	out := make([]core.MonthlyData, 0)
	for _, m := range s.monthly {
		if m.Year == year {
			out = append(out, cloneMonthly(m))
		}
	}
	return out
}

// GetCategorySpending sums the records of the category with the given id in
// year. Unlike GetMonthlyData it is not limited to the current year.
func (s *Store) GetCategorySpending(categoryID string, year int) core.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categoryLocked(categoryID)
	if !ok {
		return core.Money{}
	}
	return sumCategory(s.spendings, c.Name, year)
}

func (s *Store) categoryLocked(id string) (core.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return core.Category{}, false
}

// State returns a copy safe to hold on to.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	monthly := make([]core.MonthlyData, len(s.monthly))
	for i, m := range s.monthly {
		monthly[i] = cloneMonthly(m)
	}
	return State{
		Spendings:   append([]core.Spending{}, s.spendings...),
		Categories:  append([]core.Category{}, s.categories...),
		MonthlyData: monthly,
		Loading:     s.phase == phaseNew || s.phase == phaseLoading,
	}
}

// Flush waits for queued writes to be attempted.
func (s *Store) Flush(ctx context.Context) error {
	return s.writer.Flush(ctx)
}

// Dispose writes out what is still queued, bounded by ctx, and stops the
// writer. Later mutations fail with ErrDisposed. Disposing twice is a no-op.
func (s *Store) Dispose(ctx context.Context) error {
	s.mu.Lock()
	if s.phase == phaseDisposed {
		s.mu.Unlock()
		return nil
	}
	s.phase = phaseDisposed
	s.mu.Unlock()

	err := s.writer.Stop(ctx)
	s.logger.DebugContext(ctx, "Store disposed", log.FieldOperation, log.OpShutdown)
	return err
}

// Disposed reports whether Dispose has been called.
func (s *Store) Disposed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase == phaseDisposed
}

func (s *Store) writableLocked() error {
	switch s.phase {
	case phaseReady:
		return nil
	case phaseDisposed:
		return ErrDisposed
	default:
		return ErrNotReady
	}
}

func (s *Store) recomputeLocked() {
	s.monthly = Recompute(s.spendings, s.categories, s.now().Year())
}

// persistLocked serialises under the lock so queued documents follow
// mutation order.
func (s *Store) persistLocked(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode document",
			log.FieldOperation, log.OpPersist, log.FieldKey, key, log.FieldError, err)
		return
	}
	s.writer.enqueue(key, string(b))
}
