package backend

import (
	"context"
	"fmt"
	"time"

	"spending/internal/cache"
	"spending/internal/kv"
	"spending/internal/kv/memory"
	"spending/internal/kv/sqlite"
	"spending/internal/log"
)

// cleanupInterval is how often expired cache entries are swept
const cleanupInterval = time.Minute

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// Create implements Factory.Create
func (f *DefaultFactory) Create(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		result *Result
		err    error
	)
	switch config.Type {
	case SQLiteBackend:
		result, err = f.createSQLiteBackend(config)
	case MemoryBackend:
		result, err = f.createMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, err
	}

	if config.CacheSize > 0 {
		f.wrapWithCache(result, config)
	}

	f.logger.InfoContext(ctx, "Initialized key-value backend",
		log.FieldBackend, config.Type.String(),
		"cache_size", config.CacheSize)

	return result, nil
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*Result, error) {
	repo, err := sqlite.NewRepository(config.SQLiteDBPath, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Opened SQLite database", "db_path", config.SQLiteDBPath)

	return &Result{
		Store:   repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend() (*Result, error) {
	f.logger.Warn("Using in-memory backend, data will not survive the process")
	return &Result{Store: memory.New()}, nil
}

func (f *DefaultFactory) wrapWithCache(result *Result, config Config) {
	cached := kv.NewCached(result.Store, config.CacheSize, config.CacheTTL)

	manager := cache.NewManager(f.logger)
	manager.Register(cached)
	if config.CacheTTL > 0 {
		manager.StartCleanup(cleanupInterval)
	}

	inner := result.Cleanup
	result.Store = cached
	result.Cleanup = func() error {
		manager.Stop()
		if inner == nil {
			return nil
		}
		return inner()
	}
}
