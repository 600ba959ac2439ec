package store

import (
	"time"

	"spending/internal/log"
)

// DefaultPersistTimeout bounds a single background write.
const DefaultPersistTimeout = 5 * time.Second

// Option configures a Store.
type Option func(*Store)

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now; the clock decides which year is current.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.persistTimeout = d
		}
	}
}
