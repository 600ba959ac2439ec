// Package onboarding tracks whether the intro has been shown before.
package onboarding

import (
	"context"

	"spending/internal/kv"
	"spending/internal/log"
)

// launchedValue is what gets stored; only the key's presence matters.
const launchedValue = "true"

type Flag struct {
	kv     kv.Store
	logger *log.Logger
}

func New(store kv.Store, logger *log.Logger) *Flag {
	if logger == nil {
		logger = log.Discard()
	}
	return &Flag{kv: store, logger: logger.WithComponent(log.ComponentOnboarding)}
}

// IsFirstLaunch reports true when the flag has never been written. A read
// error also counts as a first launch.
func (f *Flag) IsFirstLaunch(ctx context.Context) bool {
	_, ok, err := f.kv.Get(ctx, kv.KeyHasLaunchedBefore)
	if err != nil {
		f.logger.WarnContext(ctx, "Failed to read onboarding flag",
			log.FieldKey, kv.KeyHasLaunchedBefore, log.FieldError, err)
		return true
	}
	return !ok
}

// MarkLaunched records that onboarding was shown. Failures are only logged.
func (f *Flag) MarkLaunched(ctx context.Context) {
	if err := f.kv.Set(ctx, kv.KeyHasLaunchedBefore, launchedValue); err != nil {
		f.logger.ErrorContext(ctx, "Failed to save onboarding flag",
			log.FieldKey, kv.KeyHasLaunchedBefore, log.FieldError, err)
	}
}

// Reset forgets the flag so the intro shows again.
func (f *Flag) Reset(ctx context.Context) error {
	return f.kv.Remove(ctx, kv.KeyHasLaunchedBefore)
}
