package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"spending/internal/backend"
	"spending/internal/config"
	"spending/internal/log"
	"spending/internal/onboarding"
	"spending/internal/store"
)

// shutdownTimeout bounds the final flush of queued writes.
const shutdownTimeout = 10 * time.Second

// OpenFunc builds the key-value stack a session persists into.
type OpenFunc func(ctx context.Context) (*backend.Result, error)

// App owns one command invocation: it opens the backend, loads the store
// before the command runs and disposes of both afterwards.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Open   OpenFunc
	Now    func() time.Time

	backend *backend.Result
	store   *store.Store
}

// NewApp creates an App whose backend comes from cfg.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Discard()
	}
	factory := backend.NewFactory(logger)
	return &App{
		Config: cfg,
		Logger: logger,
		Now:    time.Now,
		Open: func(ctx context.Context) (*backend.Result, error) {
			bcfg, err := backend.FromAppConfig(cfg)
			if err != nil {
				return nil, err
			}
			return factory.Create(ctx, bcfg)
		},
	}
}

// Execute builds the command tree, runs it with args and always releases
// the session afterwards.
func (a *App) Execute(ctx context.Context, args []string, out io.Writer) error {
	root := NewRoot(&CmdParams{App: a})
	root.SetArgs(args)
	if out != nil {
		root.SetOut(out)
		root.SetErr(out)
	}

	err := root.ExecuteContext(ctx)
	if cerr := a.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Bootstrap loads the store, shows the one-time welcome and puts the store
// in the command's context.
func (a *App) Bootstrap(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := a.Open(ctx)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	a.backend = result

	opts := []store.Option{store.WithLogger(a.Logger), store.WithClock(a.now)}
	if a.Config != nil {
		opts = append(opts, store.WithPersistTimeout(a.Config.PersistTimeout))
	}
	s := store.New(result.Store, opts...)
	if err := s.Initialize(ctx); err != nil {
		return fmt.Errorf("load spending data: %w", err)
	}
	a.store = s

	flag := onboarding.New(result.Store, a.Logger)
	if flag.IsFirstLaunch(ctx) {
		printWelcome(cmd.OutOrStdout())
		flag.MarkLaunched(ctx)
	}

	cmd.SetContext(store.NewContext(log.NewContext(ctx, a.Logger), s))
	return nil
}

// Close flushes the store and releases the backend. Safe to call more than
// once.
func (a *App) Close() error {
	var errs []error

	if a.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := a.store.Dispose(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush pending writes: %w", err))
		}
		cancel()
		a.store = nil
	}

	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
		a.backend = nil
	}

	if err := errors.Join(errs...); err != nil {
		a.Logger.Error("Shutdown incomplete", log.FieldOperation, log.OpShutdown, log.FieldError, err)
		return err
	}
	return nil
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func printWelcome(w io.Writer) {
	fmt.Fprintln(w, "Welcome to Spending!")
	fmt.Fprintln(w, "  Track every expense:  spending add --amount 12.50 --category Food --description lunch")
	fmt.Fprintln(w, "  See where it goes:    spending monthly, spending analysis")
	fmt.Fprintln(w, "  Add your own tags:    spending category add Gifts")
	fmt.Fprintln(w)
}
