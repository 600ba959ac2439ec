package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spending/internal/kv"
	"spending/internal/log"
)

// writer saves whole documents to the key-value store in the background.
//
// Pending documents are coalesced per key, so a key that is written again
// before its previous value landed only gets the newest one. Keys are written
// in the order they were first queued.
type writer struct {
	kv      kv.Writer
	logger  *log.Logger
	timeout time.Duration

	mu      sync.Mutex
	order   []string
	pending map[string]string
	busy    bool
	drained chan struct{} // closed while nothing is queued or in flight
	running bool
	stopped bool
	wake    chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func newWriter(store kv.Writer, logger *log.Logger, timeout time.Duration) *writer {
	drained := make(chan struct{})
	close(drained)
	return &writer{
		kv:      store,
		logger:  logger.WithComponent(log.ComponentWriter),
		timeout: timeout,
		pending: make(map[string]string),
		drained: drained,
		wake:    make(chan struct{}, 1),
	}
}

// Start launches the write loop. Returns an error if already running.
func (w *writer) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.stopped {
		return fmt.Errorf("persistence writer already started")
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	go w.runLoop(w.stopCh, w.doneCh)
	return nil
}

// enqueue never blocks. Documents queued after Stop are dropped.
func (w *writer) enqueue(key, value string) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		w.logger.Warn("Write dropped, writer stopped", log.FieldKey, key)
		return
	}
	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.pending[key] = value
	if !w.busy {
		w.busy = true
		w.drained = make(chan struct{})
	}
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *writer) runLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-stop:
			w.drain()
			return
		}
	}
}

func (w *writer) drain() {
	for {
		w.mu.Lock()
		if len(w.order) == 0 {
			if w.busy {
				w.busy = false
				close(w.drained)
			}
			w.mu.Unlock()
			return
		}
		key := w.order[0]
		w.order = w.order[1:]
		value := w.pending[key]
		delete(w.pending, key)
		w.mu.Unlock()

		w.write(key, value)
	}
}

func (w *writer) write(key, value string) {
	// Detached from any caller: a cancelled request must not lose the save
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.kv.Set(ctx, key, value); err != nil {
		w.logger.Error("Failed to persist document",
			log.NewFields().WithOperation(log.OpPersist).WithKey(key).WithError(err).ToSlice()...)
		return
	}
	w.logger.Debug("Document persisted",
		log.FieldKey, key,
		log.FieldBytes, len(value),
		log.FieldDurationMs, time.Since(start).Milliseconds())
}

// Flush waits until every queued document has been attempted.
func (w *writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	drained := w.drained
	w.mu.Unlock()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop writes what is still queued and waits for the loop to exit.
func (w *writer) Stop(ctx context.Context) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	running := w.running
	w.running = false
	w.mu.Unlock()

	if !running {
		return nil
	}

	close(w.stopCh)

	select {
	case <-w.doneCh:
		w.logger.Debug("Persistence writer stopped", log.FieldOperation, log.OpShutdown)
		return nil
	case <-ctx.Done():
		w.logger.Warn("Persistence writer stop timed out", log.FieldOperation, log.OpShutdown)
		return ctx.Err()
	}
}
