package activity

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

var fixedNow = time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRecorder(store Store) *Recorder {
	return NewRecorder(discardLogger(), store, NewMetrics(nil), WithClock(func() time.Time { return fixedNow }))
}

func newTestExecutor(store Store, opts ...ExecutorOption) *Executor {
	return NewExecutor(discardLogger(), newTestRecorder(store), opts...)
}

// failingStore always returns err.
type failingStore struct {
	err   error
	mu    sync.Mutex
	calls int
}

func (s *failingStore) Append(context.Context, domain.ActivityLogEntry) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.err
}

// panickingStore panics on every append.
type panickingStore struct{}

func (panickingStore) Append(context.Context, domain.ActivityLogEntry) error {
	panic("store exploded")
}

// txManagerMock runs fn directly and records how often it was called.
type txManagerMock struct {
	mu    sync.Mutex
	calls int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return fn(ctx)
}

type stubEntity struct {
	ID   string
	Name string
}

func (s stubEntity) EntityIdentifier() string { return s.ID }

func userID() uuid.UUID { return uuid.MustParse("11111111-1111-1111-1111-111111111111") }
