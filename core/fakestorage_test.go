package core_test

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/vickylk-dev/task-manager-tool/core"
)

// fakeStorage is an in-memory stand-in for the kv adapter.
type fakeStorage struct {
	mu     sync.RWMutex
	values map[string]string

	failSet bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{values: map[string]string{}}
}

func (f *fakeStorage) Ping(context.Context) error {
	return nil
}

func (f *fakeStorage) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStorage) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSet {
		return core.ErrUnavailable
	}
	f.values[key] = value
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.values, key)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seqIDs returns an id generator yielding id-1, id-2, ...
func seqIDs() core.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "id-" + strconv.Itoa(n)
	}
}

// tickingClock returns a clock advancing one second per call.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTickingClock() *tickingClock {
	return &tickingClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(time.Second)
	return c.now
}
