package core

import (
	"context"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Storage is the local key-value profile the stores persist into.
// Values are whole JSON documents: every write replaces the full
// value under its key.
type Storage interface {
	Pinger

	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Clock and IDGenerator are injectable so tests can pin time and ids.
type Clock func() time.Time

type IDGenerator func() string

// Deps bundles the stores the transport layer serves.
type Deps struct {
	Sessions *SessionStore
	Tasks    *TaskStore
	Themes   *ThemeStore
	Storage  Storage
}
