package core

import (
	"context"
	"log/slog"
	"sync"
)

// ThemeKey is the storage key holding the theme preference, the
// literal "light" or "dark".
const ThemeKey = "theme"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func IsValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}

// ThemeStore persists the light/dark preference. Anything but the two
// literal values degrades to light.
type ThemeStore struct {
	log     *slog.Logger
	storage Storage

	mu      sync.Mutex
	current Theme
}

func NewThemeStore(log *slog.Logger, storage Storage) *ThemeStore {
	return &ThemeStore{
		log:     log,
		storage: storage,
		current: ThemeLight,
	}
}

// Restore loads the stored preference, keeping light on anything
// unexpected.
func (s *ThemeStore) Restore(ctx context.Context) {
	raw, ok, err := s.storage.Get(ctx, ThemeKey)
	if err != nil {
		s.log.Warn("theme restore failed, keeping light", "error", err)
		return
	}
	if !ok || !IsValidTheme(Theme(raw)) {
		return
	}

	s.mu.Lock()
	s.current = Theme(raw)
	s.mu.Unlock()
}

func (s *ThemeStore) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *ThemeStore) Set(ctx context.Context, t Theme) error {
	if !IsValidTheme(t) {
		return ErrBadArguments
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = t
	if err := s.storage.Set(ctx, ThemeKey, string(t)); err != nil {
		s.log.Error("failed to persist theme", "error", err)
	}
	return nil
}

// Toggle flips between light and dark and returns the new theme.
func (s *ThemeStore) Toggle(ctx context.Context) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == ThemeDark {
		s.current = ThemeLight
	} else {
		s.current = ThemeDark
	}
	if err := s.storage.Set(ctx, ThemeKey, string(s.current)); err != nil {
		s.log.Error("failed to persist theme", "error", err)
	}
	return s.current
}
