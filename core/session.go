package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// AuthKey is the storage key holding the persisted identity.
const AuthKey = "tm_auth_user"

// SessionStore holds at most one logged-in identity and mirrors it
// into storage. Login and signup perform no remote verification: they
// fabricate an identity from the email and persist it. If a real
// backend ever appears this store becomes an adapter with the same
// contract.
type SessionStore struct {
	log     *slog.Logger
	storage Storage
	delay   time.Duration

	mu      sync.Mutex
	current *Identity
}

func NewSessionStore(log *slog.Logger, storage Storage, delay time.Duration) *SessionStore {
	return &SessionStore{
		log:     log,
		storage: storage,
		delay:   delay,
	}
}

// Restore loads a previously persisted identity. A corrupt record is
// deleted and treated as logged out; no error reaches the caller.
// Must run before any route-guard decision.
func (s *SessionStore) Restore(ctx context.Context) {
	raw, ok, err := s.storage.Get(ctx, AuthKey)
	if err != nil {
		s.log.Warn("session restore failed, treating as logged out", "error", err)
		return
	}
	if !ok {
		return
	}

	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		s.log.Warn("corrupt session record, clearing", "error", err)
		if err := s.storage.Delete(ctx, AuthKey); err != nil {
			s.log.Error("failed to clear corrupt session record", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.current = &id
	s.mu.Unlock()
}

// Login establishes the identity for email. The password is not
// checked beyond the boundary validation done by the caller. The
// configured delay is cosmetic, there to give the UI a visible
// in-progress state; concurrent submits serialize on the store mutex
// and the record is single-valued, so at most one identity is ever
// persisted.
func (s *SessionStore) Login(ctx context.Context, email, password string) Identity {
	_ = password

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
		}
	}

	id := Identity{Email: email}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.persist(ctx, id)
	s.current = &id
	return id
}

// Signup behaves exactly like Login: there is no account table, so
// establishing a new identity and re-establishing one are the same
// operation.
func (s *SessionStore) Signup(ctx context.Context, email, password string) Identity {
	return s.Login(ctx, email, password)
}

// Logout clears the identity. Calling it while logged out is a no-op.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	s.current = nil
	if err := s.storage.Delete(ctx, AuthKey); err != nil {
		s.log.Error("failed to clear session record", "error", err)
	}
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Current returns the active identity, if any.
func (s *SessionStore) Current() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Identity{}, false
	}
	return *s.current, true
}

func (s *SessionStore) persist(ctx context.Context, id Identity) {
	raw, err := json.Marshal(id)
	if err != nil {
		s.log.Error("failed to encode identity", "error", err)
		return
	}
	if err := s.storage.Set(ctx, AuthKey, string(raw)); err != nil {
		s.log.Error("failed to persist identity", "error", err)
	}
}
