// Package kv is the profile-local key-value storage behind the
// stores: a SQLite file holding one whole JSON document per key,
// replaced in full on every write.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, path string) (*Store, error) {
	conn, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		log.Error("cannot open storage", "path", path, "error", err)
		return nil, err
	}
	// SQLite allows one writer; funnel everything through one
	// connection so concurrent handlers queue instead of failing
	// with a busy error.
	conn.SetMaxOpenConns(1)
	return &Store{log: log, conn: conn}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT v FROM kv WHERE k = ?`

	var v string
	if err := s.conn.GetContext(ctx, &v, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv(k, v) VALUES (?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v;
	`

	if _, err := s.conn.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv WHERE k = ?`

	if _, err := s.conn.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
