package kv

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_kv.up.sql
var createKVUp string

// Migrate creates the key-value table.
func (s *Store) Migrate() error {
	s.log.Debug("running kv migrations")

	if _, err := s.conn.Exec(createKVUp); err != nil {
		return fmt.Errorf("apply kv migration: %w", err)
	}

	s.log.Debug("kv migrations finished")
	return nil
}
