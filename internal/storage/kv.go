package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// KV is a durable key-value slot backed by SQLite. It stands in for the
// browser localStorage the storefront persists the cart to: one table,
// full-value writes, last write wins.
type KV struct{ db *sqlx.DB }

func Open(dsn string) (*KV, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// single connection: sqlite is single-writer and :memory: databases
	// are per-connection
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &KV{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS kv(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`)
	return err
}

// Load reads the value stored under key. The second return is false when
// no value has ever been saved.
func (s *KV) Load(key string) ([]byte, bool, error) {
	var v []byte
	err := s.db.Get(&v, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Save writes value under key, replacing any previous value.
func (s *KV) Save(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv(key,value,updated_at) VALUES(?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (s *KV) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (s *KV) Close() error { return s.db.Close() }
