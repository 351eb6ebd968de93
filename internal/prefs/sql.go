package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mark3labs/themeswitch/internal/logger"
)

const sqliteFile = "prefs.db"

const sqlSchema = `
CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLStore keeps preferences in a SQLite table.
type SQLStore struct {
	conn *sql.DB
	path string
}

// OpenSQLStore opens (creating if needed) the database at path.
func OpenSQLStore(path string) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL lets a second widget read while another writes.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := conn.Exec(sqlSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLStore{conn: conn, path: path}, nil
}

func (s *SQLStore) Read(key string) (string, bool) {
	var value string
	err := s.conn.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Warn("Failed to read preference %s: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (s *SQLStore) Write(key, value string) {
	_, err := s.conn.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		logger.Warn("Failed to write preference %s: %v", key, err)
	}
}

func (s *SQLStore) Delete(key string) {
	if _, err := s.conn.Exec(`DELETE FROM preferences WHERE key = ?`, key); err != nil {
		logger.Warn("Failed to delete preference %s: %v", key, err)
	}
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.conn.Close()
}
