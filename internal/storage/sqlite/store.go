package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	apperrors "github.com/julianstephens/habittracker/internal/errors"
	"github.com/julianstephens/habittracker/internal/logger"
	"github.com/julianstephens/habittracker/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS habits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		quantity INTEGER
	)`

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// EnsureSchema opens the database file, creating it and its directory when missing,
// and creates the habits table if absent. It is safe to call on every start.
func (s *Store) EnsureSchema() error {
	if s.db == nil {
		dir := filepath.Dir(s.path)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return apperrors.Fault("ensure schema", fmt.Errorf("failed to create config directory: %w", err))
		}

		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return apperrors.Fault("ensure schema", fmt.Errorf("failed to open database: %w", err))
		}
		s.db = db
	}

	existed, err := s.tableExists("habits")
	if err != nil {
		return apperrors.Fault("ensure schema", fmt.Errorf("failed to inspect schema: %w", err))
	}

	if _, err := s.db.Exec(schema); err != nil {
		return apperrors.Fault("ensure schema", fmt.Errorf("failed to create habits table: %w", err))
	}

	if !existed {
		logger.Info("Created habits table", "path", s.path)
	}
	return nil
}

// Verify runs SQLite's integrity check and confirms the habits table is present.
func (s *Store) Verify() error {
	db, err := s.conn("verify")
	if err != nil {
		return err
	}

	var result string
	if err := db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return apperrors.Fault("verify", fmt.Errorf("failed to run integrity check: %w", err))
	}
	if result != "ok" {
		return apperrors.Fault("verify", fmt.Errorf("integrity check failed: %s", result))
	}

	exists, err := s.tableExists("habits")
	if err != nil {
		return apperrors.Fault("verify", fmt.Errorf("failed to inspect schema: %w", err))
	}
	if !exists {
		return apperrors.Fault("verify", fmt.Errorf("habits table is missing"))
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// tableExists checks if a table exists in the SQLite database.
// The check is case-insensitive to match SQLite's behavior.
func (s *Store) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// conn returns the open handle or a fault when EnsureSchema has not run.
func (s *Store) conn(op string) (*sql.DB, error) {
	if s.db == nil {
		return nil, apperrors.Fault(op, fmt.Errorf("storage not initialized"))
	}
	return s.db, nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}
