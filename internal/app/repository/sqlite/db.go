package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"voice2text/internal/app/util/files"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user TEXT NOT NULL,
	backend TEXT NOT NULL DEFAULT '',
	model TEXT NOT NULL DEFAULT '',
	language TEXT NOT NULL DEFAULT '',
	file_name TEXT NOT NULL DEFAULT '',
	audio_duration REAL NOT NULL DEFAULT 0,
	transcription TEXT NOT NULL DEFAULT '',
	last_conversion_time TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_transcriptions_user ON transcriptions(user);
CREATE INDEX IF NOT EXISTS idx_transcriptions_file_name ON transcriptions(file_name);
`

// SQLiteDB is the sqlite-backed TranscriptionDAO.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if necessary) the history database at
// dbFilePath and ensures the schema exists.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	if err := files.EnsureDirectory(filepath.Dir(dbFilePath)); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

// NewWithDB wraps an existing connection. Used by tests to substitute a mock.
func NewWithDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

// DefaultDBPath returns data/transcription.db under the module root.
func DefaultDBPath() (string, error) {
	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(projectRoot, "data", "transcription.db"), nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}
