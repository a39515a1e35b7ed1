// Package manifest records generated icon files in a SQLite database so
// that successive runs can be compared.
package manifest

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"neonicons/internal/iconset"
)

// ErrNoRun is returned by Record before Begin
var ErrNoRun = errors.New("manifest run not started")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS files (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	path   TEXT NOT NULL,
	slot   TEXT NOT NULL,
	size   INTEGER NOT NULL,
	sha256 TEXT NOT NULL,
	bytes  INTEGER NOT NULL,
	PRIMARY KEY (run_id, path)
);
`

// Entry is one recorded file
type Entry struct {
	Path   string
	Slot   string
	Size   int
	SHA256 string
	Bytes  int
}

// Store is an open manifest database. A Store records into the run
// started by the most recent Begin.
type Store struct {
	db    *sql.DB
	runID int64
	now   func() time.Time
}

// Open opens (creating if needed) the manifest database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create manifest schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Begin starts a new run and returns its id
func (s *Store) Begin() (int64, error) {
	res, err := s.db.Exec(`INSERT INTO runs (started_at) VALUES (?)`,
		s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}
	s.runID = id
	return id, nil
}

// Record implements iconset.Recorder
func (s *Store) Record(f iconset.File) error {
	if s.runID == 0 {
		return ErrNoRun
	}
	sum := sha256.Sum256(f.Data)
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO files (run_id, path, slot, size, sha256, bytes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.runID, f.Path, f.Slot, f.Size, hex.EncodeToString(sum[:]), len(f.Data))
	if err != nil {
		return fmt.Errorf("insert file: %w", err)
	}
	return nil
}

// Files returns the entries recorded for a run, ordered by path
func (s *Store) Files(runID int64) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT path, slot, size, sha256, bytes
		FROM files
		WHERE run_id = ?
		ORDER BY path`, runID)
	if err != nil {
		return nil, fmt.Errorf("query files: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.Slot, &e.Size, &e.SHA256, &e.Bytes); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Changed lists the paths of runID whose content differs from the same
// path in the previous run. Paths absent from the previous run are not
// reported, and the first run never reports changes.
func (s *Store) Changed(runID int64) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT cur.path
		FROM files cur
		JOIN files prev ON prev.path = cur.path
		WHERE cur.run_id = ?
		  AND prev.run_id = (SELECT MAX(id) FROM runs WHERE id < ?)
		  AND prev.sha256 <> cur.sha256
		ORDER BY cur.path`, runID, runID)
	if err != nil {
		return nil, fmt.Errorf("query changes: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
