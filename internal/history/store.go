// internal/history/store.go
package history

import (
	"database/sql"
	"fmt"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// Store persists usage counters and application overrides
type Store struct {
	db *sql.DB
}

// NewStore opens the history database under the XDG data directory
func NewStore() (*Store, error) {
	dbPath, err := xdg.DataFile("centrum/history.db")
	if err != nil {
		return nil, err
	}
	return Open(dbPath)
}

// Open opens (or creates) a history database at dsn. ":memory:" is
// accepted for tests.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS usage (
			action TEXT PRIMARY KEY,
			count INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS overrides (
			id TEXT PRIMARY KEY,
			name TEXT,
			icon TEXT,
			system_icon TEXT,
			hidden INTEGER
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadUsage reads every usage counter
func (s *Store) LoadUsage() (*Map, error) {
	rows, err := s.db.Query(`SELECT action, count FROM usage`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := NewMap()
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		if count > 0 {
			m.Set(key, uint32(count))
		}
	}
	return m, rows.Err()
}

// SaveUsage replaces the stored counters with the contents of m
func (s *Store) SaveUsage(m *Map) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM usage`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO usage (action, count) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range m.Entries() {
		if _, err := stmt.Exec(e.Key, e.Count); err != nil {
			return fmt.Errorf("save usage %q: %w", e.Key, err)
		}
	}
	return tx.Commit()
}

// LoadOverrides reads every application override
func (s *Store) LoadOverrides() (Overrides, error) {
	rows, err := s.db.Query(`SELECT id, name, icon, system_icon, hidden FROM overrides`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(Overrides)
	for rows.Next() {
		var id string
		var name, icon, systemIcon sql.NullString
		var hidden sql.NullBool
		if err := rows.Scan(&id, &name, &icon, &systemIcon, &hidden); err != nil {
			return nil, err
		}
		var o Override
		if name.Valid {
			o.Name = &name.String
		}
		if icon.Valid {
			o.Icon = &icon.String
		}
		if systemIcon.Valid {
			o.SystemIcon = &systemIcon.String
		}
		if hidden.Valid {
			o.Hidden = &hidden.Bool
		}
		out[id] = o
	}
	return out, rows.Err()
}

// SetOverride stores the override for id, deleting the row when the
// override no longer changes anything.
func (s *Store) SetOverride(id string, o Override) error {
	if o.IsZero() {
		_, err := s.db.Exec(`DELETE FROM overrides WHERE id = ?`, id)
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO overrides (id, name, icon, system_icon, hidden)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			icon = excluded.icon,
			system_icon = excluded.system_icon,
			hidden = excluded.hidden
	`, id, nullString(o.Name), nullString(o.Icon), nullString(o.SystemIcon), nullBool(o.Hidden))
	return err
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullBool(p *bool) sql.NullBool {
	if p == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *p, Valid: true}
}
