// Package persistence provides SQLite-based save storage. The whole game
// state is serialized as one JSON document per save slot; partial writes
// are impossible because each save is a single transaction.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/echoforge/internal/game"
)

// DefaultSlot is the save slot used when none is specified.
const DefaultSlot = "default"

// Store wraps a SQLite connection for game state persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return st, nil
}

// Close closes the database connection.
func (st *Store) Close() error {
	return st.conn.Close()
}

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		id TEXT NOT NULL,
		state TEXT NOT NULL,
		saved_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := st.conn.Exec(schema)
	return err
}

// Save writes the full game state to a slot in one transaction. The save id
// is assigned at state creation; the fallback here only covers states built
// by hand.
func (st *Store) Save(slot string, state *game.State) error {
	if state.ID == "" {
		state.ID = uuid.NewString()
	}

	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tx, err := st.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO saves (slot, id, state, saved_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(slot) DO UPDATE SET id = excluded.id,
			state = excluded.state, saved_at = excluded.saved_at`,
		slot, state.ID, string(blob),
	)
	if err != nil {
		return fmt.Errorf("write save %s: %w", slot, err)
	}

	return tx.Commit()
}

// Load reads the game state from a slot. A missing slot returns (nil, nil):
// the caller starts a fresh game. A corrupt save is treated the same way,
// with a warning, rather than refusing to start.
func (st *Store) Load(slot string) (*game.State, error) {
	var blob string
	err := st.conn.Get(&blob, "SELECT state FROM saves WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", slot, err)
	}

	var state game.State
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		slog.Warn("discarding corrupt save", "slot", slot, "error", err)
		return nil, nil
	}
	state.Normalize()
	return &state, nil
}

// Clear deletes a save slot.
func (st *Store) Clear(slot string) error {
	_, err := st.conn.Exec("DELETE FROM saves WHERE slot = ?", slot)
	return err
}

// SetMeta stores a key-value pair.
func (st *Store) SetMeta(key, value string) error {
	_, err := st.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value; missing keys return "".
func (st *Store) GetMeta(key string) (string, error) {
	var value string
	err := st.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}
