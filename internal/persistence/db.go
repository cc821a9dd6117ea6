// Package persistence provides SQLite-based save-game storage.
// Each save slot holds the complete game state as one JSON document.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ncruces/go-strftime"
	_ "modernc.org/sqlite"

	"github.com/talgya/dojo-idle/internal/environment"
	"github.com/talgya/dojo-idle/internal/game"
)

// ErrNoSave is returned when a requested save does not exist.
var ErrNoSave = errors.New("no saved game")

// timeLayout is the strftime layout for stored timestamps.
const timeLayout = "%Y-%m-%d %H:%M:%S"

// DB wraps a SQLite connection for save-game persistence.
type DB struct {
	conn *sqlx.DB
	now  func() time.Time
}

// SaveInfo summarises one save slot.
type SaveInfo struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	CreatedAt   string  `db:"created_at"`
	UpdatedAt   string  `db:"updated_at"`
	PlayTime    float64 `db:"play_time"`
	Environment string  `db:"environment"`
	PowerLevel  float64 `db:"power_level"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn, now: time.Now}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		updated_ns INTEGER NOT NULL,
		play_time REAL NOT NULL,
		environment TEXT NOT NULL,
		power_level REAL NOT NULL,
		state_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		save_id TEXT NOT NULL,
		play_time REAL NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_saves_updated ON saves(updated_ns);
	CREATE INDEX IF NOT EXISTS idx_events_save ON events(save_id);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SaveGame writes st under name, replacing any previous save with that name,
// and returns the slot id. The slot's event log is replaced with st.Events.
func (db *DB) SaveGame(name string, st *game.State) (string, error) {
	stateJSON, err := json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.Get(&id, "SELECT id FROM saves WHERE name = ?", name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.NewString()
	case err != nil:
		return "", fmt.Errorf("lookup save %q: %w", name, err)
	}

	now := db.now()
	stamp := strftime.Format(timeLayout, now.UTC())
	_, err = tx.Exec(`INSERT INTO saves
		(id, name, created_at, updated_at, updated_ns, play_time, environment, power_level, state_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			updated_at = excluded.updated_at,
			updated_ns = excluded.updated_ns,
			play_time = excluded.play_time,
			environment = excluded.environment,
			power_level = excluded.power_level,
			state_json = excluded.state_json`,
		id, name, stamp, stamp, now.UnixNano(), st.PlayTime,
		st.Progression.Current().ID, st.PowerLevel.Effective(), string(stateJSON),
	)
	if err != nil {
		return "", fmt.Errorf("upsert save %q: %w", name, err)
	}

	if _, err := tx.Exec("DELETE FROM events WHERE save_id = ?", id); err != nil {
		return "", fmt.Errorf("clear events: %w", err)
	}
	for _, e := range st.Events {
		if _, err := tx.Exec(
			"INSERT INTO events (save_id, play_time, description, category) VALUES (?, ?, ?, ?)",
			id, e.PlayTime, e.Description, e.Category,
		); err != nil {
			return "", fmt.Errorf("insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit save %q: %w", name, err)
	}
	slog.Info("game saved", "name", name, "id", id, "environment", st.Progression.Current().ID)
	return id, nil
}

// LoadGame restores a save by id, attaching envs (nil = defaults).
func (db *DB) LoadGame(id string, envs []environment.Definition) (*game.State, error) {
	var raw string
	err := db.conn.Get(&raw, "SELECT state_json FROM saves WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("load save %s: %w", id, err)
	}
	return decodeState(raw, envs)
}

// LoadByName restores the save written under name.
func (db *DB) LoadByName(name string, envs []environment.Definition) (*game.State, SaveInfo, error) {
	var info SaveInfo
	err := db.conn.Get(&info, `SELECT id, name, created_at, updated_at, play_time, environment, power_level
		FROM saves WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, SaveInfo{}, ErrNoSave
	}
	if err != nil {
		return nil, SaveInfo{}, fmt.Errorf("find save %q: %w", name, err)
	}
	st, err := db.LoadGame(info.ID, envs)
	return st, info, err
}

// LoadLatest restores the most recently written save.
func (db *DB) LoadLatest(envs []environment.Definition) (*game.State, SaveInfo, error) {
	var info SaveInfo
	err := db.conn.Get(&info, `SELECT id, name, created_at, updated_at, play_time, environment, power_level
		FROM saves ORDER BY updated_ns DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, SaveInfo{}, ErrNoSave
	}
	if err != nil {
		return nil, SaveInfo{}, fmt.Errorf("latest save: %w", err)
	}
	st, err := db.LoadGame(info.ID, envs)
	return st, info, err
}

// ListSaves returns every save, newest first.
func (db *DB) ListSaves() ([]SaveInfo, error) {
	var saves []SaveInfo
	err := db.conn.Select(&saves, `SELECT id, name, created_at, updated_at, play_time, environment, power_level
		FROM saves ORDER BY updated_ns DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return saves, nil
}

// DeleteSave removes a save and its events.
func (db *DB) DeleteSave(id string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM saves WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete save %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoSave
	}
	if _, err := tx.Exec("DELETE FROM events WHERE save_id = ?", id); err != nil {
		return fmt.Errorf("delete events of %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete %s: %w", id, err)
	}
	return nil
}

// RecentEvents returns the most recent N events of a save, newest first.
func (db *DB) RecentEvents(saveID string, limit int) ([]game.Event, error) {
	var events []game.Event
	err := db.conn.Select(&events,
		"SELECT play_time AS playtime, description, category FROM events WHERE save_id = ? ORDER BY id DESC LIMIT ?",
		saveID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent events of %s: %w", saveID, err)
	}
	return events, nil
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("save meta %q: %w", key, err)
	}
	return nil
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	if err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key); err != nil {
		return "", fmt.Errorf("get meta %q: %w", key, err)
	}
	return value, nil
}

func decodeState(raw string, envs []environment.Definition) (*game.State, error) {
	var st game.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	st.Attach(envs)
	return &st, nil
}
