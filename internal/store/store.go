package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"insightmix/internal/core"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite-backed persistence layer: view preferences, saved
// mixes, and the generation audit trail. Scoring code never touches it;
// all I/O stays at the presentation shell.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a store instance backed by a SQLite database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "insightmix.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{
		db:   db,
		path: dbPath,
	}

	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// initialize creates the necessary tables
func (s *Store) initialize() error {
	preferencesTable := `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT,
		updated_at DATETIME
	);`

	mixesTable := `
	CREATE TABLE IF NOT EXISTS mixes (
		id TEXT PRIMARY KEY,
		name TEXT,
		insight_ids TEXT,
		recipe_id TEXT,
		date_saved DATETIME
	);`

	generationsTable := `
	CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		insight_ids TEXT,
		framework TEXT,
		model_used TEXT,
		succeeded INTEGER,
		error TEXT,
		date_generated DATETIME
	);`

	for _, table := range []string{preferencesTable, mixesTable, generationsTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Preference keys used by the view shell.
const (
	PrefTab            = "tab"
	PrefMode           = "mode"
	PrefPanelCollapsed = "panel_collapsed"
)

// SetPreference writes one preference key. Last write wins.
func (s *Store) SetPreference(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}

// GetPreference reads one preference key, returning the fallback when the
// key has never been written.
func (s *Store) GetPreference(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return value, nil
}

// LoadViewPreferences reads the persisted view preferences, applying
// defaults for keys that were never written.
func (s *Store) LoadViewPreferences() (core.ViewPreferences, error) {
	prefs := core.ViewPreferences{}

	tab, err := s.GetPreference(PrefTab, "insights")
	if err != nil {
		return prefs, err
	}
	mode, err := s.GetPreference(PrefMode, "power")
	if err != nil {
		return prefs, err
	}
	collapsed, err := s.GetPreference(PrefPanelCollapsed, "false")
	if err != nil {
		return prefs, err
	}

	prefs.Tab = tab
	prefs.Mode = mode
	prefs.PanelCollapsed = collapsed == "true"
	return prefs, nil
}

// SaveViewPreferences writes every view preference key.
func (s *Store) SaveViewPreferences(prefs core.ViewPreferences) error {
	collapsed := "false"
	if prefs.PanelCollapsed {
		collapsed = "true"
	}
	if err := s.SetPreference(PrefTab, prefs.Tab); err != nil {
		return err
	}
	if err := s.SetPreference(PrefMode, prefs.Mode); err != nil {
		return err
	}
	return s.SetPreference(PrefPanelCollapsed, collapsed)
}

// SaveMix persists a named selection.
func (s *Store) SaveMix(m core.SavedMix) error {
	ids, err := json.Marshal(m.InsightIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal insight ids: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO mixes (id, name, insight_ids, recipe_id, date_saved) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, string(ids), m.RecipeID, m.DateSaved,
	)
	if err != nil {
		return fmt.Errorf("failed to save mix: %w", err)
	}
	return nil
}

// GetMix loads one saved mix by id.
func (s *Store) GetMix(id string) (*core.SavedMix, error) {
	var m core.SavedMix
	var ids string
	err := s.db.QueryRow(
		`SELECT id, name, insight_ids, recipe_id, date_saved FROM mixes WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &ids, &m.RecipeID, &m.DateSaved)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("mix %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mix: %w", err)
	}
	if err := json.Unmarshal([]byte(ids), &m.InsightIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insight ids: %w", err)
	}
	return &m, nil
}

// ListMixes returns all saved mixes, newest first.
func (s *Store) ListMixes() ([]core.SavedMix, error) {
	rows, err := s.db.Query(`SELECT id, name, insight_ids, recipe_id, date_saved FROM mixes ORDER BY date_saved DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mixes: %w", err)
	}
	defer rows.Close()

	var mixes []core.SavedMix
	for rows.Next() {
		var m core.SavedMix
		var ids string
		if err := rows.Scan(&m.ID, &m.Name, &ids, &m.RecipeID, &m.DateSaved); err != nil {
			return nil, fmt.Errorf("failed to scan mix: %w", err)
		}
		if err := json.Unmarshal([]byte(ids), &m.InsightIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal insight ids: %w", err)
		}
		mixes = append(mixes, m)
	}
	return mixes, rows.Err()
}

// DeleteMix removes one saved mix.
func (s *Store) DeleteMix(id string) error {
	_, err := s.db.Exec(`DELETE FROM mixes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mix: %w", err)
	}
	return nil
}

// RecordGeneration appends one entry to the generation audit trail.
func (s *Store) RecordGeneration(record core.GenerationRecord) error {
	ids, err := json.Marshal(record.InsightIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal insight ids: %w", err)
	}
	succeeded := 0
	if record.Succeeded {
		succeeded = 1
	}
	_, err = s.db.Exec(
		`INSERT INTO generations (id, insight_ids, framework, model_used, succeeded, error, date_generated)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, string(ids), record.Framework, record.ModelUsed, succeeded, record.Error, record.DateGenerated,
	)
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

// ListGenerations returns the generation audit trail, newest first.
func (s *Store) ListGenerations(limit int) ([]core.GenerationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, insight_ids, framework, model_used, succeeded, error, date_generated
		 FROM generations ORDER BY date_generated DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var records []core.GenerationRecord
	for rows.Next() {
		var record core.GenerationRecord
		var ids string
		var succeeded int
		if err := rows.Scan(&record.ID, &ids, &record.Framework, &record.ModelUsed, &succeeded, &record.Error, &record.DateGenerated); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		if err := json.Unmarshal([]byte(ids), &record.InsightIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal insight ids: %w", err)
		}
		record.Succeeded = succeeded == 1
		records = append(records, record)
	}
	return records, rows.Err()
}
