package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// GetCachedRecommendation returns the cached JSON payload for a
// (normalized title, limit, sort) key, if present.
func (d *DB) GetCachedRecommendation(title string, limit int, sortBy string) (string, bool, error) {
	var payload string
	err := d.QueryRow(
		`SELECT payload FROM recommendation_cache
		 WHERE query_title = ? AND result_limit = ? AND sort_by = ?`,
		title, limit, sortBy,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading recommendation cache: %w", err)
	}
	return payload, true, nil
}

// PutCachedRecommendation stores (or replaces) the JSON payload for a
// (normalized title, limit, sort) key.
func (d *DB) PutCachedRecommendation(title string, limit int, sortBy, payload string) error {
	_, err := d.Exec(
		`INSERT INTO recommendation_cache (id, query_title, result_limit, sort_by, payload)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(query_title, result_limit, sort_by)
		 DO UPDATE SET payload = excluded.payload, created_at = datetime('now')`,
		uuid.NewString(), title, limit, sortBy, payload,
	)
	if err != nil {
		return fmt.Errorf("writing recommendation cache: %w", err)
	}
	return nil
}

// InvalidateCache drops every cached recommendation. Called when the
// catalog is reloaded, since cached payloads refer to the old snapshot.
func (d *DB) InvalidateCache() error {
	if _, err := d.Exec(`DELETE FROM recommendation_cache`); err != nil {
		return fmt.Errorf("invalidating recommendation cache: %w", err)
	}
	return nil
}

// LogQuery records one recommendation query and its outcome.
func (d *DB) LogQuery(title, outcome string) error {
	_, err := d.Exec(
		`INSERT INTO query_log (id, query_title, outcome) VALUES (?, ?, ?)`,
		uuid.NewString(), title, outcome,
	)
	if err != nil {
		return fmt.Errorf("writing query log: %w", err)
	}
	return nil
}

// QueryCount returns the number of logged queries.
func (d *DB) QueryCount() (int, error) {
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM query_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting query log: %w", err)
	}
	return n, nil
}
