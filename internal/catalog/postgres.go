package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	member "Girder/internal/calc/member"
)

// PostgresCatalog stores sections as one jsonb properties document per
// designation. The loosely typed document is narrowed through the
// member package constructors on every read.
type PostgresCatalog struct {
	db *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

func (c *PostgresCatalog) Lookup(ctx context.Context, designation string) (Entry, error) {
	var raw []byte
	query := "SELECT properties FROM sections WHERE designation=$1"
	err := c.db.QueryRowContext(ctx, query, designation).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return entryFromRaw(designation, raw)
}

func (c *PostgresCatalog) ListAll(ctx context.Context) ([]Entry, error) {
	query := "SELECT designation, properties FROM sections ORDER BY designation"
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var designation string
		var raw []byte
		if err := rows.Scan(&designation, &raw); err != nil {
			return nil, err
		}
		entry, err := entryFromRaw(designation, raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (c *PostgresCatalog) Metadata(ctx context.Context) (Metadata, error) {
	var meta Metadata
	query := `SELECT count(*),
		coalesce(md5(string_agg(designation || properties::text, ',' ORDER BY designation)), ''),
		coalesce(max(updated_at), to_timestamp(0))
		FROM sections`
	err := c.db.QueryRowContext(ctx, query).Scan(&meta.Count, &meta.ContentHash, &meta.LastModified)
	return meta, err
}

func entryFromRaw(designation string, raw []byte) (Entry, error) {
	var rec map[string]float64
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Entry{}, fmt.Errorf("section %q: bad properties document: %w", designation, err)
	}
	section, err := member.SectionFromRecord(rec)
	if err != nil {
		return Entry{}, fmt.Errorf("section %q: %w", designation, err)
	}
	steel, err := member.SteelFromRecord(rec)
	if err != nil {
		return Entry{}, fmt.Errorf("section %q: %w", designation, err)
	}
	return Entry{Designation: designation, Section: section, Steel: steel}, nil
}
