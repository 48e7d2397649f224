package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/corvid-labs/txt2html/internal/linkdict"
	"github.com/corvid-labs/txt2html/internal/storage/db"
)

// DB is a [Store] backed by a SQLite database.
type DB struct {
	sqldb *sql.DB
}

// NewDB initializes a DB at dbPath, running migrations as needed.
func NewDB(ctx context.Context, logger *slog.Logger, dbPath string) (*DB, error) {
	handle, err := db.Open(ctx, logger, dbPath)
	if err != nil {
		return nil, err
	}
	return &DB{sqldb: handle}, nil
}

// Close satisfies the [Store] interface.
func (d *DB) Close() error { return d.sqldb.Close() }

// SaveDictionary satisfies the [Dictionaries] interface.
func (d *DB) SaveDictionary(ctx context.Context, name, source string) error {
	dict, err := linkdict.Compile(source)
	if err != nil {
		return fmt.Errorf("invalid dictionary: %w", err)
	}
	_, err = d.sqldb.ExecContext(ctx,
		`INSERT INTO dictionaries (name, source, rule_count) VALUES (?, ?, ?)`,
		name, source, dict.Len())
	if isUniqueConstraintErr(err) {
		return ErrAlreadyExists
	}
	return err
}

// LoadDictionary satisfies the [Dictionaries] interface.
func (d *DB) LoadDictionary(ctx context.Context, name string) (string, error) {
	var source string
	err := d.sqldb.QueryRowContext(ctx,
		`SELECT source FROM dictionaries WHERE name = ?`, name).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return source, err
}

// ListDictionaries satisfies the [Dictionaries] interface.
func (d *DB) ListDictionaries(ctx context.Context, afterName string, limit int) ([]DictionaryRecord, string, error) {
	rows, err := d.sqldb.QueryContext(ctx,
		`SELECT name, source, rule_count, created_at FROM dictionaries
		 WHERE name > ? ORDER BY name LIMIT ?`,
		afterName, limit+1)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var records []DictionaryRecord
	for rows.Next() {
		var rec DictionaryRecord
		if err := rows.Scan(&rec.Name, &rec.Source, &rec.RuleCount, &rec.CreatedAt); err != nil {
			return nil, "", err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var next string
	if len(records) > limit {
		next = records[limit-1].Name
		records = records[:limit]
	}
	return records, next, nil
}

// DeleteDictionary satisfies the [Dictionaries] interface.
func (d *DB) DeleteDictionary(ctx context.Context, name string) error {
	res, err := d.sqldb.ExecContext(ctx, `DELETE FROM dictionaries WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordConversion satisfies the [Conversions] interface.
func (d *DB) RecordConversion(ctx context.Context, rec ConversionRecord) error {
	_, err := d.sqldb.ExecContext(ctx,
		`INSERT INTO conversions (options_json, input_bytes, output_bytes, dictionary_name)
		 VALUES (?, ?, ?, ?)`,
		rec.OptionsJSON, rec.InputBytes, rec.OutputBytes, nullIfEmpty(rec.DictionaryName))
	return err
}

// ListConversions satisfies the [Conversions] interface.
func (d *DB) ListConversions(ctx context.Context, afterID int64, limit int) ([]ConversionRecord, int64, error) {
	var rows *sql.Rows
	var err error
	if afterID > 0 {
		rows, err = d.sqldb.QueryContext(ctx,
			`SELECT id, created_at, options_json, input_bytes, output_bytes, COALESCE(dictionary_name, '')
			 FROM conversions WHERE id < ? ORDER BY id DESC LIMIT ?`,
			afterID, limit+1)
	} else {
		rows, err = d.sqldb.QueryContext(ctx,
			`SELECT id, created_at, options_json, input_bytes, output_bytes, COALESCE(dictionary_name, '')
			 FROM conversions ORDER BY id DESC LIMIT ?`,
			limit+1)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []ConversionRecord
	for rows.Next() {
		var rec ConversionRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.OptionsJSON, &rec.InputBytes, &rec.OutputBytes, &rec.DictionaryName); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var next int64
	if len(records) > limit {
		next = records[limit-1].ID
		records = records[:limit]
	}
	return records, next, nil
}

var _ Store = (*DB)(nil)

// isUniqueConstraintErr reports whether err is a SQLite UNIQUE constraint
// violation. modernc.org/sqlite doesn't expose a typed sentinel for this,
// so the error text is the only signal available.
func isUniqueConstraintErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
