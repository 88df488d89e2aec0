// Package sqlite provides a SQLite-backed parameter catalog store. The
// catalog importer writes generation records into it; deployments without the
// in-process catalog read them back.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/rgbprops/internal/catalog"
	"github.com/louisbranch/rgbprops/internal/params/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/rgbprops/internal/platform/storage/sqlitemigrate"
)

// ErrObjectNotFound indicates the object has no record in the store.
var ErrObjectNotFound = errors.New("object is not in the parameter catalog")

// Store persists generation parameter records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite parameter store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutObject upserts one object's parameter record.
func (s *Store) PutObject(ctx context.Context, version catalog.Version, objectID string, record catalog.Parameters) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	objectID = strings.TrimSpace(objectID)
	if objectID == "" {
		return fmt.Errorf("object id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put object: %w", err)
	}
	for ordinal, name := range record.Names {
		value, ok := record.Values[name]
		if !ok {
			_ = tx.Rollback()
			return fmt.Errorf("record for %s is missing parameter %s", objectID, name)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO object_params (version, object_id, param_name, param_value, ordinal)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (version, object_id, param_name)
DO UPDATE SET param_value = excluded.param_value, ordinal = excluded.ordinal`,
			version.String(), objectID, name, value, ordinal,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("put object %s: %w", objectID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put object %s: %w", objectID, err)
	}
	return nil
}

// GetObject loads one object's parameter record.
func (s *Store) GetObject(ctx context.Context, version catalog.Version, objectID string) (catalog.Parameters, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Parameters{}, err
	}
	if s == nil || s.sqlDB == nil {
		return catalog.Parameters{}, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT param_name, param_value FROM object_params
WHERE version = ? AND object_id = ?
ORDER BY ordinal`,
		version.String(), objectID,
	)
	if err != nil {
		return catalog.Parameters{}, fmt.Errorf("get object %s: %w", objectID, err)
	}
	defer rows.Close()

	record := catalog.Parameters{Values: make(map[string]float64)}
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return catalog.Parameters{}, fmt.Errorf("scan object %s: %w", objectID, err)
		}
		record.Names = append(record.Names, name)
		record.Values[name] = value
	}
	if err := rows.Err(); err != nil {
		return catalog.Parameters{}, fmt.Errorf("read object %s: %w", objectID, err)
	}
	if len(record.Names) == 0 {
		return catalog.Parameters{}, fmt.Errorf("%w: %s/%s", ErrObjectNotFound, version, objectID)
	}
	return record, nil
}

// LoadVersion loads every parameter record of one version, keyed by object
// identifier. The result feeds params.NewAccessorFromData.
func (s *Store) LoadVersion(ctx context.Context, version catalog.Version) (map[string]catalog.Parameters, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT object_id, param_name, param_value FROM object_params
WHERE version = ?
ORDER BY object_id, ordinal`,
		version.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("load version %s: %w", version, err)
	}
	defer rows.Close()

	records := make(map[string]catalog.Parameters)
	for rows.Next() {
		var objectID, name string
		var value float64
		if err := rows.Scan(&objectID, &name, &value); err != nil {
			return nil, fmt.Errorf("scan version %s: %w", version, err)
		}
		record, ok := records[objectID]
		if !ok {
			record = catalog.Parameters{Values: make(map[string]float64)}
		}
		record.Names = append(record.Names, name)
		record.Values[name] = value
		records[objectID] = record
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read version %s: %w", version, err)
	}
	return records, nil
}
