package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the snapshot database at dsn and
// applies the embedded migrations.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate snapshot db: %w", err)
	}
	return nil
}

// SQLiteRepository stores each top-level key of the snapshot document as a row.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Persisted, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM snapshot`)
	if err != nil {
		return nil, fmt.Errorf("failed to select snapshot: %w", err)
	}
	defer rows.Close()

	doc := make(map[string]json.RawMessage)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		doc[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot rows: %w", err)
	}
	if len(doc) == 0 {
		return nil, ErrNoSnapshot
	}

	return decodeDocument(doc)
}

func (r *SQLiteRepository) Save(ctx context.Context, p models.Persisted) error {
	doc, err := encodeDocument(p)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := make([][]any, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []any{k, []byte(doc[k])})
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot`); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
		if err := dbx.ExecEach(ctx, tx, `INSERT INTO snapshot (key, value) VALUES (?, ?)`, rows); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		return nil
	})
}

func encodeDocument(p models.Persisted) (map[string]json.RawMessage, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("split snapshot: %w", err)
	}
	return doc, nil
}

func decodeDocument(doc map[string]json.RawMessage) (*models.Persisted, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("corrupt snapshot: %w", err)
	}
	return decode(b)
}

func decode(b []byte) (*models.Persisted, error) {
	var p models.Persisted
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("corrupt snapshot: %w", err)
	}
	return &p, nil
}
