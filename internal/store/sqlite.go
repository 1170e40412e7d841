package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	doc        TEXT NOT NULL,
	UNIQUE (collection, id)
);
`

// sqliteStore is the local-device variant: a single on-disk file, no
// server round trip, writes effectively cannot fail in normal use.
type sqliteStore struct {
	db *sqlx.DB
	*notifier
}

var _ Store = (*sqliteStore)(nil)

func NewSQLite(path string) (Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	log.Info().Str("path", path).Msg("opened local store")
	return &sqliteStore{db: db, notifier: newNotifier()}, nil
}

func (s *sqliteStore) LoadAll(ctx context.Context, collection string) ([]Record, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, doc
		FROM documents
		WHERE collection = ?
		ORDER BY seq
		`, collection)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *sqliteStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	r := Record{ID: id}
	err := s.db.QueryRowxContext(ctx, `
		SELECT doc FROM documents WHERE collection = ? AND id = ?
		`, collection, id).Scan(&r.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return &r, nil
}

func (s *sqliteStore) Put(ctx context.Context, collection, id string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, doc)
		VALUES (?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET doc = excluded.doc
		`, collection, id, data)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	s.emit(Change{Collection: collection, ID: id, Op: OpPut})
	return nil
}

func (s *sqliteStore) Remove(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("remove %s/%s: %w", collection, id, err)
	}
	s.emit(Change{Collection: collection, ID: id, Op: OpRemove})
	return nil
}

func (s *sqliteStore) BatchPut(ctx context.Context, collection string, records []Record) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("batch put %s: %w", collection, err)
	}
	for _, r := range records {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (collection, id, doc)
			VALUES (?, ?, ?)
			ON CONFLICT (collection, id) DO UPDATE SET doc = excluded.doc
			`, collection, r.ID, r.Data); err != nil {
			tx.Rollback()
			return fmt.Errorf("batch put %s/%s: %w", collection, r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("batch put %s: %w", collection, err)
	}
	for _, r := range records {
		s.emit(Change{Collection: collection, ID: r.ID, Op: OpPut})
	}
	return nil
}

func (s *sqliteStore) Subscribe(collection string, fn func(Change)) func() {
	return s.subscribe(collection, fn)
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
