package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// pgStore keeps every collection in one documents table with a jsonb
// body. The seq column records insertion order; updates keep the
// original seq so edits do not reorder listings.
type pgStore struct {
	db *sqlx.DB
	*notifier
}

var _ Store = (*pgStore)(nil)

// NewPostgres connects with a bounded retry, runs pending migrations
// and returns the document store.
func NewPostgres(databaseURL, migrationsPath string) (Store, error) {
	const maxRetries = 10
	const retryInterval = 2 * time.Second

	var db *sqlx.DB
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err = sqlx.Connect("postgres", databaseURL)
		if err == nil {
			log.Info().Msg("connected to database")
			break
		}
		log.Error().Err(err).
			Int("attempt", attempt).
			Msgf("failed to connect to database, retrying in %s", retryInterval)
		time.Sleep(retryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to database after %d attempts: %w", maxRetries, err)
	}

	if err := runMigrations(db, migrationsPath); err != nil {
		return nil, err
	}

	return &pgStore{db: db, notifier: newNotifier()}, nil
}

// runMigrations finds all "*.up.sql" files under migrationsPath, sorted
// by name, and executes each as a single statement batch.
func runMigrations(db *sqlx.DB, migrationsPath string) error {
	pattern := filepath.Join(migrationsPath, "*.up.sql")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to glob migrations: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	sort.Strings(files)

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration %q: %w", file, err)
		}
		if len(sqlBytes) == 0 {
			continue
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			return fmt.Errorf("error executing migration %q: %w", file, err)
		}
	}
	return nil
}

func (s *pgStore) LoadAll(ctx context.Context, collection string) ([]Record, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, doc
		FROM documents
		WHERE collection = $1
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

func (s *pgStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	r := Record{ID: id}
	err := s.db.QueryRowxContext(ctx, `
		SELECT doc
		FROM documents
		WHERE collection = $1 AND id = $2
		`, collection, id).Scan(&r.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return &r, nil
}

func (s *pgStore) Put(ctx context.Context, collection, id string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc
		`, collection, id, data)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	s.emit(Change{Collection: collection, ID: id, Op: OpPut})
	return nil
}

func (s *pgStore) Remove(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return fmt.Errorf("remove %s/%s: %w", collection, id, err)
	}
	s.emit(Change{Collection: collection, ID: id, Op: OpRemove})
	return nil
}

func (s *pgStore) BatchPut(ctx context.Context, collection string, records []Record) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("batch put %s: %w", collection, err)
	}
	for _, r := range records {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (collection, id, doc)
			VALUES ($1, $2, $3)
			ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc
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

func (s *pgStore) Subscribe(collection string, fn func(Change)) func() {
	return s.subscribe(collection, fn)
}

func (s *pgStore) Close() error {
	return s.db.Close()
}
