package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"vendorledger/internal/infrastructure/storage"
)

// PostgreSQL error codes used for translation into domain errors.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Store holds the pool and hands out repository views over it.
type Store struct {
	pool *Pool
}

// NewStore creates the PostgreSQL-backed store.
func NewStore(pool *Pool) *Store {
	return &Store{pool: pool}
}

// Stores returns the repository bundle backed by this store.
func (s *Store) Stores() storage.Stores {
	return storage.Stores{
		Vendors:   &vendorRepo{s},
		Brands:    &brandRepo{s},
		Issues:    &issueRepo{s},
		Invoices:  &invoiceRepo{s},
		Snapshots: &snapshotRepo{s},
	}
}

// builder returns a squirrel builder with PostgreSQL placeholder format.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// insertRow builds and executes an INSERT from the entity's "db" tags,
// restricted to the given column whitelist.
func (s *Store) insertRow(ctx context.Context, table string, entity any, cols []string) error {
	data := StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	filtered := make(map[string]any, len(cols))
	for _, col := range cols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	q := builder().
		Insert(table).
		SetMap(filtered)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}

	return nil
}

// pgErrorCode extracts the PostgreSQL error code, or "".
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
