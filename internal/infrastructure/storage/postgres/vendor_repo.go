package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/vendor"
)

const vendorTable = "vendors"

var vendorColumns = ExtractDBColumns[vendor.Vendor]()

type vendorRepo struct {
	store *Store
}

var _ vendor.Repository = (*vendorRepo)(nil)

func (r *vendorRepo) Create(ctx context.Context, v *vendor.Vendor) error {
	return r.store.insertRow(ctx, vendorTable, v, vendorColumns)
}

func (r *vendorRepo) GetByID(ctx context.Context, vendorID id.ID) (*vendor.Vendor, error) {
	q := builder().
		Select(vendorColumns...).
		From(vendorTable).
		Where(squirrel.Eq{"id": vendorID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var v vendor.Vendor
	if err := pgxscan.Get(ctx, r.store.pool, &v, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(vendorTable, vendorID.String())
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}

	return &v, nil
}

func (r *vendorRepo) List(ctx context.Context) ([]*vendor.Vendor, error) {
	q := builder().
		Select(vendorColumns...).
		From(vendorTable).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	vendors := []*vendor.Vendor{}
	if err := pgxscan.Select(ctx, r.store.pool, &vendors, sql, args...); err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}

	return vendors, nil
}

// Delete removes the vendor; the schema cascades to brands, issues,
// invoices, payments, and credit notes.
func (r *vendorRepo) Delete(ctx context.Context, vendorID id.ID) error {
	q := builder().
		Delete(vendorTable).
		Where(squirrel.Eq{"id": vendorID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.store.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(vendorTable, vendorID.String())
	}

	return nil
}

func (r *vendorRepo) Exists(ctx context.Context, vendorID id.ID) (bool, error) {
	q := builder().
		Select("1").
		From(vendorTable).
		Where(squirrel.Eq{"id": vendorID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.store.pool.QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("vendor exists: %w", err)
	}

	return true, nil
}
