package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/brand"
)

const brandTable = "brands"

var brandColumns = ExtractDBColumns[brand.Brand]()

type brandRepo struct {
	store *Store
}

var _ brand.Repository = (*brandRepo)(nil)

func (r *brandRepo) Create(ctx context.Context, b *brand.Brand) error {
	err := r.store.insertRow(ctx, brandTable, b, brandColumns)
	if pgErrorCode(err) == pgForeignKeyViolation {
		return apperror.NewNotFound("vendor", b.VendorID.String())
	}
	return err
}

func (r *brandRepo) GetByID(ctx context.Context, brandID id.ID) (*brand.Brand, error) {
	q := builder().
		Select(brandColumns...).
		From(brandTable).
		Where(squirrel.Eq{"id": brandID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var b brand.Brand
	if err := pgxscan.Get(ctx, r.store.pool, &b, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(brandTable, brandID.String())
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}

	return &b, nil
}

func (r *brandRepo) List(ctx context.Context) ([]*brand.Brand, error) {
	q := builder().
		Select(brandColumns...).
		From(brandTable).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	brands := []*brand.Brand{}
	if err := pgxscan.Select(ctx, r.store.pool, &brands, sql, args...); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	return brands, nil
}

func (r *brandRepo) Delete(ctx context.Context, brandID id.ID) error {
	q := builder().
		Delete(brandTable).
		Where(squirrel.Eq{"id": brandID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.store.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(brandTable, brandID.String())
	}

	return nil
}
