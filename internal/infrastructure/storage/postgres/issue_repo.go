package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/issue"
)

const issueTable = "issues"

var issueColumns = ExtractDBColumns[issue.Issue]()

type issueRepo struct {
	store *Store
}

var _ issue.Repository = (*issueRepo)(nil)

func (r *issueRepo) Create(ctx context.Context, i *issue.Issue) error {
	err := r.store.insertRow(ctx, issueTable, i, issueColumns)
	if pgErrorCode(err) == pgForeignKeyViolation {
		return apperror.NewNotFound("vendor", i.VendorID.String())
	}
	return err
}

func (r *issueRepo) GetByID(ctx context.Context, issueID id.ID) (*issue.Issue, error) {
	q := builder().
		Select(issueColumns...).
		From(issueTable).
		Where(squirrel.Eq{"id": issueID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var i issue.Issue
	if err := pgxscan.Get(ctx, r.store.pool, &i, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(issueTable, issueID.String())
		}
		return nil, fmt.Errorf("get issue: %w", err)
	}

	return &i, nil
}

func (r *issueRepo) Update(ctx context.Context, i *issue.Issue) error {
	data := StructToMap(i)

	filtered := make(map[string]any, len(issueColumns))
	for _, col := range issueColumns {
		if col == "id" || col == "created_at" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	q := builder().
		Update(issueTable).
		SetMap(filtered).
		Where(squirrel.Eq{"id": i.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.store.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update issue: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(issueTable, i.ID.String())
	}

	return nil
}

func (r *issueRepo) List(ctx context.Context) ([]*issue.Issue, error) {
	q := builder().
		Select(issueColumns...).
		From(issueTable).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	issues := []*issue.Issue{}
	if err := pgxscan.Select(ctx, r.store.pool, &issues, sql, args...); err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	return issues, nil
}
