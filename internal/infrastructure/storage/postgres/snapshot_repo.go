package postgres

import (
	"context"
	"fmt"

	"vendorledger/internal/domain/snapshot"
)

type snapshotRepo struct {
	store *Store
}

var _ snapshot.Repository = (*snapshotRepo)(nil)

// Collect reads every table. The selects run sequentially without a
// shared snapshot transaction; the dataset endpoints are advisory reads.
func (r *snapshotRepo) Collect(ctx context.Context) (*snapshot.Snapshot, error) {
	stores := r.store.Stores()
	out := &snapshot.Snapshot{}

	var err error
	if out.Vendors, err = stores.Vendors.List(ctx); err != nil {
		return nil, err
	}
	if out.Brands, err = stores.Brands.List(ctx); err != nil {
		return nil, err
	}
	if out.Issues, err = stores.Issues.List(ctx); err != nil {
		return nil, err
	}
	if out.Invoices, err = stores.Invoices.List(ctx); err != nil {
		return nil, err
	}
	if out.Payments, err = stores.Invoices.ListPayments(ctx); err != nil {
		return nil, err
	}
	if out.CreditNotes, err = stores.Invoices.ListCreditNotes(ctx); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *snapshotRepo) Counts(ctx context.Context) (snapshot.RowCounts, error) {
	var counts snapshot.RowCounts

	for _, c := range []struct {
		table string
		dst   *int64
	}{
		{vendorTable, &counts.Vendors},
		{brandTable, &counts.Brands},
		{issueTable, &counts.Issues},
		{invoiceTable, &counts.Invoices},
		{paymentTable, &counts.Payments},
		{creditNoteTable, &counts.CreditNotes},
	} {
		sql := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table)
		if err := r.store.pool.QueryRow(ctx, sql).Scan(c.dst); err != nil {
			return counts, fmt.Errorf("count %s: %w", c.table, err)
		}
	}

	return counts, nil
}
