package memory

import (
	"context"

	"vendorledger/internal/domain/brand"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/issue"
	"vendorledger/internal/domain/snapshot"
	"vendorledger/internal/domain/vendor"
)

type snapshotRepo struct {
	store *Store
}

var _ snapshot.Repository = (*snapshotRepo)(nil)

// Collect copies the whole dataset under the read lock.
func (r *snapshotRepo) Collect(ctx context.Context) (*snapshot.Snapshot, error) {
	out := &snapshot.Snapshot{}
	err := r.store.read(func(d *Dataset) error {
		out.Vendors = make([]*vendor.Vendor, 0, len(d.Vendors))
		for _, v := range d.Vendors {
			cp := *v
			out.Vendors = append(out.Vendors, &cp)
		}
		out.Brands = make([]*brand.Brand, 0, len(d.Brands))
		for _, b := range d.Brands {
			cp := *b
			out.Brands = append(out.Brands, &cp)
		}
		out.Issues = make([]*issue.Issue, 0, len(d.Issues))
		for _, i := range d.Issues {
			cp := *i
			out.Issues = append(out.Issues, &cp)
		}
		out.Invoices = make([]*invoice.Invoice, 0, len(d.Invoices))
		for _, inv := range d.Invoices {
			cp := *inv
			out.Invoices = append(out.Invoices, &cp)
		}
		out.Payments = make([]invoice.Payment, len(d.Payments))
		copy(out.Payments, d.Payments)
		out.CreditNotes = make([]invoice.CreditNote, len(d.CreditNotes))
		copy(out.CreditNotes, d.CreditNotes)
		out.LastSaved = d.LastSaved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *snapshotRepo) Counts(ctx context.Context) (snapshot.RowCounts, error) {
	var counts snapshot.RowCounts
	err := r.store.read(func(d *Dataset) error {
		counts = snapshot.RowCounts{
			Vendors:     int64(len(d.Vendors)),
			Brands:      int64(len(d.Brands)),
			Issues:      int64(len(d.Issues)),
			Invoices:    int64(len(d.Invoices)),
			Payments:    int64(len(d.Payments)),
			CreditNotes: int64(len(d.CreditNotes)),
		}
		return nil
	})
	return counts, err
}
