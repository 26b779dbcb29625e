package memory

import (
	"context"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/vendor"
)

type vendorRepo struct {
	store *Store
}

var _ vendor.Repository = (*vendorRepo)(nil)

func (r *vendorRepo) Create(ctx context.Context, v *vendor.Vendor) error {
	return r.store.mutate(func(d *Dataset) error {
		cp := *v
		d.Vendors = append(d.Vendors, &cp)
		return nil
	})
}

func (r *vendorRepo) GetByID(ctx context.Context, vendorID id.ID) (*vendor.Vendor, error) {
	var found *vendor.Vendor
	err := r.store.read(func(d *Dataset) error {
		for _, v := range d.Vendors {
			if v.ID == vendorID {
				cp := *v
				found = &cp
				return nil
			}
		}
		return apperror.NewNotFound("vendor", vendorID.String())
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *vendorRepo) List(ctx context.Context) ([]*vendor.Vendor, error) {
	var out []*vendor.Vendor
	err := r.store.read(func(d *Dataset) error {
		out = make([]*vendor.Vendor, 0, len(d.Vendors))
		for _, v := range d.Vendors {
			cp := *v
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// Delete removes the vendor and cascades to its brands, issues, and
// invoices, and transitively to payments and credit notes.
func (r *vendorRepo) Delete(ctx context.Context, vendorID id.ID) error {
	return r.store.mutate(func(d *Dataset) error {
		idx := -1
		for i, v := range d.Vendors {
			if v.ID == vendorID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return apperror.NewNotFound("vendor", vendorID.String())
		}
		d.Vendors = append(d.Vendors[:idx], d.Vendors[idx+1:]...)

		kept := d.Brands[:0]
		for _, b := range d.Brands {
			if b.VendorID != vendorID {
				kept = append(kept, b)
			}
		}
		d.Brands = kept

		keptIssues := d.Issues[:0]
		for _, i := range d.Issues {
			if i.VendorID != vendorID {
				keptIssues = append(keptIssues, i)
			}
		}
		d.Issues = keptIssues

		removedInvoices := make(map[id.ID]bool)
		keptInvoices := d.Invoices[:0]
		for _, inv := range d.Invoices {
			if inv.VendorID == vendorID {
				removedInvoices[inv.ID] = true
				continue
			}
			keptInvoices = append(keptInvoices, inv)
		}
		d.Invoices = keptInvoices

		removeInvoiceChildren(d, removedInvoices)
		return nil
	})
}

func (r *vendorRepo) Exists(ctx context.Context, vendorID id.ID) (bool, error) {
	exists := false
	err := r.store.read(func(d *Dataset) error {
		exists = vendorExists(d, vendorID)
		return nil
	})
	return exists, err
}

// vendorExists checks presence without locking; callers hold the lock.
func vendorExists(d *Dataset, vendorID id.ID) bool {
	for _, v := range d.Vendors {
		if v.ID == vendorID {
			return true
		}
	}
	return false
}

// removeInvoiceChildren drops payments and credit notes belonging to the
// given invoice ids; callers hold the write lock.
func removeInvoiceChildren(d *Dataset, invoiceIDs map[id.ID]bool) {
	if len(invoiceIDs) == 0 {
		return
	}

	keptPayments := d.Payments[:0]
	for _, p := range d.Payments {
		if !invoiceIDs[p.InvoiceID] {
			keptPayments = append(keptPayments, p)
		}
	}
	d.Payments = keptPayments

	keptNotes := d.CreditNotes[:0]
	for _, c := range d.CreditNotes {
		if !invoiceIDs[c.InvoiceID] {
			keptNotes = append(keptNotes, c)
		}
	}
	d.CreditNotes = keptNotes
}
