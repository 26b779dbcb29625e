package memory

import (
	"context"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/invoice"
)

type invoiceRepo struct {
	store *Store
}

var _ invoice.Repository = (*invoiceRepo)(nil)

func (r *invoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	return r.store.mutate(func(d *Dataset) error {
		if !vendorExists(d, inv.VendorID) {
			return apperror.NewNotFound("vendor", inv.VendorID.String())
		}
		cp := *inv
		d.Invoices = append(d.Invoices, &cp)
		return nil
	})
}

func (r *invoiceRepo) Update(ctx context.Context, inv *invoice.Invoice) error {
	return r.store.mutate(func(d *Dataset) error {
		for idx, existing := range d.Invoices {
			if existing.ID == inv.ID {
				cp := *inv
				d.Invoices[idx] = &cp
				return nil
			}
		}
		return apperror.NewNotFound("invoice", inv.ID.String())
	})
}

func (r *invoiceRepo) GetByID(ctx context.Context, invoiceID id.ID) (*invoice.Invoice, error) {
	var found *invoice.Invoice
	err := r.store.read(func(d *Dataset) error {
		for _, inv := range d.Invoices {
			if inv.ID == invoiceID {
				cp := *inv
				found = &cp
				return nil
			}
		}
		return apperror.NewNotFound("invoice", invoiceID.String())
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *invoiceRepo) FindByVendorAndNumber(ctx context.Context, vendorID id.ID, number string) (*invoice.Invoice, error) {
	var found *invoice.Invoice
	err := r.store.read(func(d *Dataset) error {
		for _, inv := range d.Invoices {
			if inv.VendorID == vendorID && inv.Number == number {
				cp := *inv
				found = &cp
				return nil
			}
		}
		return apperror.NewNotFound("invoice", number)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]*invoice.Invoice, error) {
	var out []*invoice.Invoice
	err := r.store.read(func(d *Dataset) error {
		out = make([]*invoice.Invoice, 0, len(d.Invoices))
		for _, inv := range d.Invoices {
			cp := *inv
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// Delete removes the invoice and its payments and credit notes.
func (r *invoiceRepo) Delete(ctx context.Context, invoiceID id.ID) error {
	return r.store.mutate(func(d *Dataset) error {
		idx := -1
		for i, inv := range d.Invoices {
			if inv.ID == invoiceID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return apperror.NewNotFound("invoice", invoiceID.String())
		}
		d.Invoices = append(d.Invoices[:idx], d.Invoices[idx+1:]...)
		removeInvoiceChildren(d, map[id.ID]bool{invoiceID: true})
		return nil
	})
}

func (r *invoiceRepo) AddPayment(ctx context.Context, p *invoice.Payment) error {
	return r.store.mutate(func(d *Dataset) error {
		if !invoiceExists(d, p.InvoiceID) {
			return apperror.NewNotFound("invoice", p.InvoiceID.String())
		}
		d.Payments = append(d.Payments, *p)
		return nil
	})
}

func (r *invoiceRepo) AddCreditNote(ctx context.Context, c *invoice.CreditNote) error {
	return r.store.mutate(func(d *Dataset) error {
		if !invoiceExists(d, c.InvoiceID) {
			return apperror.NewNotFound("invoice", c.InvoiceID.String())
		}
		d.CreditNotes = append(d.CreditNotes, *c)
		return nil
	})
}

func (r *invoiceRepo) FindCreditNoteByNumber(ctx context.Context, number string) (*invoice.CreditNote, error) {
	var found *invoice.CreditNote
	err := r.store.read(func(d *Dataset) error {
		for i := range d.CreditNotes {
			if d.CreditNotes[i].Number == number {
				cp := d.CreditNotes[i]
				found = &cp
				return nil
			}
		}
		return apperror.NewNotFound("credit note", number)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *invoiceRepo) ListPayments(ctx context.Context) ([]invoice.Payment, error) {
	var out []invoice.Payment
	err := r.store.read(func(d *Dataset) error {
		out = make([]invoice.Payment, len(d.Payments))
		copy(out, d.Payments)
		return nil
	})
	return out, err
}

func (r *invoiceRepo) ListCreditNotes(ctx context.Context) ([]invoice.CreditNote, error) {
	var out []invoice.CreditNote
	err := r.store.read(func(d *Dataset) error {
		out = make([]invoice.CreditNote, len(d.CreditNotes))
		copy(out, d.CreditNotes)
		return nil
	})
	return out, err
}

// invoiceExists checks presence without locking; callers hold the lock.
func invoiceExists(d *Dataset, invoiceID id.ID) bool {
	for _, inv := range d.Invoices {
		if inv.ID == invoiceID {
			return true
		}
	}
	return false
}
