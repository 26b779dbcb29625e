package invoice

import (
	"context"

	"vendorledger/internal/core/id"
)

// Repository defines the interface for Invoice persistence, including
// the invoice's payments and credit notes.
type Repository interface {
	// Create inserts a new invoice. Fails with NotFound when the
	// referenced vendor does not exist.
	Create(ctx context.Context, inv *Invoice) error

	// Update rewrites an existing invoice by id.
	Update(ctx context.Context, inv *Invoice) error

	// GetByID retrieves an invoice by id.
	GetByID(ctx context.Context, id id.ID) (*Invoice, error)

	// FindByVendorAndNumber retrieves the invoice for a (vendor, number)
	// pair, or NotFound.
	FindByVendorAndNumber(ctx context.Context, vendorID id.ID, number string) (*Invoice, error)

	// List retrieves all invoices ordered by creation time.
	List(ctx context.Context) ([]*Invoice, error)

	// Delete removes the invoice and its payments and credit notes.
	Delete(ctx context.Context, id id.ID) error

	// AddPayment appends a payment. Fails with NotFound when the invoice
	// does not exist. Payments are never merged or deduplicated.
	AddPayment(ctx context.Context, p *Payment) error

	// AddCreditNote appends a credit note. Fails with NotFound when the
	// invoice does not exist.
	AddCreditNote(ctx context.Context, c *CreditNote) error

	// FindCreditNoteByNumber retrieves a credit note by its globally
	// unique number, or NotFound.
	FindCreditNoteByNumber(ctx context.Context, number string) (*CreditNote, error)

	// ListPayments retrieves all payments across all invoices.
	ListPayments(ctx context.Context) ([]Payment, error)

	// ListCreditNotes retrieves all credit notes across all invoices.
	ListCreditNotes(ctx context.Context) ([]CreditNote, error)
}
