package invoice

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
)

var tracer = otel.Tracer("vendorledger/invoice")

// UpsertAction reports what an upsert did.
type UpsertAction string

const (
	ActionCreated UpsertAction = "created"
	ActionUpdated UpsertAction = "updated"
)

// UpsertInput carries the fields of an invoice submission.
type UpsertInput struct {
	VendorID   id.ID
	Number     string
	Date       time.Time
	Amount     types.Money
	TotalItems int
	DueDate    *time.Time
}

// PaymentInput carries the fields of a payment submission.
type PaymentInput struct {
	InvoiceID    id.ID
	Date         time.Time
	Amount       types.Money
	Method       PaymentMethod
	ChequeNumber *string
	ChequeDate   *time.Time
	Notes        *string
}

// CreditNoteInput carries the fields of a credit note submission.
type CreditNoteInput struct {
	InvoiceID     id.ID
	Number        string
	Date          time.Time
	Amount        types.Money
	ItemsReturned int
	Reason        string
	Description   string
}

// Service provides business logic for the Invoice ledger.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new Invoice service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Upsert inserts or updates the invoice keyed on (vendor, number).
// Re-submitting the same key updates date, amount, item count, and due
// date in place and stamps UpdatedAt; it never duplicates the invoice.
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (*Invoice, UpsertAction, error) {
	existing, err := s.repo.FindByVendorAndNumber(ctx, in.VendorID, in.Number)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, "", fmt.Errorf("find invoice: %w", err)
	}

	if existing != nil && err == nil {
		existing.Date = in.Date
		existing.Amount = in.Amount
		existing.TotalItems = in.TotalItems
		existing.DueDate = in.DueDate
		existing.UpdatedAt = s.now().UTC()

		if err := existing.Validate(ctx); err != nil {
			return nil, "", err
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, "", fmt.Errorf("update invoice: %w", err)
		}
		return existing, ActionUpdated, nil
	}

	inv := NewInvoice(in.VendorID, in.Number, in.Date, in.Amount, in.TotalItems)
	inv.DueDate = in.DueDate

	if err := inv.Validate(ctx); err != nil {
		return nil, "", err
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		if apperror.IsAppError(err) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("create invoice: %w", err)
	}
	return inv, ActionCreated, nil
}

// RecordPayment appends a payment against an invoice. Payments are
// append-only: several payments on the same date are legal and are never
// merged or deduplicated.
func (s *Service) RecordPayment(ctx context.Context, in PaymentInput) (*Payment, error) {
	p := &Payment{
		Record:       entity.NewRecord(),
		InvoiceID:    in.InvoiceID,
		Date:         in.Date,
		Amount:       in.Amount,
		Method:       in.Method,
		ChequeNumber: in.ChequeNumber,
		ChequeDate:   in.ChequeDate,
		Notes:        in.Notes,
	}
	if p.Method == "" {
		p.Method = MethodUnspecified
	}

	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.AddPayment(ctx, p); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("record payment: %w", err)
	}

	return p, nil
}

// RecordCreditNote appends a credit note keyed by a globally unique
// number. A duplicate number fails with Duplicate; the PostgreSQL
// backend additionally enforces a unique constraint.
func (s *Service) RecordCreditNote(ctx context.Context, in CreditNoteInput) (*CreditNote, error) {
	c := &CreditNote{
		Record:        entity.NewRecord(),
		InvoiceID:     in.InvoiceID,
		Number:        in.Number,
		Date:          in.Date,
		Amount:        in.Amount,
		ItemsReturned: in.ItemsReturned,
		Reason:        in.Reason,
		Description:   in.Description,
	}

	if err := c.Validate(ctx); err != nil {
		return nil, err
	}

	exists, err := s.creditNoteNumberExists(ctx, c.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewDuplicate("credit note", "number", c.Number)
	}

	if err := s.repo.AddCreditNote(ctx, c); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("record credit note: %w", err)
	}

	return c, nil
}

// ListComplete returns every invoice reconciled against its payments and
// credit notes, evaluated against the current wall clock.
func (s *Service) ListComplete(ctx context.Context) ([]*Reconciled, error) {
	ctx, span := tracer.Start(ctx, "invoice.reconcile_all")
	defer span.End()

	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	creditNotes, err := s.repo.ListCreditNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list credit notes: %w", err)
	}

	paymentsByInvoice := make(map[id.ID][]Payment, len(invoices))
	for _, p := range payments {
		paymentsByInvoice[p.InvoiceID] = append(paymentsByInvoice[p.InvoiceID], p)
	}

	creditsByInvoice := make(map[id.ID][]CreditNote, len(invoices))
	for _, c := range creditNotes {
		creditsByInvoice[c.InvoiceID] = append(creditsByInvoice[c.InvoiceID], c)
	}

	now := s.now()
	result := make([]*Reconciled, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, Reconcile(inv, paymentsByInvoice[inv.ID], creditsByInvoice[inv.ID], now))
	}

	span.SetAttributes(
		attribute.Int("invoice.count", len(invoices)),
		attribute.Int("payment.count", len(payments)),
	)

	return result, nil
}

// Delete removes an invoice together with its payments and credit notes.
func (s *Service) Delete(ctx context.Context, invoiceID id.ID) error {
	err := s.repo.Delete(ctx, invoiceID)
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// List retrieves all invoices without reconciliation.
func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.List(ctx)
}

// creditNoteNumberExists checks if a credit note number is already used.
func (s *Service) creditNoteNumberExists(ctx context.Context, number string) (bool, error) {
	_, err := s.repo.FindCreditNoteByNumber(ctx, number)
	if err != nil {
		// Not found is OK; other errors must be propagated.
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
