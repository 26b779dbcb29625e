package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/invoice"
)

const (
	invoiceTable    = "invoices"
	paymentTable    = "payments"
	creditNoteTable = "credit_notes"
)

var (
	invoiceColumns    = ExtractDBColumns[invoice.Invoice]()
	paymentColumns    = ExtractDBColumns[invoice.Payment]()
	creditNoteColumns = ExtractDBColumns[invoice.CreditNote]()
)

type invoiceRepo struct {
	store *Store
}

var _ invoice.Repository = (*invoiceRepo)(nil)

func (r *invoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	err := r.store.insertRow(ctx, invoiceTable, inv, invoiceColumns)
	switch pgErrorCode(err) {
	case pgForeignKeyViolation:
		return apperror.NewNotFound("vendor", inv.VendorID.String())
	case pgUniqueViolation:
		return apperror.NewDuplicate("invoice", "number", inv.Number)
	}
	return err
}

func (r *invoiceRepo) Update(ctx context.Context, inv *invoice.Invoice) error {
	data := StructToMap(inv)

	filtered := make(map[string]any, len(invoiceColumns))
	for _, col := range invoiceColumns {
		if col == "id" || col == "created_at" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	q := builder().
		Update(invoiceTable).
		SetMap(filtered).
		Where(squirrel.Eq{"id": inv.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.store.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(invoiceTable, inv.ID.String())
	}

	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, invoiceID id.ID) (*invoice.Invoice, error) {
	q := builder().
		Select(invoiceColumns...).
		From(invoiceTable).
		Where(squirrel.Eq{"id": invoiceID}).
		Limit(1)

	return r.findOne(ctx, q, invoiceID.String())
}

func (r *invoiceRepo) FindByVendorAndNumber(ctx context.Context, vendorID id.ID, number string) (*invoice.Invoice, error) {
	q := builder().
		Select(invoiceColumns...).
		From(invoiceTable).
		Where(squirrel.Eq{"vendor_id": vendorID}).
		Where(squirrel.Eq{"number": number}).
		Limit(1)

	return r.findOne(ctx, q, number)
}

func (r *invoiceRepo) findOne(ctx context.Context, q squirrel.SelectBuilder, key string) (*invoice.Invoice, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var inv invoice.Invoice
	if err := pgxscan.Get(ctx, r.store.pool, &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(invoiceTable, key)
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]*invoice.Invoice, error) {
	q := builder().
		Select(invoiceColumns...).
		From(invoiceTable).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	invoices := []*invoice.Invoice{}
	if err := pgxscan.Select(ctx, r.store.pool, &invoices, sql, args...); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, nil
}

// Delete removes the invoice; the schema cascades to payments and
// credit notes.
func (r *invoiceRepo) Delete(ctx context.Context, invoiceID id.ID) error {
	q := builder().
		Delete(invoiceTable).
		Where(squirrel.Eq{"id": invoiceID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.store.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(invoiceTable, invoiceID.String())
	}

	return nil
}

func (r *invoiceRepo) AddPayment(ctx context.Context, p *invoice.Payment) error {
	err := r.store.insertRow(ctx, paymentTable, p, paymentColumns)
	if pgErrorCode(err) == pgForeignKeyViolation {
		return apperror.NewNotFound("invoice", p.InvoiceID.String())
	}
	return err
}

func (r *invoiceRepo) AddCreditNote(ctx context.Context, c *invoice.CreditNote) error {
	err := r.store.insertRow(ctx, creditNoteTable, c, creditNoteColumns)
	switch pgErrorCode(err) {
	case pgForeignKeyViolation:
		return apperror.NewNotFound("invoice", c.InvoiceID.String())
	case pgUniqueViolation:
		return apperror.NewDuplicate("credit note", "number", c.Number)
	}
	return err
}

func (r *invoiceRepo) FindCreditNoteByNumber(ctx context.Context, number string) (*invoice.CreditNote, error) {
	q := builder().
		Select(creditNoteColumns...).
		From(creditNoteTable).
		Where(squirrel.Eq{"number": number}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c invoice.CreditNote
	if err := pgxscan.Get(ctx, r.store.pool, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("credit note", number)
		}
		return nil, fmt.Errorf("get credit note: %w", err)
	}

	return &c, nil
}

func (r *invoiceRepo) ListPayments(ctx context.Context) ([]invoice.Payment, error) {
	q := builder().
		Select(paymentColumns...).
		From(paymentTable).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	payments := []invoice.Payment{}
	if err := pgxscan.Select(ctx, r.store.pool, &payments, sql, args...); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}

func (r *invoiceRepo) ListCreditNotes(ctx context.Context) ([]invoice.CreditNote, error) {
	q := builder().
		Select(creditNoteColumns...).
		From(creditNoteTable).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	notes := []invoice.CreditNote{}
	if err := pgxscan.Select(ctx, r.store.pool, &notes, sql, args...); err != nil {
		return nil, fmt.Errorf("list credit notes: %w", err)
	}

	return notes, nil
}
