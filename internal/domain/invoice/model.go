// Package invoice provides the Invoice ledger and its reconciliation
// engine. An invoice owns payments and credit notes; the reconciled view
// derives the outstanding balance and a payment status from them.
package invoice

import (
	"context"
	"time"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodCheque      PaymentMethod = "cheque"
	MethodCash        PaymentMethod = "cash"
	MethodOnline      PaymentMethod = "online"
	MethodCard        PaymentMethod = "card"
	MethodUnspecified PaymentMethod = "unspecified"
)

// Invoice represents a billable document from a vendor.
// The invoice number is unique per vendor; re-submitting the same
// (vendor, number) pair updates the existing record.
type Invoice struct {
	entity.Record

	// VendorID references the issuing vendor
	VendorID id.ID `db:"vendor_id" json:"vendorId"`

	// Number is the vendor's invoice number (unique per vendor)
	Number string `db:"number" json:"invoiceNumber"`

	// Date is the invoice date
	Date time.Time `db:"invoice_date" json:"invoiceDate"`

	// Amount is the billed amount
	Amount types.Money `db:"amount" json:"amount"`

	// TotalItems is the item count on the invoice
	TotalItems int `db:"total_items" json:"totalItems"`

	// DueDate is the optional payment due date
	DueDate *time.Time `db:"due_date" json:"dueDate,omitempty"`

	// UpdatedAt is stamped on upsert-as-update
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewInvoice creates a new Invoice.
func NewInvoice(vendorID id.ID, number string, date time.Time, amount types.Money, totalItems int) *Invoice {
	rec := entity.NewRecord()
	return &Invoice{
		Record:     rec,
		VendorID:   vendorID,
		Number:     number,
		Date:       date,
		Amount:     amount,
		TotalItems: totalItems,
		UpdatedAt:  rec.CreatedAt,
	}
}

// Validate implements entity.Validatable.
func (i *Invoice) Validate(ctx context.Context) error {
	if id.IsNil(i.VendorID) {
		return apperror.NewValidation("vendor is required").
			WithDetail("field", "vendorId")
	}

	if i.Number == "" {
		return apperror.NewValidation("invoice number is required").
			WithDetail("field", "invoiceNumber")
	}

	if i.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}

	if i.TotalItems < 0 {
		return apperror.NewValidation("total items cannot be negative").
			WithDetail("field", "totalItems")
	}

	return nil
}

// Payment represents a monetary settlement applied against an invoice.
// Multiple payments on the same date are legal; payments are append-only.
type Payment struct {
	entity.Record

	// InvoiceID references the settled invoice
	InvoiceID id.ID `db:"invoice_id" json:"invoiceId"`

	// Date is the payment date
	Date time.Time `db:"payment_date" json:"paymentDate"`

	// Amount is the paid amount
	Amount types.Money `db:"amount" json:"amount"`

	// Method is the payment method
	Method PaymentMethod `db:"method" json:"paymentMethod"`

	// ChequeNumber and ChequeDate apply to cheque payments
	ChequeNumber *string    `db:"cheque_number" json:"chequeNumber,omitempty"`
	ChequeDate   *time.Time `db:"cheque_date" json:"chequeDate,omitempty"`

	// Notes is a free-form note
	Notes *string `db:"notes" json:"notes,omitempty"`
}

// Validate implements entity.Validatable.
func (p *Payment) Validate(ctx context.Context) error {
	if id.IsNil(p.InvoiceID) {
		return apperror.NewValidation("invoice is required").
			WithDetail("field", "invoiceId")
	}

	if !isValidMethod(p.Method) {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "paymentMethod").
			WithDetail("value", string(p.Method))
	}

	if !p.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}

	return nil
}

// CreditNote represents a vendor-issued reduction of an invoice amount,
// typically for returned goods. The credit-note number is globally unique.
type CreditNote struct {
	entity.Record

	// InvoiceID references the credited invoice
	InvoiceID id.ID `db:"invoice_id" json:"invoiceId"`

	// Number is the globally-unique credit note number
	Number string `db:"number" json:"crnNumber"`

	// Date is the credit date
	Date time.Time `db:"credit_date" json:"creditDate"`

	// Amount is the credited amount
	Amount types.Money `db:"amount" json:"amount"`

	// ItemsReturned is the returned unit count
	ItemsReturned int `db:"items_returned" json:"itemsReturned"`

	// Reason is the return reason
	Reason string `db:"reason" json:"reason"`

	// Description is a free-form note
	Description string `db:"description" json:"description,omitempty"`
}

// Validate implements entity.Validatable.
func (c *CreditNote) Validate(ctx context.Context) error {
	if id.IsNil(c.InvoiceID) {
		return apperror.NewValidation("invoice is required").
			WithDetail("field", "invoiceId")
	}

	if c.Number == "" {
		return apperror.NewValidation("credit note number is required").
			WithDetail("field", "crnNumber")
	}

	if !c.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}

	if c.ItemsReturned < 0 {
		return apperror.NewValidation("items returned cannot be negative").
			WithDetail("field", "itemsReturned")
	}

	return nil
}

func isValidMethod(m PaymentMethod) bool {
	switch m {
	case MethodCheque, MethodCash, MethodOnline, MethodCard, MethodUnspecified:
		return true
	}
	return false
}
