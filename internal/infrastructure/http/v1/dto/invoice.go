package dto

import (
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
	"vendorledger/internal/domain/invoice"
)

// UpsertInvoiceRequest is the body of POST /api/invoices. Submissions are
// keyed on (vendorId, invoiceNumber): a repeated key updates in place.
type UpsertInvoiceRequest struct {
	VendorID      id.ID       `json:"vendorId" binding:"required"`
	InvoiceNumber string      `json:"invoiceNumber" binding:"required"`
	InvoiceDate   Date        `json:"invoiceDate" binding:"required"`
	Amount        types.Money `json:"amount"`
	TotalItems    int         `json:"totalItems"`
	DueDate       *Date       `json:"dueDate"`
}

// ToInput maps the request to an invoice.UpsertInput.
func (r UpsertInvoiceRequest) ToInput() invoice.UpsertInput {
	return invoice.UpsertInput{
		VendorID:   r.VendorID,
		Number:     r.InvoiceNumber,
		Date:       r.InvoiceDate.Time,
		Amount:     r.Amount,
		TotalItems: r.TotalItems,
		DueDate:    r.DueDate.TimePtr(),
	}
}

// CreatePaymentRequest is the body of POST /api/payments.
type CreatePaymentRequest struct {
	InvoiceID     id.ID       `json:"invoiceId" binding:"required"`
	PaymentDate   Date        `json:"paymentDate" binding:"required"`
	Amount        types.Money `json:"amount"`
	PaymentMethod string      `json:"paymentMethod"`
	ChequeNumber  *string     `json:"chequeNumber"`
	ChequeDate    *Date       `json:"chequeDate"`
	Notes         *string     `json:"notes"`
}

// ToInput maps the request to an invoice.PaymentInput.
func (r CreatePaymentRequest) ToInput() invoice.PaymentInput {
	return invoice.PaymentInput{
		InvoiceID:    r.InvoiceID,
		Date:         r.PaymentDate.Time,
		Amount:       r.Amount,
		Method:       invoice.PaymentMethod(r.PaymentMethod),
		ChequeNumber: r.ChequeNumber,
		ChequeDate:   r.ChequeDate.TimePtr(),
		Notes:        r.Notes,
	}
}

// CreateCreditNoteRequest is the body of POST /api/credit-notes.
type CreateCreditNoteRequest struct {
	InvoiceID     id.ID       `json:"invoiceId" binding:"required"`
	CRNNumber     string      `json:"crnNumber" binding:"required"`
	CreditDate    Date        `json:"creditDate" binding:"required"`
	Amount        types.Money `json:"amount"`
	ItemsReturned int         `json:"itemsReturned"`
	Reason        string      `json:"reason"`
	Description   string      `json:"description"`
}

// ToInput maps the request to an invoice.CreditNoteInput.
func (r CreateCreditNoteRequest) ToInput() invoice.CreditNoteInput {
	return invoice.CreditNoteInput{
		InvoiceID:     r.InvoiceID,
		Number:        r.CRNNumber,
		Date:          r.CreditDate.Time,
		Amount:        r.Amount,
		ItemsReturned: r.ItemsReturned,
		Reason:        r.Reason,
		Description:   r.Description,
	}
}
