package invoice

import (
	"time"

	"vendorledger/internal/core/types"
)

// PaymentStatus is the derived settlement state of an invoice.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPartial PaymentStatus = "partial"
	StatusOverdue PaymentStatus = "overdue"
	StatusPending PaymentStatus = "pending"
)

// Reconciled is the composite view of an invoice with its settlement
// state. Outstanding is derived, never stored, and may be negative on
// overpayment; callers must handle that explicitly.
type Reconciled struct {
	Invoice

	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TotalPaid     types.Money   `json:"paymentAmount"`
	TotalCredits  types.Money   `json:"totalCredits"`
	Outstanding   types.Money   `json:"outstanding"`

	Payments    []Payment    `json:"payments"`
	CreditNotes []CreditNote `json:"creditNotes"`
}

// Reconcile combines an invoice with all payments and credit notes that
// reference it.
//
//	outstanding = amount − Σ payments − Σ credits
//
// Status precedence, first match wins:
//  1. outstanding ≤ 0                        → paid
//  2. totalPaid > 0                          → partial
//  3. due date set and strictly before now   → overdue
//  4. otherwise                              → pending
//
// A fully-credited invoice with a past due date is therefore "paid", not
// "overdue"; overdue applies only to invoices with zero payments.
func Reconcile(inv *Invoice, payments []Payment, creditNotes []CreditNote, now time.Time) *Reconciled {
	totalPaid := types.Zero()
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	totalCredits := types.Zero()
	for _, c := range creditNotes {
		totalCredits = totalCredits.Add(c.Amount)
	}

	outstanding := inv.Amount.Sub(totalPaid).Sub(totalCredits)

	var status PaymentStatus
	switch {
	case outstanding.Sign() <= 0:
		status = StatusPaid
	case totalPaid.Sign() > 0:
		status = StatusPartial
	case inv.DueDate != nil && inv.DueDate.Before(now):
		status = StatusOverdue
	default:
		status = StatusPending
	}

	if payments == nil {
		payments = []Payment{}
	}
	if creditNotes == nil {
		creditNotes = []CreditNote{}
	}

	return &Reconciled{
		Invoice:       *inv,
		PaymentStatus: status,
		TotalPaid:     totalPaid,
		TotalCredits:  totalCredits,
		Outstanding:   outstanding,
		Payments:      payments,
		CreditNotes:   creditNotes,
	}
}
