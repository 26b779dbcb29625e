package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
)

func testInvoice(amount string, dueDate *time.Time) *Invoice {
	inv := NewInvoice(id.New(), "INV-001", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), types.MustMoney(amount), 10)
	inv.DueDate = dueDate
	return inv
}

func payment(invoiceID id.ID, amount string) Payment {
	return Payment{
		Record:    entity.NewRecord(),
		InvoiceID: invoiceID,
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:    types.MustMoney(amount),
		Method:    MethodCash,
	}
}

func creditNote(invoiceID id.ID, number, amount string) CreditNote {
	return CreditNote{
		Record:    entity.NewRecord(),
		InvoiceID: invoiceID,
		Number:    number,
		Date:      time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Amount:    types.MustMoney(amount),
		Reason:    "return",
	}
}

func TestReconcile_PartialPayment(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	inv := testInvoice("1000.00", nil)

	rec := Reconcile(inv, []Payment{
		payment(inv.ID, "300.00"),
		payment(inv.ID, "300.00"),
	}, nil, now)

	assert.Equal(t, StatusPartial, rec.PaymentStatus)
	assert.True(t, rec.TotalPaid.Equal(types.MustMoney("600.00")))
	assert.True(t, rec.Outstanding.Equal(types.MustMoney("400.00")))
}

func TestReconcile_FullyCredited(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -5)
	inv := testInvoice("1000.00", &past)

	// Full credit with a past due date reports paid, never overdue.
	rec := Reconcile(inv, nil, []CreditNote{creditNote(inv.ID, "CRN-1", "1000.00")}, now)

	assert.Equal(t, StatusPaid, rec.PaymentStatus)
	assert.True(t, rec.TotalPaid.IsZero())
	assert.True(t, rec.TotalCredits.Equal(types.MustMoney("1000.00")))
	assert.True(t, rec.Outstanding.IsZero())
}

func TestReconcile_Overpayment(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	inv := testInvoice("500.00", nil)

	rec := Reconcile(inv, []Payment{payment(inv.ID, "700.00")}, nil, now)

	// Outstanding goes negative, it is never clamped.
	assert.Equal(t, StatusPaid, rec.PaymentStatus)
	assert.True(t, rec.Outstanding.Equal(types.MustMoney("-200.00")))
}

func TestReconcile_Overdue(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	inv := testInvoice("1000.00", &past)

	rec := Reconcile(inv, nil, nil, now)

	assert.Equal(t, StatusOverdue, rec.PaymentStatus)
	assert.True(t, rec.Outstanding.Equal(types.MustMoney("1000.00")))
}

func TestReconcile_PartialBeatsOverdue(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	inv := testInvoice("1000.00", &past)

	// Any payment makes the invoice partial even past the due date.
	rec := Reconcile(inv, []Payment{payment(inv.ID, "100.00")}, nil, now)

	assert.Equal(t, StatusPartial, rec.PaymentStatus)
}

func TestReconcile_Pending(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 7)

	tests := []struct {
		name    string
		dueDate *time.Time
	}{
		{"no due date", nil},
		{"future due date", &future},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := testInvoice("1000.00", tt.dueDate)
			rec := Reconcile(inv, nil, nil, now)
			assert.Equal(t, StatusPending, rec.PaymentStatus)
		})
	}
}

func TestReconcile_DueDateBoundary(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	inv := testInvoice("1000.00", &now)

	// Due exactly now is not strictly before now.
	rec := Reconcile(inv, nil, nil, now)

	assert.Equal(t, StatusPending, rec.PaymentStatus)
}

func TestReconcile_MixedPaymentsAndCredits(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	inv := testInvoice("1000.00", nil)

	rec := Reconcile(inv,
		[]Payment{payment(inv.ID, "400.00")},
		[]CreditNote{creditNote(inv.ID, "CRN-2", "600.00")},
		now,
	)

	require.True(t, rec.Outstanding.IsZero())
	assert.Equal(t, StatusPaid, rec.PaymentStatus)
}

func TestReconcile_EmptySlicesNormalized(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	inv := testInvoice("1000.00", nil)

	rec := Reconcile(inv, nil, nil, now)

	assert.NotNil(t, rec.Payments)
	assert.NotNil(t, rec.CreditNotes)
	assert.Empty(t, rec.Payments)
	assert.Empty(t, rec.CreditNotes)
}
