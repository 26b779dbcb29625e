package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/vendor"
	"vendorledger/internal/infrastructure/storage"
	"vendorledger/internal/infrastructure/storage/memory"
)

func newTestStores(t *testing.T) (storage.Stores, id.ID) {
	t.Helper()

	stores := memory.New().Stores()

	v := vendor.NewVendor("Test Vendor", vendor.TermsCredit)
	require.NoError(t, stores.Vendors.Create(context.Background(), v))

	return stores, v.ID
}

func upsertInput(vendorID id.ID, number, amount string) invoice.UpsertInput {
	return invoice.UpsertInput{
		VendorID:   vendorID,
		Number:     number,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:     types.MustMoney(amount),
		TotalItems: 5,
	}
}

func TestUpsert_CreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	created, action, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-100", "1000.00"))
	require.NoError(t, err)
	assert.Equal(t, invoice.ActionCreated, action)

	// Same (vendor, number) pair updates in place.
	updated, action, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-100", "1250.00"))
	require.NoError(t, err)
	assert.Equal(t, invoice.ActionUpdated, action)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Amount.Equal(types.MustMoney("1250.00")))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsert_SameNumberDifferentVendor(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	other := vendor.NewVendor("Other Vendor", vendor.TermsAdvance)
	require.NoError(t, stores.Vendors.Create(ctx, other))

	_, action, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-100", "1000.00"))
	require.NoError(t, err)
	assert.Equal(t, invoice.ActionCreated, action)

	// The invoice number is only unique per vendor.
	_, action, err = svc.Upsert(ctx, upsertInput(other.ID, "INV-100", "2000.00"))
	require.NoError(t, err)
	assert.Equal(t, invoice.ActionCreated, action)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpsert_UnknownVendor(t *testing.T) {
	ctx := context.Background()
	stores, _ := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	_, _, err := svc.Upsert(ctx, upsertInput(id.New(), "INV-404", "100.00"))
	assert.True(t, apperror.IsNotFound(err))
}

func TestRecordPayment_AppendOnly(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	inv, _, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-100", "1000.00"))
	require.NoError(t, err)

	in := invoice.PaymentInput{
		InvoiceID: inv.ID,
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:    types.MustMoney("250.00"),
		Method:    invoice.MethodCash,
	}

	// Two identical same-day payments are both kept.
	_, err = svc.RecordPayment(ctx, in)
	require.NoError(t, err)
	_, err = svc.RecordPayment(ctx, in)
	require.NoError(t, err)

	payments, err := stores.Invoices.ListPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestRecordPayment_DefaultsMethod(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	inv, _, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-100", "1000.00"))
	require.NoError(t, err)

	p, err := svc.RecordPayment(ctx, invoice.PaymentInput{
		InvoiceID: inv.ID,
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:    types.MustMoney("100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, invoice.MethodUnspecified, p.Method)
}

func TestRecordPayment_UnknownInvoice(t *testing.T) {
	ctx := context.Background()
	stores, _ := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	_, err := svc.RecordPayment(ctx, invoice.PaymentInput{
		InvoiceID: id.New(),
		Date:      time.Now(),
		Amount:    types.MustMoney("100.00"),
		Method:    invoice.MethodCash,
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestRecordCreditNote_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	first, _, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-100", "1000.00"))
	require.NoError(t, err)
	second, _, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-101", "500.00"))
	require.NoError(t, err)

	in := invoice.CreditNoteInput{
		InvoiceID:     first.ID,
		Number:        "CRN-9",
		Date:          time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Amount:        types.MustMoney("50.00"),
		ItemsReturned: 1,
		Reason:        "damaged",
	}

	_, err = svc.RecordCreditNote(ctx, in)
	require.NoError(t, err)

	// The credit note number is unique across all invoices.
	in.InvoiceID = second.ID
	_, err = svc.RecordCreditNote(ctx, in)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestDelete_RemovesChildren(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	inv, _, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-100", "1000.00"))
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, invoice.PaymentInput{
		InvoiceID: inv.ID,
		Date:      time.Now(),
		Amount:    types.MustMoney("100.00"),
		Method:    invoice.MethodCash,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, inv.ID))

	payments, err := stores.Invoices.ListPayments(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestListComplete_GroupsByInvoice(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := invoice.NewService(stores.Invoices)

	first, _, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-100", "1000.00"))
	require.NoError(t, err)
	second, _, err := svc.Upsert(ctx, upsertInput(vendorID, "INV-101", "500.00"))
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, invoice.PaymentInput{
		InvoiceID: first.ID,
		Date:      time.Now(),
		Amount:    types.MustMoney("400.00"),
		Method:    invoice.MethodOnline,
	})
	require.NoError(t, err)

	reconciled, err := svc.ListComplete(ctx)
	require.NoError(t, err)
	require.Len(t, reconciled, 2)

	byID := make(map[id.ID]*invoice.Reconciled, len(reconciled))
	for _, r := range reconciled {
		byID[r.ID] = r
	}

	assert.Equal(t, invoice.StatusPartial, byID[first.ID].PaymentStatus)
	assert.Len(t, byID[first.ID].Payments, 1)

	assert.Equal(t, invoice.StatusPending, byID[second.ID].PaymentStatus)
	assert.Empty(t, byID[second.ID].Payments)
}
