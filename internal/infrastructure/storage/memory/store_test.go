package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/types"
	"vendorledger/internal/domain/brand"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/issue"
	"vendorledger/internal/domain/vendor"
)

func seedVendor(t *testing.T, s *Store) *vendor.Vendor {
	t.Helper()
	v := vendor.NewVendor("Fresh Dairy", vendor.TermsCredit)
	require.NoError(t, s.Stores().Vendors.Create(context.Background(), v))
	return v
}

func seedInvoice(t *testing.T, s *Store, v *vendor.Vendor, number string) *invoice.Invoice {
	t.Helper()
	inv := invoice.NewInvoice(v.ID, number, time.Now(), types.MustMoney("1000.00"), 10)
	require.NoError(t, s.Stores().Invoices.Create(context.Background(), inv))
	return inv
}

func TestVendorDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	s := New()
	stores := s.Stores()
	v := seedVendor(t, s)

	b := brand.NewBrand(v.ID, "MorningMilk", "MM-500", brand.CategoryDairy)
	require.NoError(t, stores.Brands.Create(ctx, b))

	i := issue.NewIssue(v.ID, "MorningMilk 500ml", issue.TypeExpired)
	require.NoError(t, stores.Issues.Create(ctx, i))

	inv := seedInvoice(t, s, v, "INV-1")
	p := &invoice.Payment{
		Record:    entity.NewRecord(),
		InvoiceID: inv.ID,
		Date:      time.Now(),
		Amount:    types.MustMoney("100.00"),
		Method:    invoice.MethodCash,
	}
	require.NoError(t, stores.Invoices.AddPayment(ctx, p))

	require.NoError(t, stores.Vendors.Delete(ctx, v.ID))

	counts, err := stores.Snapshots.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts.Vendors)
	assert.Zero(t, counts.Brands)
	assert.Zero(t, counts.Issues)
	assert.Zero(t, counts.Invoices)
	assert.Zero(t, counts.Payments)
}

func TestChildCreate_RequiresVendor(t *testing.T) {
	ctx := context.Background()
	s := New()
	stores := s.Stores()

	ghost := vendor.NewVendor("Ghost", vendor.TermsAdvance)

	b := brand.NewBrand(ghost.ID, "Nope", "N-1", brand.CategoryGeneral)
	assert.True(t, apperror.IsNotFound(stores.Brands.Create(ctx, b)))

	i := issue.NewIssue(ghost.ID, "Nope", issue.TypeOther)
	assert.True(t, apperror.IsNotFound(stores.Issues.Create(ctx, i)))

	inv := invoice.NewInvoice(ghost.ID, "INV-1", time.Now(), types.MustMoney("10.00"), 1)
	assert.True(t, apperror.IsNotFound(stores.Invoices.Create(ctx, inv)))
}

func TestFindByVendorAndNumber(t *testing.T) {
	ctx := context.Background()
	s := New()
	stores := s.Stores()
	v := seedVendor(t, s)
	inv := seedInvoice(t, s, v, "INV-7")

	found, err := stores.Invoices.FindByVendorAndNumber(ctx, v.ID, "INV-7")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, found.ID)

	_, err = stores.Invoices.FindByVendorAndNumber(ctx, v.ID, "INV-8")
	assert.True(t, apperror.IsNotFound(err))
}

func TestMutationsStampLastSaved(t *testing.T) {
	s := New()
	fixed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	seedVendor(t, s)

	snap, err := s.Stores().Snapshots.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixed, snap.LastSaved)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	stores := s.Stores()
	v := seedVendor(t, s)

	got, err := stores.Vendors.GetByID(ctx, v.ID)
	require.NoError(t, err)

	// Mutating a returned record must not leak into the store.
	got.Name = "Tampered"

	again, err := stores.Vendors.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Dairy", again.Name)
}

func TestPersistHookRunsOnMutation(t *testing.T) {
	calls := 0
	s := NewFromDataset(NewDataset(), func(d *Dataset) error {
		calls++
		return nil
	})

	seedVendor(t, s)
	assert.Equal(t, 1, calls)
}
