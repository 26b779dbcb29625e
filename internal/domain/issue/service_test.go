package issue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
	"vendorledger/internal/domain/issue"
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

func TestCreate_ForcesPendingStatus(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := issue.NewService(stores.Issues)

	i := issue.NewIssue(vendorID, "MorningMilk 500ml", issue.TypeExpired)
	i.Status = issue.StatusResolved // caller input is ignored

	require.NoError(t, svc.Create(ctx, i))

	assert.Equal(t, issue.StatusPending, i.Status)
	assert.Nil(t, i.ResolvedAt)
}

func TestCreate_UnknownVendor(t *testing.T) {
	ctx := context.Background()
	stores, _ := newTestStores(t)
	svc := issue.NewService(stores.Issues)

	i := issue.NewIssue(id.New(), "Ghost Product", issue.TypeDamaged)
	err := svc.Create(ctx, i)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdate_ResolvingStampsResolvedAt(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := issue.NewService(stores.Issues)

	i := issue.NewIssue(vendorID, "CreamLine 200ml", issue.TypeDamaged)
	require.NoError(t, svc.Create(ctx, i))

	resolved := issue.StatusResolved
	updated, err := svc.Update(ctx, i.ID, issue.Patch{Status: &resolved})
	require.NoError(t, err)

	assert.Equal(t, issue.StatusResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
	assert.False(t, updated.ResolvedAt.IsZero())
}

func TestUpdate_ResolvedCannotReopen(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := issue.NewService(stores.Issues)

	i := issue.NewIssue(vendorID, "CrispBite 90g", issue.TypeDefective)
	require.NoError(t, svc.Create(ctx, i))

	resolved := issue.StatusResolved
	_, err := svc.Update(ctx, i.ID, issue.Patch{Status: &resolved})
	require.NoError(t, err)

	pending := issue.StatusPending
	_, err = svc.Update(ctx, i.ID, issue.Patch{Status: &pending})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBusinessRule, appErr.Code)
}

func TestUpdate_PartialPatch(t *testing.T) {
	ctx := context.Background()
	stores, vendorID := newTestStores(t)
	svc := issue.NewService(stores.Issues)

	i := issue.NewIssue(vendorID, "MorningMilk 500ml", issue.TypeExpired)
	i.Quantity = 4
	require.NoError(t, svc.Create(ctx, i))

	loss := types.MustMoney("180.00")
	updated, err := svc.Update(ctx, i.ID, issue.Patch{EstimatedLoss: &loss})
	require.NoError(t, err)

	// Untouched fields keep their stored values.
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, "MorningMilk 500ml", updated.ProductName)
	assert.True(t, updated.EstimatedLoss.Equal(loss))
	assert.Equal(t, issue.StatusPending, updated.Status)
}

func TestUpdate_UnknownIssue(t *testing.T) {
	ctx := context.Background()
	stores, _ := newTestStores(t)
	svc := issue.NewService(stores.Issues)

	name := "whatever"
	_, err := svc.Update(ctx, id.New(), issue.Patch{ProductName: &name})
	assert.True(t, apperror.IsNotFound(err))
}
