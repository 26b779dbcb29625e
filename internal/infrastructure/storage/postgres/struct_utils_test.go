package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/types"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/vendor"
)

func TestExtractDBColumns_EmbeddedRecord(t *testing.T) {
	cols := ExtractDBColumns[vendor.Vendor]()

	expectedCols := []string{
		"id", "created_at", "name", "contact_person", "phone", "email",
		"address", "payment_terms", "visit_cadence", "has_display",
		"display_rent", "remarks", "status",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestExtractDBColumns_Invoice(t *testing.T) {
	cols := ExtractDBColumns[invoice.Invoice]()

	assert.Contains(t, cols, "vendor_id")
	assert.Contains(t, cols, "number")
	assert.Contains(t, cols, "invoice_date")
	assert.Contains(t, cols, "due_date")
	assert.Contains(t, cols, "updated_at")
}

func TestStructToMap_EmbeddedRecord(t *testing.T) {
	v := vendor.NewVendor("Fresh Dairy", vendor.TermsCredit)
	v.HasDisplay = true
	v.DisplayRent = types.MustMoney("1500.00")

	m := StructToMap(v)

	assert.Equal(t, v.ID, m["id"])
	assert.Equal(t, v.CreatedAt, m["created_at"])
	assert.Equal(t, "Fresh Dairy", m["name"])
	assert.Equal(t, vendor.TermsCredit, m["payment_terms"])
	assert.Equal(t, true, m["has_display"])
}

func TestStructToMap_IgnoresUntaggedFields(t *testing.T) {
	type tagged struct {
		entity.Record
		Kept    string `db:"kept"`
		Skipped string `db:"-"`
		Plain   string
	}

	m := StructToMap(tagged{Kept: "yes", Skipped: "no", Plain: "no"})

	assert.Equal(t, "yes", m["kept"])
	assert.NotContains(t, m, "-")
	assert.NotContains(t, m, "Skipped")
	assert.NotContains(t, m, "Plain")
	assert.Contains(t, m, "id")
}
