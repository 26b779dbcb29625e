// Package snapshot provides the full-dataset view used by the data,
// backup, and health endpoints.
package snapshot

import (
	"time"

	"vendorledger/internal/domain/brand"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/issue"
	"vendorledger/internal/domain/vendor"
)

// Snapshot is the full current dataset plus a generation timestamp.
// LastSaved is the dataset-wide stamp maintained by the memory and file
// backends; the PostgreSQL backend reports the snapshot time.
type Snapshot struct {
	Vendors     []*vendor.Vendor     `json:"vendors"`
	Brands      []*brand.Brand       `json:"brands"`
	Issues      []*issue.Issue       `json:"issues"`
	Invoices    []*invoice.Invoice   `json:"invoices"`
	Payments    []invoice.Payment    `json:"payments"`
	CreditNotes []invoice.CreditNote `json:"creditNotes"`

	GeneratedAt time.Time `json:"generatedAt"`
	LastSaved   time.Time `json:"lastSaved"`
}

// RowCounts holds per-collection record counts for the health probe.
type RowCounts struct {
	Vendors     int64 `json:"vendors"`
	Brands      int64 `json:"brands"`
	Issues      int64 `json:"issues"`
	Invoices    int64 `json:"invoices"`
	Payments    int64 `json:"payments"`
	CreditNotes int64 `json:"creditNotes"`
}
