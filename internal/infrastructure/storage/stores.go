// Package storage defines the bundle of repository implementations a
// backend provides. Three interchangeable backends exist: volatile
// memory, flat-file JSON, and PostgreSQL. The domain layer is agnostic
// to which one is active.
package storage

import (
	"vendorledger/internal/domain/brand"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/issue"
	"vendorledger/internal/domain/snapshot"
	"vendorledger/internal/domain/vendor"
)

// Backend identifies a storage backend.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendPostgres Backend = "postgres"
)

// Valid reports whether b names a known backend.
func (b Backend) Valid() bool {
	switch b {
	case BackendMemory, BackendFile, BackendPostgres:
		return true
	}
	return false
}

// Stores bundles the repository implementations of one backend.
type Stores struct {
	Vendors   vendor.Repository
	Brands    brand.Repository
	Issues    issue.Repository
	Invoices  invoice.Repository
	Snapshots snapshot.Repository
}
