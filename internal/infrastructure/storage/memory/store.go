// Package memory provides the volatile in-memory storage backend.
// The whole dataset is a single owned aggregate guarded by one mutex;
// it is constructed once at process start and never exposed outside the
// repository interfaces.
package memory

import (
	"sync"
	"time"

	"vendorledger/internal/domain/brand"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/issue"
	"vendorledger/internal/domain/vendor"
	"vendorledger/internal/infrastructure/storage"
)

// Dataset is the complete in-memory state. It is exported so the file
// backend can serialize it as a JSON document.
type Dataset struct {
	Vendors     []*vendor.Vendor     `json:"vendors"`
	Brands      []*brand.Brand       `json:"brands"`
	Issues      []*issue.Issue       `json:"issues"`
	Invoices    []*invoice.Invoice   `json:"invoices"`
	Payments    []invoice.Payment    `json:"payments"`
	CreditNotes []invoice.CreditNote `json:"creditNotes"`

	// LastSaved is stamped on every mutation. Purely observational; it
	// is not used for concurrency control.
	LastSaved time.Time `json:"lastSaved"`
}

// NewDataset returns an empty dataset with non-nil collections.
func NewDataset() *Dataset {
	return &Dataset{
		Vendors:     []*vendor.Vendor{},
		Brands:      []*brand.Brand{},
		Issues:      []*issue.Issue{},
		Invoices:    []*invoice.Invoice{},
		Payments:    []invoice.Payment{},
		CreditNotes: []invoice.CreditNote{},
	}
}

// PersistFunc is called after every successful mutation while the store
// lock is held, with the dataset in its new state. The file backend uses
// it to rewrite its JSON document.
type PersistFunc func(d *Dataset) error

// Store owns the dataset and hands out repository views over it.
type Store struct {
	mu      sync.RWMutex
	data    *Dataset
	persist PersistFunc
	now     func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return NewFromDataset(NewDataset(), nil)
}

// NewFromDataset creates a store over an existing dataset, optionally
// persisting after each mutation.
func NewFromDataset(d *Dataset, persist PersistFunc) *Store {
	if d == nil {
		d = NewDataset()
	}
	return &Store{data: d, persist: persist, now: time.Now}
}

// Stores returns the repository bundle backed by this store.
func (s *Store) Stores() storage.Stores {
	return storage.Stores{
		Vendors:   &vendorRepo{s},
		Brands:    &brandRepo{s},
		Issues:    &issueRepo{s},
		Invoices:  &invoiceRepo{s},
		Snapshots: &snapshotRepo{s},
	}
}

// mutate runs fn under the write lock, stamps LastSaved, and persists.
// fn must not retain references into the dataset past its return.
func (s *Store) mutate(fn func(d *Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.data); err != nil {
		return err
	}

	s.data.LastSaved = s.now().UTC()

	if s.persist != nil {
		return s.persist(s.data)
	}
	return nil
}

// read runs fn under the read lock.
func (s *Store) read(fn func(d *Dataset) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}
