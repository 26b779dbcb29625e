package entity

import (
	"context"
	"time"

	"vendorledger/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Record contains the common fields of every stored entity.
// ID and CreatedAt are always server-assigned, never client-supplied.
type Record struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// CreatedAt is stamped from the server clock at creation
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewRecord creates a Record with a generated ID and the current time.
func NewRecord() Record {
	return Record{
		ID:        id.New(),
		CreatedAt: time.Now().UTC(),
	}
}
