package issue

import (
	"context"

	"vendorledger/internal/core/id"
)

// Repository defines the interface for Issue persistence.
// Create fails with NotFound when the referenced vendor does not exist.
type Repository interface {
	Create(ctx context.Context, i *Issue) error
	GetByID(ctx context.Context, id id.ID) (*Issue, error)
	Update(ctx context.Context, i *Issue) error
	List(ctx context.Context) ([]*Issue, error)
}
