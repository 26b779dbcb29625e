package brand

import (
	"context"

	"vendorledger/internal/core/id"
)

// Repository defines the interface for Brand persistence.
// Create fails with NotFound when the referenced vendor does not exist;
// the store owns that check, not the service.
type Repository interface {
	Create(ctx context.Context, b *Brand) error
	GetByID(ctx context.Context, id id.ID) (*Brand, error)
	List(ctx context.Context) ([]*Brand, error)
	Delete(ctx context.Context, id id.ID) error
}
