package brand

import (
	"context"
	"fmt"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
)

// Service provides business logic for the Brand catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Brand service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new brand. Vendor existence is enforced
// by the store.
func (s *Service) Create(ctx context.Context, b *Brand) error {
	if err := b.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return fmt.Errorf("create brand: %w", err)
	}

	return nil
}

// List retrieves all brands.
func (s *Service) List(ctx context.Context) ([]*Brand, error) {
	return s.repo.List(ctx)
}

// Delete removes a brand by id.
func (s *Service) Delete(ctx context.Context, brandID id.ID) error {
	err := s.repo.Delete(ctx, brandID)
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
