package issue

import (
	"context"
	"fmt"
	"time"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
)

// Patch is the explicit field whitelist for issue updates. Nil fields are
// left untouched; unknown request fields never reach the model.
type Patch struct {
	ProductName   *string
	Type          *Type
	Quantity      *int
	EstimatedLoss *types.Money
	Description   *string
	Status        *Status
}

// Service provides business logic for the Issue log.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new Issue service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates and stores a new issue. Status is forced to pending
// regardless of caller input; ResolvedAt starts empty.
func (s *Service) Create(ctx context.Context, i *Issue) error {
	i.Status = StatusPending
	i.ResolvedAt = nil

	if err := i.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, i); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return fmt.Errorf("create issue: %w", err)
	}

	return nil
}

// Update merges the patch onto the stored issue. The pending→resolved
// transition is one-way: resolving stamps ResolvedAt with the current
// date, and a resolved issue cannot be reopened.
func (s *Service) Update(ctx context.Context, issueID id.ID, patch Patch) (*Issue, error) {
	existing, err := s.repo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	if patch.ProductName != nil {
		existing.ProductName = *patch.ProductName
	}
	if patch.Type != nil {
		existing.Type = *patch.Type
	}
	if patch.Quantity != nil {
		existing.Quantity = *patch.Quantity
	}
	if patch.EstimatedLoss != nil {
		existing.EstimatedLoss = *patch.EstimatedLoss
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}

	if patch.Status != nil {
		switch {
		case *patch.Status == existing.Status:
			// no transition
		case existing.Status == StatusResolved:
			return nil, apperror.NewBusinessRule("resolved issues cannot be reopened").
				WithDetail("id", issueID.String())
		case *patch.Status == StatusResolved:
			now := s.now().UTC()
			existing.Status = StatusResolved
			existing.ResolvedAt = &now
		default:
			existing.Status = *patch.Status
			existing.ResolvedAt = nil
		}
	}

	if err := existing.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("update issue: %w", err)
	}

	return existing, nil
}

// List retrieves all issues.
func (s *Service) List(ctx context.Context) ([]*Issue, error) {
	return s.repo.List(ctx)
}
