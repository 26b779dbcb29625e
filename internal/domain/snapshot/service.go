package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("vendorledger/snapshot")

// Service provides dataset-wide reads for the data, backup, and health
// endpoints.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new Snapshot service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Collect returns the full current dataset stamped with the generation
// time. No filtering, no pagination.
func (s *Service) Collect(ctx context.Context) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "snapshot.collect")
	defer span.End()

	snap, err := s.repo.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect snapshot: %w", err)
	}

	snap.GeneratedAt = s.now().UTC()
	if snap.LastSaved.IsZero() {
		snap.LastSaved = snap.GeneratedAt
	}

	span.SetAttributes(
		attribute.Int("snapshot.vendors", len(snap.Vendors)),
		attribute.Int("snapshot.invoices", len(snap.Invoices)),
	)

	return snap, nil
}

// Counts returns per-collection record counts.
func (s *Service) Counts(ctx context.Context) (RowCounts, error) {
	return s.repo.Counts(ctx)
}
