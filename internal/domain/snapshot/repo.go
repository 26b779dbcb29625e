package snapshot

import "context"

// Repository defines the interface for dataset-wide reads.
type Repository interface {
	// Collect returns the full current dataset.
	Collect(ctx context.Context) (*Snapshot, error)

	// Counts returns per-collection record counts.
	Counts(ctx context.Context) (RowCounts, error)
}
