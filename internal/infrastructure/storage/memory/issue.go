package memory

import (
	"context"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/issue"
)

type issueRepo struct {
	store *Store
}

var _ issue.Repository = (*issueRepo)(nil)

func (r *issueRepo) Create(ctx context.Context, i *issue.Issue) error {
	return r.store.mutate(func(d *Dataset) error {
		if !vendorExists(d, i.VendorID) {
			return apperror.NewNotFound("vendor", i.VendorID.String())
		}
		cp := *i
		d.Issues = append(d.Issues, &cp)
		return nil
	})
}

func (r *issueRepo) GetByID(ctx context.Context, issueID id.ID) (*issue.Issue, error) {
	var found *issue.Issue
	err := r.store.read(func(d *Dataset) error {
		for _, i := range d.Issues {
			if i.ID == issueID {
				cp := *i
				found = &cp
				return nil
			}
		}
		return apperror.NewNotFound("issue", issueID.String())
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *issueRepo) Update(ctx context.Context, i *issue.Issue) error {
	return r.store.mutate(func(d *Dataset) error {
		for idx, existing := range d.Issues {
			if existing.ID == i.ID {
				cp := *i
				d.Issues[idx] = &cp
				return nil
			}
		}
		return apperror.NewNotFound("issue", i.ID.String())
	})
}

func (r *issueRepo) List(ctx context.Context) ([]*issue.Issue, error) {
	var out []*issue.Issue
	err := r.store.read(func(d *Dataset) error {
		out = make([]*issue.Issue, 0, len(d.Issues))
		for _, i := range d.Issues {
			cp := *i
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}
