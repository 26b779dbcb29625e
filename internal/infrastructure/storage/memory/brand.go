package memory

import (
	"context"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/brand"
)

type brandRepo struct {
	store *Store
}

var _ brand.Repository = (*brandRepo)(nil)

func (r *brandRepo) Create(ctx context.Context, b *brand.Brand) error {
	return r.store.mutate(func(d *Dataset) error {
		if !vendorExists(d, b.VendorID) {
			return apperror.NewNotFound("vendor", b.VendorID.String())
		}
		cp := *b
		d.Brands = append(d.Brands, &cp)
		return nil
	})
}

func (r *brandRepo) GetByID(ctx context.Context, brandID id.ID) (*brand.Brand, error) {
	var found *brand.Brand
	err := r.store.read(func(d *Dataset) error {
		for _, b := range d.Brands {
			if b.ID == brandID {
				cp := *b
				found = &cp
				return nil
			}
		}
		return apperror.NewNotFound("brand", brandID.String())
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *brandRepo) List(ctx context.Context) ([]*brand.Brand, error) {
	var out []*brand.Brand
	err := r.store.read(func(d *Dataset) error {
		out = make([]*brand.Brand, 0, len(d.Brands))
		for _, b := range d.Brands {
			cp := *b
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

func (r *brandRepo) Delete(ctx context.Context, brandID id.ID) error {
	return r.store.mutate(func(d *Dataset) error {
		for i, b := range d.Brands {
			if b.ID == brandID {
				d.Brands = append(d.Brands[:i], d.Brands[i+1:]...)
				return nil
			}
		}
		return apperror.NewNotFound("brand", brandID.String())
	})
}
