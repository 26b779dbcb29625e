package dto

import (
	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/id"
	"vendorledger/internal/domain/brand"
)

// CreateBrandRequest is the body of POST /api/brands.
type CreateBrandRequest struct {
	VendorID id.ID  `json:"vendorId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
}

// ToEntity maps the request to a new Brand.
func (r CreateBrandRequest) ToEntity() *brand.Brand {
	b := &brand.Brand{
		Record:   entity.NewRecord(),
		VendorID: r.VendorID,
		Name:     r.Name,
		SKU:      r.SKU,
		Category: brand.Category(r.Category),
	}
	if b.Category == "" {
		b.Category = brand.CategoryGeneral
	}
	return b
}
