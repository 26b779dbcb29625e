// Package brand provides the Brand catalog.
// A brand is a product line carried for a specific vendor; its lifecycle
// is bound to the owning vendor.
package brand

import (
	"context"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/id"
)

// Category is the retail category of a brand.
type Category string

const (
	CategoryGrocery      Category = "grocery"
	CategoryBeverages    Category = "beverages"
	CategoryDairy        Category = "dairy"
	CategorySnacks       Category = "snacks"
	CategoryPersonalCare Category = "personal_care"
	CategoryHousehold    Category = "household"
	CategoryFrozen       Category = "frozen"
	CategoryBakery       Category = "bakery"
	CategoryGeneral      Category = "general"
)

// Brand represents a vendor's product line.
type Brand struct {
	entity.Record

	// VendorID references the owning vendor
	VendorID id.ID `db:"vendor_id" json:"vendorId"`

	// Name is the brand display name
	Name string `db:"name" json:"name"`

	// SKU is the stock keeping unit code
	SKU string `db:"sku" json:"sku"`

	// Category is the retail category
	Category Category `db:"category" json:"category"`
}

// NewBrand creates a new Brand for a vendor.
func NewBrand(vendorID id.ID, name, sku string, category Category) *Brand {
	return &Brand{
		Record:   entity.NewRecord(),
		VendorID: vendorID,
		Name:     name,
		SKU:      sku,
		Category: category,
	}
}

// Validate implements entity.Validatable.
func (b *Brand) Validate(ctx context.Context) error {
	if id.IsNil(b.VendorID) {
		return apperror.NewValidation("vendor is required").
			WithDetail("field", "vendorId")
	}

	if b.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if !isValidCategory(b.Category) {
		return apperror.NewValidation("invalid category").
			WithDetail("field", "category").
			WithDetail("value", string(b.Category))
	}

	return nil
}

func isValidCategory(c Category) bool {
	switch c {
	case CategoryGrocery, CategoryBeverages, CategoryDairy, CategorySnacks,
		CategoryPersonalCare, CategoryHousehold, CategoryFrozen,
		CategoryBakery, CategoryGeneral:
		return true
	}
	return false
}
