package dto

import (
	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/types"
	"vendorledger/internal/domain/vendor"
)

// CreateVendorRequest is the body of POST /api/vendors.
type CreateVendorRequest struct {
	Name          string       `json:"name" binding:"required"`
	ContactPerson *string      `json:"contactPerson"`
	Phone         *string      `json:"phone"`
	Email         *string      `json:"email"`
	Address       *string      `json:"address"`
	PaymentTerms  string       `json:"paymentTerms" binding:"required"`
	VisitCadence  *string      `json:"visitCadence"`
	HasDisplay    bool         `json:"hasDisplay"`
	DisplayRent   *types.Money `json:"displayRent"`
	Remarks       *string      `json:"remarks"`
	Status        string       `json:"status"`
}

// ToEntity maps the request to a new Vendor.
func (r CreateVendorRequest) ToEntity() *vendor.Vendor {
	v := &vendor.Vendor{
		Record:        entity.NewRecord(),
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		PaymentTerms:  vendor.PaymentTerms(r.PaymentTerms),
		VisitCadence:  r.VisitCadence,
		HasDisplay:    r.HasDisplay,
		DisplayRent:   types.Zero(),
		Remarks:       r.Remarks,
		Status:        vendor.Status(r.Status),
	}
	if r.DisplayRent != nil {
		v.DisplayRent = *r.DisplayRent
	}
	return v
}
