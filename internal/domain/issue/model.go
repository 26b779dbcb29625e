// Package issue provides the vendor Issue log.
// An issue records a quality or delivery problem tied to a vendor:
// expired stock, damaged goods, short deliveries, and so on.
package issue

import (
	"context"
	"time"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
)

// Type classifies the problem.
type Type string

const (
	TypeExpired       Type = "expired"
	TypeDamaged       Type = "damaged"
	TypeDefective     Type = "defective"
	TypeWrongDelivery Type = "wrong_delivery"
	TypePoorQuality   Type = "poor_quality"
	TypeShortDelivery Type = "short_delivery"
	TypeOther         Type = "other"
)

// Status is the issue lifecycle status. The transition is one-way:
// pending issues can be resolved, resolved issues stay resolved.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

// Issue represents a logged vendor problem.
type Issue struct {
	entity.Record

	// VendorID references the vendor the issue is logged against
	VendorID id.ID `db:"vendor_id" json:"vendorId"`

	// ProductName is the affected product
	ProductName string `db:"product_name" json:"productName"`

	// Type classifies the problem
	Type Type `db:"issue_type" json:"type"`

	// Quantity is the affected unit count
	Quantity int `db:"quantity" json:"quantity"`

	// EstimatedLoss is the monetary loss estimate
	EstimatedLoss types.Money `db:"estimated_loss" json:"estimatedLoss"`

	// Description is a free-form note
	Description string `db:"description" json:"description,omitempty"`

	// Status is pending or resolved
	Status Status `db:"status" json:"status"`

	// ResolvedAt is set exactly when Status becomes resolved, nil otherwise
	ResolvedAt *time.Time `db:"resolved_at" json:"resolvedAt,omitempty"`
}

// NewIssue creates a new pending Issue.
func NewIssue(vendorID id.ID, productName string, issueType Type) *Issue {
	return &Issue{
		Record:        entity.NewRecord(),
		VendorID:      vendorID,
		ProductName:   productName,
		Type:          issueType,
		EstimatedLoss: types.Zero(),
		Status:        StatusPending,
	}
}

// Validate implements entity.Validatable.
func (i *Issue) Validate(ctx context.Context) error {
	if id.IsNil(i.VendorID) {
		return apperror.NewValidation("vendor is required").
			WithDetail("field", "vendorId")
	}

	if i.ProductName == "" {
		return apperror.NewValidation("product name is required").
			WithDetail("field", "productName")
	}

	if !isValidType(i.Type) {
		return apperror.NewValidation("invalid issue type").
			WithDetail("field", "type").
			WithDetail("value", string(i.Type))
	}

	if !isValidStatus(i.Status) {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(i.Status))
	}

	if i.Quantity < 0 {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}

	// ResolvedAt is set iff the issue is resolved.
	if (i.Status == StatusResolved) != (i.ResolvedAt != nil) {
		return apperror.NewValidation("resolvedAt must be set exactly when status is resolved").
			WithDetail("field", "resolvedAt")
	}

	return nil
}

// IsResolved returns true if the issue has been resolved.
func (i *Issue) IsResolved() bool {
	return i.Status == StatusResolved
}

func isValidType(t Type) bool {
	switch t {
	case TypeExpired, TypeDamaged, TypeDefective, TypeWrongDelivery,
		TypePoorQuality, TypeShortDelivery, TypeOther:
		return true
	}
	return false
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusResolved:
		return true
	}
	return false
}
