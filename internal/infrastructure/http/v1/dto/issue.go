package dto

import (
	"vendorledger/internal/core/entity"
	"vendorledger/internal/core/id"
	"vendorledger/internal/core/types"
	"vendorledger/internal/domain/issue"
)

// CreateIssueRequest is the body of POST /api/issues.
type CreateIssueRequest struct {
	VendorID      id.ID        `json:"vendorId" binding:"required"`
	ProductName   string       `json:"productName" binding:"required"`
	Type          string       `json:"type" binding:"required"`
	Quantity      int          `json:"quantity"`
	EstimatedLoss *types.Money `json:"estimatedLoss"`
	Description   string       `json:"description"`
}

// ToEntity maps the request to a new Issue. Status is assigned by the
// service, never by the caller.
func (r CreateIssueRequest) ToEntity() *issue.Issue {
	i := &issue.Issue{
		Record:        entity.NewRecord(),
		VendorID:      r.VendorID,
		ProductName:   r.ProductName,
		Type:          issue.Type(r.Type),
		Quantity:      r.Quantity,
		EstimatedLoss: types.Zero(),
		Description:   r.Description,
	}
	if r.EstimatedLoss != nil {
		i.EstimatedLoss = *r.EstimatedLoss
	}
	return i
}

// UpdateIssueRequest is the body of PUT /api/issues/:id. All fields are
// optional; absent fields leave the stored value untouched.
type UpdateIssueRequest struct {
	ProductName   *string      `json:"productName"`
	Type          *string      `json:"type"`
	Quantity      *int         `json:"quantity"`
	EstimatedLoss *types.Money `json:"estimatedLoss"`
	Description   *string      `json:"description"`
	Status        *string      `json:"status"`
}

// ToPatch maps the request to an issue.Patch.
func (r UpdateIssueRequest) ToPatch() issue.Patch {
	p := issue.Patch{
		ProductName:   r.ProductName,
		Quantity:      r.Quantity,
		EstimatedLoss: r.EstimatedLoss,
		Description:   r.Description,
	}
	if r.Type != nil {
		t := issue.Type(*r.Type)
		p.Type = &t
	}
	if r.Status != nil {
		s := issue.Status(*r.Status)
		p.Status = &s
	}
	return p
}
