package handlers

import (
	"github.com/gin-gonic/gin"

	"vendorledger/internal/domain/issue"
	"vendorledger/internal/infrastructure/http/v1/dto"
)

// IssueHandler serves the issue log endpoints.
type IssueHandler struct {
	*BaseHandler
	service *issue.Service
}

// NewIssueHandler creates a new issue handler.
func NewIssueHandler(base *BaseHandler, service *issue.Service) *IssueHandler {
	return &IssueHandler{BaseHandler: base, service: service}
}

// List handles GET /api/issues.
func (h *IssueHandler) List(c *gin.Context) {
	issues, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "issues", issues)
}

// Create handles POST /api/issues.
func (h *IssueHandler) Create(c *gin.Context) {
	var req dto.CreateIssueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	i := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), i); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "issue", i)
}

// Update handles PUT /api/issues/:id.
func (h *IssueHandler) Update(c *gin.Context) {
	issueID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateIssueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), issueID, req.ToPatch())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "issue", updated)
}
