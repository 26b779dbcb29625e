package handlers

import (
	"github.com/gin-gonic/gin"

	"vendorledger/internal/domain/vendor"
	"vendorledger/internal/infrastructure/http/v1/dto"
)

// VendorHandler serves the vendor catalog endpoints.
type VendorHandler struct {
	*BaseHandler
	service *vendor.Service
}

// NewVendorHandler creates a new vendor handler.
func NewVendorHandler(base *BaseHandler, service *vendor.Service) *VendorHandler {
	return &VendorHandler{BaseHandler: base, service: service}
}

// List handles GET /api/vendors.
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "vendors", vendors)
}

// Create handles POST /api/vendors.
func (h *VendorHandler) Create(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !h.BindJSON(c, &req) {
		return
	}

	v := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), v); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "vendor", v)
}

// Delete handles DELETE /api/vendors/:id.
func (h *VendorHandler) Delete(c *gin.Context) {
	vendorID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), vendorID); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "deleted", vendorID)
}
