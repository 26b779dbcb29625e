package handlers

import (
	"github.com/gin-gonic/gin"

	"vendorledger/internal/domain/brand"
	"vendorledger/internal/infrastructure/http/v1/dto"
)

// BrandHandler serves the brand catalog endpoints.
type BrandHandler struct {
	*BaseHandler
	service *brand.Service
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(base *BaseHandler, service *brand.Service) *BrandHandler {
	return &BrandHandler{BaseHandler: base, service: service}
}

// List handles GET /api/brands.
func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "brands", brands)
}

// Create handles POST /api/brands.
func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.CreateBrandRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), b); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "brand", b)
}

// Delete handles DELETE /api/brands/:id.
func (h *BrandHandler) Delete(c *gin.Context) {
	brandID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), brandID); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "deleted", brandID)
}
