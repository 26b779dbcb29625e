package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/domain/snapshot"
)

// SnapshotHandler serves the full-dataset and backup endpoints.
type SnapshotHandler struct {
	*BaseHandler
	service *snapshot.Service
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(base *BaseHandler, service *snapshot.Service) *SnapshotHandler {
	return &SnapshotHandler{BaseHandler: base, service: service}
}

// Data handles GET /api/data: the full dataset in one response.
func (h *SnapshotHandler) Data(c *gin.Context) {
	snap, err := h.service.Collect(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "data", snap)
}

// Backup handles GET /api/backup: the full dataset as a downloadable
// document, gzipped when ?compress=true.
func (h *SnapshotHandler) Backup(c *gin.Context) {
	snap, err := h.service.Collect(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		h.Error(c, apperror.NewInternal(fmt.Errorf("encode backup: %w", err)))
		return
	}

	filename := fmt.Sprintf("vendorledger-backup-%s.json",
		snap.GeneratedAt.Format("2006-01-02"))

	if c.Query("compress") == "true" {
		c.Header("Content-Disposition", `attachment; filename="`+filename+`.gz"`)
		c.Header("Content-Type", "application/gzip")
		c.Status(http.StatusOK)

		gz := gzip.NewWriter(c.Writer)
		if _, err := gz.Write(body); err != nil {
			_ = gz.Close()
			return
		}
		_ = gz.Close()
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", body)
}
