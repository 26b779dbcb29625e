package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler serves the invoice ledger endpoints.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// List handles GET /api/invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "invoices", invoices)
}

// Upsert handles POST /api/invoices. A repeated (vendorId, invoiceNumber)
// pair updates the stored invoice; a new pair creates one.
func (h *InvoiceHandler) Upsert(c *gin.Context) {
	var req dto.UpsertInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv, action, err := h.service.Upsert(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	status := http.StatusOK
	if action == invoice.ActionCreated {
		status = http.StatusCreated
	}

	c.JSON(status, gin.H{
		"success": true,
		"action":  action,
		"invoice": inv,
	})
}

// ListComplete handles GET /api/invoices-complete: every invoice
// reconciled against its payments and credit notes.
func (h *InvoiceHandler) ListComplete(c *gin.Context) {
	reconciled, err := h.service.ListComplete(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "invoices", reconciled)
}

// RecordPayment handles POST /api/payments.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.RecordPayment(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "payment", p)
}

// RecordCreditNote handles POST /api/credit-notes.
func (h *InvoiceHandler) RecordCreditNote(c *gin.Context) {
	var req dto.CreateCreditNoteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cn, err := h.service.RecordCreditNote(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "creditNote", cn)
}

// Delete handles DELETE /api/invoices/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	invoiceID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), invoiceID); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, "deleted", invoiceID)
}
