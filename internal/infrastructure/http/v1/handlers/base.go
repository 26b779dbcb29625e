// Package handlers provides the HTTP handlers for API v1.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendorledger/internal/core/apperror"
	"vendorledger/internal/core/id"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// ParseID parses the :id path parameter.
func (h *BaseHandler) ParseID(c *gin.Context) (id.ID, bool) {
	parsed, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("id", c.Param("id")))
		return id.Nil(), false
	}
	return parsed, true
}

// Error registers the error on the Gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler (single source
// of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OK sends a 200 success envelope carrying the payload under key.
func (h *BaseHandler) OK(c *gin.Context, key string, payload any) {
	c.JSON(http.StatusOK, successBody(key, payload))
}

// Created sends a 201 success envelope carrying the payload under key.
func (h *BaseHandler) Created(c *gin.Context, key string, payload any) {
	c.JSON(http.StatusCreated, successBody(key, payload))
}

func successBody(key string, payload any) gin.H {
	return gin.H{
		"success": true,
		key:       payload,
	}
}
