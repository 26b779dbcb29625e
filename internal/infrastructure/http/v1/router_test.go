package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "vendorledger/internal/infrastructure/http/v1"
	"vendorledger/internal/infrastructure/storage"
	"vendorledger/internal/infrastructure/storage/memory"
	"vendorledger/pkg/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return v1.NewRouter(v1.RouterConfig{
		Backend: storage.BackendMemory,
		Stores:  memory.New().Stores(),
		Logger:  logger.Default(),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "application/gzip" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func createVendor(t *testing.T, router *gin.Engine, name string) string {
	t.Helper()

	w, body := doJSON(t, router, http.MethodPost, "/api/vendors", gin.H{
		"name":         name,
		"paymentTerms": "credit",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, true, body["success"])

	v := body["vendor"].(map[string]any)
	return v["id"].(string)
}

func TestVendorLifecycle(t *testing.T) {
	router := newTestRouter(t)

	vendorID := createVendor(t, router, "Fresh Dairy")

	w, body := doJSON(t, router, http.MethodGet, "/api/vendors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["vendors"], 1)

	w, body = doJSON(t, router, http.MethodDelete, "/api/vendors/"+vendorID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	w, body = doJSON(t, router, http.MethodGet, "/api/vendors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["vendors"])
}

func TestCreateVendor_ValidationError(t *testing.T) {
	router := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/vendors", gin.H{
		"paymentTerms": "credit",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body, "success")
}

func TestCreateBrand_UnknownVendor(t *testing.T) {
	router := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/brands", gin.H{
		"vendorId": "018f4f40-0000-7000-8000-000000000000",
		"name":     "Ghost Brand",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestIssueLifecycle(t *testing.T) {
	router := newTestRouter(t)
	vendorID := createVendor(t, router, "Fresh Dairy")

	w, body := doJSON(t, router, http.MethodPost, "/api/issues", gin.H{
		"vendorId":    vendorID,
		"productName": "MorningMilk 500ml",
		"type":        "expired",
		"quantity":    12,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := body["issue"].(map[string]any)
	assert.Equal(t, "pending", created["status"])
	issueID := created["id"].(string)

	w, body = doJSON(t, router, http.MethodPut, "/api/issues/"+issueID, gin.H{
		"status": "resolved",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := body["issue"].(map[string]any)
	assert.Equal(t, "resolved", updated["status"])
	assert.NotEmpty(t, updated["resolvedAt"])

	// Resolution is one-way.
	w, body = doJSON(t, router, http.MethodPut, "/api/issues/"+issueID, gin.H{
		"status": "pending",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestInvoiceUpsertAndReconcile(t *testing.T) {
	router := newTestRouter(t)
	vendorID := createVendor(t, router, "Fresh Dairy")

	submit := gin.H{
		"vendorId":      vendorID,
		"invoiceNumber": "INV-100",
		"invoiceDate":   "2024-03-01",
		"amount":        1000,
		"totalItems":    48,
	}

	w, body := doJSON(t, router, http.MethodPost, "/api/invoices", submit)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "created", body["action"])

	invoiceID := body["invoice"].(map[string]any)["id"].(string)

	// Same key again updates in place.
	submit["amount"] = 1200
	w, body = doJSON(t, router, http.MethodPost, "/api/invoices", submit)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "updated", body["action"])
	assert.Equal(t, invoiceID, body["invoice"].(map[string]any)["id"])

	w, _ = doJSON(t, router, http.MethodPost, "/api/payments", gin.H{
		"invoiceId":     invoiceID,
		"paymentDate":   "2024-03-05",
		"amount":        500,
		"paymentMethod": "cash",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body = doJSON(t, router, http.MethodGet, "/api/invoices-complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	invoices := body["invoices"].([]any)
	require.Len(t, invoices, 1)

	reconciled := invoices[0].(map[string]any)
	assert.Equal(t, "partial", reconciled["paymentStatus"])
	assert.Equal(t, "500", fmt.Sprint(reconciled["paymentAmount"]))
	assert.Equal(t, "700", fmt.Sprint(reconciled["outstanding"]))
}

func TestCreditNote_DuplicateNumber(t *testing.T) {
	router := newTestRouter(t)
	vendorID := createVendor(t, router, "Fresh Dairy")

	w, body := doJSON(t, router, http.MethodPost, "/api/invoices", gin.H{
		"vendorId":      vendorID,
		"invoiceNumber": "INV-100",
		"invoiceDate":   "2024-03-01",
		"amount":        1000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	invoiceID := body["invoice"].(map[string]any)["id"].(string)

	note := gin.H{
		"invoiceId":  invoiceID,
		"crnNumber":  "CRN-9",
		"creditDate": "2024-03-06",
		"amount":     50,
		"reason":     "damaged",
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/credit-notes", note)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body = doJSON(t, router, http.MethodPost, "/api/credit-notes", note)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestDataAndHealth(t *testing.T) {
	router := newTestRouter(t)
	createVendor(t, router, "Fresh Dairy")

	w, body := doJSON(t, router, http.MethodGet, "/api/data", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Len(t, data["vendors"], 1)
	assert.NotEmpty(t, data["generatedAt"])

	w, body = doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "memory", body["backend"])

	counts := body["counts"].(map[string]any)
	assert.Equal(t, float64(1), counts["vendors"])
}

func TestBackupDownload(t *testing.T) {
	router := newTestRouter(t)
	createVendor(t, router, "Fresh Dairy")

	w, _ := doJSON(t, router, http.MethodGet, "/api/backup", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	w, _ = doJSON(t, router, http.MethodGet, "/api/backup?compress=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/gzip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".gz")
}

func TestTraceHeadersEchoed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}
