package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/middlewares"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withLazyDB installs a handle that never dials unless a query runs, so routes
// that fail before touching the store can be exercised without MySQL.
func withLazyDB(t *testing.T) {
	t.Helper()
	conn, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:testpw@tcp(127.0.0.1:1)/inventory_test?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("open lazy db: %v", err)
	}
	prev := config.GetDB()
	config.SetDB(conn)
	t.Cleanup(func() { config.SetDB(prev) })
}

func withoutDB(t *testing.T) {
	t.Helper()
	prev := config.GetDB()
	config.SetDB(nil)
	t.Cleanup(func() { config.SetDB(prev) })
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestHealthz_AnswersBeforeDatabase(t *testing.T) {
	withoutDB(t)
	r := setupRouter(logrus.New())

	w := serve(r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["database"] != false {
		t.Fatalf("expected database=false, got %v", body)
	}
}

func TestApi_UnavailableUntilDatabaseConnects(t *testing.T) {
	withoutDB(t)
	r := setupRouter(logrus.New())

	w := serve(r, http.MethodGet, "/api/customers", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestCorrelationId_IsEchoed(t *testing.T) {
	withoutDB(t)
	r := setupRouter(logrus.New())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middlewares.CorrelationIdHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(middlewares.CorrelationIdHeader); got != "abc-123" {
		t.Fatalf("expected correlation id to be echoed, got %q", got)
	}

	w = serve(r, http.MethodGet, "/healthz", "")
	if w.Header().Get(middlewares.CorrelationIdHeader) == "" {
		t.Fatalf("expected a generated correlation id")
	}
}

func TestUnknownRoute(t *testing.T) {
	withLazyDB(t)
	r := setupRouter(logrus.New())

	w := serve(r, http.MethodGet, "/api/invoices", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["ok"] != false {
		t.Fatalf("expected ok=false, got %v", body)
	}
}

func TestRequestsRejectedBeforeStore(t *testing.T) {
	withLazyDB(t)
	r := setupRouter(logrus.New())

	cases := []struct {
		name     string
		method   string
		path     string
		body     string
		status   int
		errorMsg string
	}{
		{"non-numeric id", http.MethodGet, "/api/customers/abc", "", http.StatusBadRequest, "invalid id"},
		{"zero id", http.MethodDelete, "/api/sales/0", "", http.StatusBadRequest, "invalid id"},
		{"malformed body", http.MethodPost, "/api/products", "{", http.StatusBadRequest, "invalid request body"},
		{"sale without items", http.MethodPost, "/api/sales", `{"customerId": 1, "items": []}`, http.StatusBadRequest, "items must contain at least 1 item(s)"},
		{"purchase line without quantity", http.MethodPost, "/api/purchases", `{"supplierId": 1, "items": [{"productId": 1, "rate": 5}]}`, http.StatusBadRequest, "items[0].quantity must be greater than 0"},
		{"purchase quantity below stored scale", http.MethodPost, "/api/purchases", `{"supplierId": 1, "items": [{"productId": 1, "quantity": 0.00001, "rate": 5}]}`, http.StatusBadRequest, "items[0].quantity cannot have more than 4 decimal places"},
		{"customer without name", http.MethodPost, "/api/customers", `{"contact_number": "9123456780", "email": "a@b.co", "address": "Pune"}`, http.StatusBadRequest, "customer_name is required"},
		{"bad report range", http.MethodGet, "/api/reports/sales-report?from=2024-02-01&to=2024-01-01", "", http.StatusBadRequest, "from must not be after to"},
		{"unknown export", http.MethodGet, "/api/reports/ledger/export", "", http.StatusNotFound, "unknown report"},
	}
	for _, tc := range cases {
		w := serve(r, tc.method, tc.path, tc.body)
		if w.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d (%s)", tc.name, tc.status, w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		msg, _ := body["error"].(string)
		if body["ok"] != false || !strings.Contains(msg, tc.errorMsg) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.errorMsg, body)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" https://a.example , ,https://b.example")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", got)
	}
	if splitAndTrim("  ") != nil {
		t.Fatalf("expected nil for blank input")
	}
}
