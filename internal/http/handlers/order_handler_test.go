package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shipline/internal/http/handlers"
	"shipline/internal/modules/order"
	"shipline/internal/modules/product"
	"shipline/internal/modules/tracking"
)

// buildTestRouter wires a minimal gin engine. Services are zero-value so only
// request validation paths may execute; every test below must be rejected
// before a service method is reached.
func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	oh := handlers.NewOrderHandler(&order.Service{})
	ph := handlers.NewProductHandler(&product.Service{})
	th := handlers.NewTrackingHandler(&tracking.Service{})

	r.POST("/products/buy_product/", oh.Buy)
	r.POST("/products/cancel_order/", oh.Cancel)
	r.POST("/products/return_order/", oh.Return)
	r.GET("/products/:id", ph.Get)
	r.GET("/orders/:id", oh.Get)
	r.GET("/track/:order_id", th.Track)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBuyRejectsInvalidJSON(t *testing.T) {
	r := buildTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/products/buy_product/", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBuyRejectsMissingFields(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/products/buy_product/", map[string]any{
		"product": "Test Smartphone",
		// full_name, phone, address... absent
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBuyRejectsBadProductID(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/products/buy_product/", map[string]any{
		"product_id": "not-a-uuid",
		"product":    "Test Smartphone",
		"full_name":  "Asha Pawar",
		"phone":      "111-222",
		"quantity":   1,
		"address":    "12 MG Road",
		"city":       "Nashik",
		"state":      "Maharashtra",
		"country":    "India",
		"pin_code":   "422001",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCancelRejectsBadOrderID(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/products/cancel_order/", map[string]any{
		"id": "42",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestReturnRejectsMissingID(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/products/return_order/", map[string]any{
		"reason": "damaged",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetRejectsBadIDs(t *testing.T) {
	r := buildTestRouter()
	for _, path := range []string{
		"/products/xyz",
		"/orders/xyz",
		"/track/xyz",
	} {
		w := doRequest(r, http.MethodGet, path, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}
