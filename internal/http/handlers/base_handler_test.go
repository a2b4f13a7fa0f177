package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shipline/internal/modules/order"
	"shipline/internal/modules/product"
	"shipline/internal/modules/tracking"
)

func TestWriteDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", order.ErrBadRequest, http.StatusBadRequest},
		{"product bad request", product.ErrBadRequest, http.StatusBadRequest},
		{"order not found", order.ErrNotFound, http.StatusNotFound},
		{"tracking not found", tracking.ErrNotFound, http.StatusNotFound},
		{"invalid state", order.ErrInvalidState, http.StatusConflict},
		{"conflict", order.ErrConflict, http.StatusConflict},
		{"out of stock", product.ErrOutOfStock, http.StatusConflict},
		{"not trackable", tracking.ErrNotTrackable, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("fetch order: %w", order.ErrNotFound), http.StatusNotFound},
		{"wrapped invalid state", fmt.Errorf("cancel: %w", order.ErrInvalidState), http.StatusConflict},
		{"wrapped out of stock", fmt.Errorf("reserve: %w", product.ErrOutOfStock), http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			writeDomainError(c, tc.err)
			if w.Code != tc.want {
				t.Fatalf("status for %v = %d, want %d", tc.err, w.Code, tc.want)
			}
		})
	}
}
