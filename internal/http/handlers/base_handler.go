package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shipline/internal/modules/order"
	"shipline/internal/modules/product"
	"shipline/internal/modules/tracking"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrBadRequest) || errors.Is(err, product.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrNotFound) || errors.Is(err, product.ErrNotFound) || errors.Is(err, tracking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInvalidState) || errors.Is(err, order.ErrConflict) ||
		errors.Is(err, product.ErrOutOfStock) || errors.Is(err, tracking.ErrNotTrackable):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
