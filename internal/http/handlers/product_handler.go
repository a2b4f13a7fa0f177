package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shipline/internal/modules/product"
	"shipline/internal/types"
)

type ProductHandler struct {
	product *product.Service
}

func NewProductHandler(svc *product.Service) *ProductHandler {
	return &ProductHandler{product: svc}
}

type createProductReq struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	ImgURL      *string `json:"img_url"`
}

type productResp struct {
	ID          types.ID `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	ImgURL      *string  `json:"img_url"`
}

func toProductResp(p *product.Product) productResp {
	return productResp{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Rating:      p.Rating,
		Price:       p.Price,
		Quantity:    p.Quantity,
		ImgURL:      p.ImgURL,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.product.Create(c.Request.Context(), product.CreateCommand{
		Name:        req.Name,
		Description: req.Description,
		Rating:      req.Rating,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImgURL:      req.ImgURL,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toProductResp(p))
}

func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !types.Valid(id) {
		writeError(c, http.StatusBadRequest, "invalid product id")
		return
	}
	p, err := h.product.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toProductResp(p))
}

func (h *ProductHandler) List(c *gin.Context) {
	skip, limit := pagination(c, 10)
	ps, err := h.product.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]productResp, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResp(p))
	}
	writeJSON(c, http.StatusOK, out)
}

// pagination reads skip/limit query params the way the upstream API does.
func pagination(c *gin.Context, defLimit int) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defLimit)))
	if err != nil || limit <= 0 {
		limit = defLimit
	}
	return skip, limit
}
