package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipline/internal/modules/order"
	"shipline/internal/types"
)

type OrderHandler struct {
	order *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{order: svc}
}

type buyProductReq struct {
	ProductID   *string `json:"product_id"`
	Product     string  `json:"product" binding:"required"`
	Description *string `json:"description"`
	FullName    string  `json:"full_name" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Email       *string `json:"email"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	State       string  `json:"state" binding:"required"`
	Country     string  `json:"country" binding:"required"`
	PinCode     string  `json:"pin_code" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type orderIDReq struct {
	ID     string `json:"id" binding:"required"`
	Reason string `json:"reason"`
}

type orderResp struct {
	ID          types.ID  `json:"id"`
	ProductID   *types.ID `json:"product_id,omitempty"`
	Product     string    `json:"product"`
	Description *string   `json:"description"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	Quantity    int       `json:"quantity"`
	Email       *string   `json:"email"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	PinCode     string    `json:"pin_code"`
	Price       float64   `json:"price"`
	IsCancelled bool      `json:"is_cancelled"`
	IsReturned  bool      `json:"is_returned"`
}

type lifecycleResp struct {
	ID          types.ID `json:"id"`
	IsCancelled bool     `json:"is_cancelled"`
	IsReturned  bool     `json:"is_returned"`
	Reason      string   `json:"reason"`
}

func toOrderResp(o *order.Order) orderResp {
	return orderResp{
		ID:          o.ID,
		ProductID:   o.ProductID,
		Product:     o.Product,
		Description: o.Description,
		FullName:    o.FullName,
		Phone:       o.Phone,
		Quantity:    o.Quantity,
		Email:       o.Email,
		Address:     o.Address,
		City:        o.City,
		State:       o.State,
		Country:     o.Country,
		PinCode:     o.PinCode,
		Price:       o.Price,
		IsCancelled: o.IsCancelled,
		IsReturned:  o.IsReturned,
	}
}

func (h *OrderHandler) Buy(c *gin.Context) {
	var req buyProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	var productID *types.ID
	if req.ProductID != nil {
		if !types.Valid(*req.ProductID) {
			writeError(c, http.StatusBadRequest, "invalid product id")
			return
		}
		id := types.ID(*req.ProductID)
		productID = &id
	}
	o, err := h.order.Initiate(c.Request.Context(), order.InitiateCommand{
		ProductID:   productID,
		Product:     req.Product,
		Description: req.Description,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Quantity:    req.Quantity,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		PinCode:     req.PinCode,
		Price:       req.Price,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toOrderResp(o))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	var req orderIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !types.Valid(req.ID) {
		writeError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	res, err := h.order.Cancel(c.Request.Context(), order.CancelCommand{
		OrderID: types.ID(req.ID),
		Reason:  req.Reason,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, lifecycleResp{
		ID:          res.OrderID,
		IsCancelled: res.Cancelled,
		IsReturned:  res.Returned,
		Reason:      res.Reason,
	})
}

func (h *OrderHandler) Return(c *gin.Context) {
	var req orderIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !types.Valid(req.ID) {
		writeError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	res, err := h.order.Return(c.Request.Context(), order.ReturnCommand{
		OrderID: types.ID(req.ID),
		Reason:  req.Reason,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, lifecycleResp{
		ID:          res.OrderID,
		IsCancelled: res.Cancelled,
		IsReturned:  res.Returned,
		Reason:      res.Reason,
	})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !types.Valid(id) {
		writeError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	o, err := h.order.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toOrderResp(o))
}

func (h *OrderHandler) List(c *gin.Context) {
	skip, limit := pagination(c, 100)
	os, err := h.order.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]orderResp, 0, len(os))
	for _, o := range os {
		out = append(out, toOrderResp(o))
	}
	writeJSON(c, http.StatusOK, out)
}

func (h *OrderHandler) FindByPhone(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		writeError(c, http.StatusBadRequest, "missing phone")
		return
	}
	os, err := h.order.FindByPhone(c.Request.Context(), phone)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]orderResp, 0, len(os))
	for _, o := range os {
		out = append(out, toOrderResp(o))
	}
	writeJSON(c, http.StatusOK, out)
}
