package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"shipline/internal/http/handlers"
	"shipline/internal/http/middleware"
	"shipline/internal/modules/order"
	"shipline/internal/modules/product"
	"shipline/internal/modules/tracking"
)

type ServerDeps struct {
	Product  *product.Service
	Order    *order.Service
	Tracking *tracking.Service
	Log      zerolog.Logger
}

type Server struct {
	product  *product.Service
	order    *order.Service
	tracking *tracking.Service
	log      zerolog.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		product:  deps.Product,
		order:    deps.Order,
		tracking: deps.Tracking,
		log:      deps.Log,
	}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(s.log))
	r.Use(middleware.Logging(s.log))
	r.Use(middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Product API"})
	})

	productHandler := handlers.NewProductHandler(s.product)
	orderHandler := handlers.NewOrderHandler(s.order)
	trackingHandler := handlers.NewTrackingHandler(s.tracking)

	products := r.Group("/products")
	{
		products.POST("/", productHandler.Create)
		products.GET("/", productHandler.List)
		products.POST("/buy_product/", orderHandler.Buy)
		products.POST("/cancel_order/", orderHandler.Cancel)
		products.POST("/return_order/", orderHandler.Return)
		products.GET("/:id", productHandler.Get)
	}

	orders := r.Group("/orders")
	{
		orders.GET("/", orderHandler.List)
		orders.GET("/phone/:phone", orderHandler.FindByPhone)
		orders.GET("/:id", orderHandler.Get)
	}

	r.GET("/track/:order_id", trackingHandler.Track)

	return r
}
