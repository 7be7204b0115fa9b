package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/checkout/internal/server/http/dto"
	"github.com/polkiloo/checkout/internal/server/http/handlers"
	"github.com/polkiloo/checkout/internal/server/http/middleware"
)

// Module provides the configured *gin.Engine.
var Module = fx.Provide(Setup)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CheckoutFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Message: "route not found"})
	})

	paymentHandler := handlers.NewPaymentHandler(facade, logger)
	orderHandler := handlers.NewOrderHandler(facade, logger)

	api := engine.Group("/api")
	payments := api.Group("/payments")
	payments.POST("/process", paymentHandler.Process)
	payments.GET("/:id", paymentHandler.Get)

	api.GET("/orders/:id", orderHandler.Get)

	return engine
}
