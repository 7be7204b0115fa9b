package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/server/http/dto"
	"github.com/polkiloo/checkout/internal/server/http/middleware"
)

// OrderHandler serves order lookups.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "invalid order id")
		return
	}

	details, err := h.facade.OrderDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithMessage(c, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("order lookup failed",
			slog.String("request_id", middleware.RequestIDFrom(c)),
			slog.Int64("order_id", id),
			slog.Any("error", err),
		)
		abortInternal(c, "order lookup failed")
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderDetailsResponse(details))
}
