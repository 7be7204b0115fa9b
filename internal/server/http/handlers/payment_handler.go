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

// PaymentHandler serves checkout and payment lookup endpoints.
type PaymentHandler struct {
	facade PaymentFacade
	logger *slog.Logger
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade, logger *slog.Logger) *PaymentHandler {
	useJSONFieldNames()
	return &PaymentHandler{facade: facade, logger: logger}
}

// Process handles POST /api/payments/process.
func (h *PaymentHandler) Process(c *gin.Context) {
	var req dto.PaymentRequest
	if err := bindJSON(c, &req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid payment data",
			Errors:  fieldErrors(err),
		})
		return
	}

	confirmation, err := h.facade.Process(c.Request.Context(), req.Details())
	if err != nil {
		h.logger.Error("payment processing failed",
			slog.String("request_id", middleware.RequestIDFrom(c)),
			slog.Any("error", err),
		)
		abortInternal(c, "payment processing failed")
		return
	}

	if !confirmation.Succeeded() {
		c.JSON(http.StatusPaymentRequired, dto.NewProcessResponse(confirmation, "payment declined"))
		return
	}
	c.JSON(http.StatusOK, dto.NewProcessResponse(confirmation, "payment processed successfully"))
}

// Get handles GET /api/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.facade.Payment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithMessage(c, http.StatusNotFound, "payment not found")
			return
		}
		h.logger.Error("payment lookup failed",
			slog.String("request_id", middleware.RequestIDFrom(c)),
			slog.Int64("payment_id", id),
			slog.Any("error", err),
		)
		abortInternal(c, "payment lookup failed")
		return
	}

	c.JSON(http.StatusOK, dto.PaymentLookupResponse{Success: true, Payment: dto.NewPaymentResponse(*payment)})
}
