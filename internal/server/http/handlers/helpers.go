package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/server/http/dto"
)

// parseID accepts plain base-10 digits only, without a sign.
func parseID(raw string) (int64, error) {
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", domainErrors.ErrMalformedIdentifier, raw)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domainErrors.ErrMalformedIdentifier, raw)
	}
	return id, nil
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Success: false, Message: message})
}

func abortInternal(c *gin.Context, message string) {
	abortWithMessage(c, http.StatusInternalServerError, message)
}
