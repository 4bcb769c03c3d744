package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/logger"
	"github.com/sullivan-trading/sullivan-api/internal/middleware"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError combines logging and a JSON error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps the domain error kinds onto HTTP statuses.
// Validation and not-found messages are safe to surface; everything else
// gets a terse body with detail only in the logs.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case apperrors.IsNotFound(err):
		sendError(c, http.StatusNotFound, err.Error(), err)
	case apperrors.IsAuthentication(err):
		sendError(c, http.StatusUnauthorized, "authentication failed", err)
	case apperrors.IsConfiguration(err):
		sendError(c, http.StatusInternalServerError, "server configuration error", err)
	case apperrors.IsExternalService(err):
		sendError(c, http.StatusBadGateway, "payment processor request failed", err)
	default:
		sendError(c, http.StatusInternalServerError, "internal server error", err)
	}
}

// parseIDParam reads the :id path parameter.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		sendError(c, http.StatusBadRequest, "invalid id parameter", err)
		return 0, false
	}
	return id, true
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func timePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	ts := t.Time
	return &ts
}
