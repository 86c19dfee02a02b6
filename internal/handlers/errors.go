package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/gin-gonic/gin"
)

// respondError writes the error body for err: 400 with the offending field for
// validation failures, 404 for missing rows and 500 with the cause otherwise.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperrors.MessageOf(err), Field: apperrors.FieldOf(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: apperrors.MessageOf(err)})
	default:
		logger.Error("Failed "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// bindJSON decodes the request body into req and answers 400 when it is malformed
// or misses a required field.
func bindJSON(c *gin.Context, req any, action string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, validation.FromBindError(err), action)
		return false
	}
	return true
}

// bindQuery decodes the query string into params.
func bindQuery(c *gin.Context, params any, action string) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		respondError(c, validation.FromBindError(err), action)
		return false
	}
	return true
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context, action string) (int64, bool) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		respondError(c, err, action)
		return 0, false
	}
	return id, true
}
