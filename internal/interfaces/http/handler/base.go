// Package handler contains the gin handlers of the ledger API. Handlers bind
// and validate requests, call one application service, and write the
// standard response envelope.
package handler

import (
	"errors"
	"net/http"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/logger"
	"github.com/assetledger/backend/internal/interfaces/http/dto"
	"github.com/assetledger/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated sends a page of results with pagination meta
func Paginated[T any](c *gin.Context, page shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.FromPaginated(page))
}

// HandleError converts an error into the response envelope. Domain errors
// keep their code and message and map their category to a status. Anything
// else is logged and answered with a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := middleware.GetRequestID(c)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Category != shared.CategoryInternal {
		c.JSON(dto.GetHTTPStatus(domainErr.Category), dto.NewErrorResponse(
			domainErr.Code, domainErr.Message, requestID, domainErr.Category,
		))
		return
	}

	logger.GetGinLogger(c).Error("Request failed", zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		shared.CodeInternal, dto.InternalErrorMessage, requestID, shared.CategoryInternal,
	))
}

// bindJSON binds and validates the request body, writing a 400 on failure
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// bindQuery binds and validates query parameters, writing a 400 on failure
func (h *BaseHandler) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// pathID parses the :id path parameter, writing a 400 when it is not a UUID
func (h *BaseHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			shared.CodeInvalidInput, "Invalid ID format", middleware.GetRequestID(c), shared.CategoryValidation,
		))
		return uuid.Nil, false
	}
	return id, true
}
