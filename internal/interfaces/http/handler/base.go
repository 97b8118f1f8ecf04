package handler

import (
	"errors"
	"net/http"

	"github.com/claimgate/backend/internal/domain/claim"
	"github.com/claimgate/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the context key for request ID
const RequestIDKey = "X-Request-ID"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	if id := c.GetHeader(RequestIDKey); id != "" {
		return id
	}
	return ""
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// ErrorWithCode sends an error response, deriving status code from error code
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// TooManyRequests sends a 429 too many requests response
func (h *BaseHandler) TooManyRequests(c *gin.Context, message string) {
	h.Error(c, http.StatusTooManyRequests, dto.ErrCodeRateLimited, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleClaimError converts claim pipeline errors to HTTP responses.
// Store, batch-size, and publish failures all answer 400: the claim was
// not accepted and the caller should retry the same request.
func (h *BaseHandler) HandleClaimError(c *gin.Context, err error) {
	var storeErr *claim.StoreError
	if errors.As(err, &storeErr) {
		h.ErrorWithCode(c, dto.ErrCodeStoreUnavailable, "eligibility store unavailable, retry later")
		return
	}

	var tooLarge *claim.BatchTooLargeError
	if errors.As(err, &tooLarge) {
		h.ErrorWithCode(c, dto.ErrCodeBatchTooLarge, tooLarge.Error())
		return
	}

	var pubErr *claim.PublishError
	if errors.As(err, &pubErr) {
		h.ErrorWithCode(c, dto.ErrCodePublishFailed, pubErr.Error())
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
