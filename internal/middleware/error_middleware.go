package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
	"github.com/yigit/unicommunity/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps an error returned by a service onto the JSON error body.
// Every controller reports failures through here.
func HandleAPIError(c *gin.Context, err error) {
	var (
		status  int
		code    dto.ErrorCode
		message string
	)

	switch {
	case apperrors.Is(err, apperrors.ErrIncompleteData):
		status, code, message = http.StatusBadRequest, dto.ErrorCodeIncompleteData, "Incomplete data provided"
	case apperrors.Is(err, apperrors.ErrInvalidUserType):
		status, code, message = http.StatusBadRequest, dto.ErrorCodeInvalidUserType, "Invalid user type"
	case apperrors.Is(err, apperrors.ErrValidationFailed):
		status, code, message = http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	case apperrors.Is(err, apperrors.ErrDuplicateUsername):
		status, code, message = http.StatusBadRequest, dto.ErrorCodeDuplicateUsername, "Username already exists"
	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists):
		status, code, message = http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"
	case apperrors.Is(err, apperrors.ErrResourceNotFound):
		status, code, message = http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"
	default:
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while serving request")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
		return
	}

	resp := dto.NewErrorResponse(code, apperrors.Message(err, message))
	if details := errorDetails(err); details != nil {
		resp.WithDetails(details)
	}
	c.AbortWithStatusJSON(status, resp)
}

func errorDetails(err error) map[string]interface{} {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && len(ce.Details) > 0 {
		return ce.Details
	}
	return nil
}
