package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"job-marketplace/internal/biddingerrors"
	"job-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to a status, sends it and logs it at a level matching the status
func HandleServiceError(c *gin.Context, handlerName, action string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": failed to "+action, fields)
		return
	}
	utils.Warn(handlerName+": failed to "+action, fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrProjectNotFound):
		return http.StatusNotFound, "project not found"
	case errors.Is(err, biddingerrors.ErrBuyerNotFound):
		return http.StatusNotFound, "buyer not found"
	case errors.Is(err, biddingerrors.ErrSellerNotFound):
		return http.StatusNotFound, "seller not found"
	case errors.Is(err, biddingerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, biddingerrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, biddingerrors.ErrDeadlinePassed):
		return http.StatusConflict, "bid deadline has passed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseDeadline accepts RFC3339 with or without fractional seconds
func ParseDeadline(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("bid_deadline must be RFC3339: %w", err)
	}
	return t.UTC(), nil
}

// IDParam reads a uuid path parameter, answering 400 itself when it is malformed
func IDParam(c *gin.Context, handlerName, name string) (string, bool) {
	id := c.Param(name)
	if !utils.IsValidID(id) {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("malformed %s %q", name, id), "invalid "+name)
		utils.Warn(handlerName+": malformed path parameter", map[string]any{name: id})
		return "", false
	}
	return id, true
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
