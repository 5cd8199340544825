package handlers

import (
	"net/http"

	"mediconnect/services/prescription"
	"mediconnect/services/scheduling"
	"mediconnect/services/user"
	"mediconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func getLogger(c *gin.Context) *zap.Logger {
	return utils.GetLogger().With(
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
	)
}

// schedulingErrorStatus maps engine error codes onto HTTP statuses.
func schedulingErrorStatus(err error) int {
	switch scheduling.ErrorCode(err) {
	case scheduling.CodeSlotUnavailable, scheduling.CodeInvalidTransition:
		return http.StatusConflict
	case scheduling.CodeDayUnavailable:
		return http.StatusUnprocessableEntity
	case scheduling.CodeValidation:
		return http.StatusBadRequest
	case scheduling.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func prescriptionErrorStatus(err error) int {
	switch prescription.ErrorCode(err) {
	case prescription.CodeDuplicate:
		return http.StatusConflict
	case prescription.CodeValidation:
		return http.StatusBadRequest
	case prescription.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func userErrorStatus(err error) int {
	switch user.ErrorCode(err) {
	case user.CodeDuplicate:
		return http.StatusConflict
	case user.CodeValidation:
		return http.StatusBadRequest
	case user.CodeNotFound:
		return http.StatusNotFound
	case user.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs and writes a service error. Unrecognized errors are
// reported as opaque 500s.
func respondError(c *gin.Context, status int, err error) {
	logger := getLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	logger.Warn("request rejected", zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
