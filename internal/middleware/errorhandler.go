package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sadumina/CarbonXinsight/internal/domain/dto"
	"github.com/sadumina/CarbonXinsight/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context by handlers
// into a single standardized JSON error response. Handlers that already
// wrote a response are left alone.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Err(err).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
