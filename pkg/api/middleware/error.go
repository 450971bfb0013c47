package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"url2md-go/pkg/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from handler panics and returns a well-formed
// failure envelope instead of an empty body.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("handler panic", "path", c.Request.URL.Path, "panic", recovered)
		c.JSON(http.StatusInternalServerError, models.ConversionResult{
			Success:     false,
			Error:       "internal server error",
			ProcessedAt: time.Now().UTC(),
		})
		c.Abort()
	})
}
