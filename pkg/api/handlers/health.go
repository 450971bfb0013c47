package handlers

import (
	"net/http"
	"time"

	"url2md-go/pkg/convert"
	"url2md-go/pkg/models"

	"github.com/gin-gonic/gin"
)

// Version is reported by GET /health.
const Version = "1.0.0"

// State is the read-only process state shared with health handlers.
type State struct {
	StartedAt   time.Time
	EngineReady bool
}

// Root handles GET /, the minimal liveness payload.
func Root(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:         "running",
			Timestamp:      time.Now().UTC(),
			ConverterReady: state.EngineReady,
		})
	}
}

// Health handles GET /health, the extended liveness payload.
func Health(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		if !state.EngineReady {
			status = "degraded"
		}
		c.JSON(http.StatusOK, models.HealthDetail{
			HealthResponse: models.HealthResponse{
				Status:         status,
				Timestamp:      time.Now().UTC(),
				ConverterReady: state.EngineReady,
			},
			UptimeSeconds: int64(time.Since(state.StartedAt).Seconds()),
			Version:       Version,
			Formats:       convert.Formats(),
		})
	}
}
