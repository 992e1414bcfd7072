package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health godoc
//
//	@Summary	Liveness check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Message:   "Server running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
