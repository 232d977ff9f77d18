package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"homework-status-bot/internal/model"
)

// statusResponse is the payload of GET /api/status.
type statusResponse struct {
	Polled   bool        `json:"polled"`
	Healthy  bool        `json:"healthy"`
	LastPoll *model.Poll `json:"lastPoll,omitempty"`
	Now      time.Time   `json:"now"`
}

// GetStatus handles the GET /api/status request.
func (h *Handler) GetStatus(c *gin.Context) {
	last, err := h.store.LastPoll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("status lookup failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve poll status"})
		return
	}

	resp := statusResponse{Now: time.Now().UTC()}
	if last != nil {
		resp.Polled = true
		resp.Healthy = last.Succeeded()
		resp.LastPoll = last
	}
	c.JSON(http.StatusOK, resp)
}

// Healthz answers liveness probes.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
