package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homework-status-bot/internal/model"
	"homework-status-bot/internal/store"
)

const defaultNotificationsLimit = 20

// GetNotifications handles the GET /api/notifications?limit=N request.
func (h *Handler) GetNotifications(c *gin.Context) {
	limit := defaultNotificationsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > store.MaxNotificationsPage {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	items, err := h.store.RecentNotifications(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("notification lookup failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}
	if items == nil {
		items = []model.Notification{}
	}
	c.JSON(http.StatusOK, items)
}
