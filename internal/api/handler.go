package api

import (
	"github.com/rs/zerolog"

	"homework-status-bot/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	log   zerolog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, log zerolog.Logger) *Handler {
	return &Handler{
		store: s,
		log:   log,
	}
}
