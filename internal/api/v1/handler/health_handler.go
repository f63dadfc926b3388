package handler

import (
	"context"
	"net/http"
	"time"

	"quizhub/internal/api/v1/dto"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store  Pinger
	now    func() time.Time
	logger zerolog.Logger
}

func NewHealthHandler(store Pinger, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		now:    time.Now,
		logger: logger.With().Str("handler", "HealthHandler").Logger(),
	}
}

func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.health)
}

// health godoc
// @Summary Liveness and store connectivity
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthDTO
// @Router /health [get]
func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "connected"
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("Store ping failed")
		status = "disconnected"
	}
	writeJSON(w, http.StatusOK, dto.HealthDTO{
		Success:   true,
		Message:   "Server is running!",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Database:  status,
	})
}
