package handler

import (
	"net/http"

	"quizhub/internal/api/v1/dto"
	"quizhub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type VisitorHandler struct {
	visitorService service.VisitorService
	statsService   service.StatsService
	logger         zerolog.Logger
}

func NewVisitorHandler(visitorService service.VisitorService, statsService service.StatsService, logger zerolog.Logger) *VisitorHandler {
	return &VisitorHandler{
		visitorService: visitorService,
		statsService:   statsService,
		logger:         logger.With().Str("handler", "VisitorHandler").Logger(),
	}
}

func (h *VisitorHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register-visit", h.registerVisit)
	r.Get("/stats", h.getPublicStats)
}

// registerVisit godoc
// @Summary Record a device visit
// @Tags visitors
// @Accept json
// @Produce json
// @Param visit body dto.VisitDTO true "Visiting device"
// @Success 200 {object} dto.VisitResponseDTO
// @Failure 400 {object} dto.MessageDTO "Device ID is required"
// @Failure 500 {object} dto.MessageDTO "Failed to register visit"
// @Router /register-visit [post]
func (h *VisitorHandler) registerVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.VisitDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = r.UserAgent()
	}
	res, err := h.visitorService.RegisterVisit(r.Context(), req.DeviceID, userAgent)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to register visit")
		return
	}
	writeJSON(w, http.StatusOK, dto.VisitResponseDTO{
		Success:      true,
		IsNewVisitor: res.IsNewVisitor,
		TotalUsers:   res.TotalVisitors,
	})
}

// getPublicStats godoc
// @Summary Landing-page totals
// @Tags visitors
// @Produce json
// @Success 200 {object} dto.PublicStatsDTO
// @Failure 500 {object} dto.MessageDTO "Failed to fetch stats"
// @Router /stats [get]
func (h *VisitorHandler) getPublicStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.statsService.PublicStats(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, dto.PublicStatsDTO{
		TotalCourses:   s.TotalCourses,
		StartedCourses: s.StartedCourses,
		TotalDays:      s.TotalDays,
		TotalUsers:     s.TotalVisitors,
	})
}
