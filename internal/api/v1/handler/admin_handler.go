package handler

import (
	"net/http"

	"quizhub/internal/api/v1/dto"
	"quizhub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AdminHandler serves login and the dashboard. The /admin routes carry no
// server-side session; the client keeps its own admin flag after login.
type AdminHandler struct {
	adminService service.AdminService
	statsService service.StatsService
	validate     *validator.Validate
	logger       zerolog.Logger
}

func NewAdminHandler(adminService service.AdminService, statsService service.StatsService, validate *validator.Validate, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		statsService: statsService,
		validate:     validate,
		logger:       logger.With().Str("handler", "AdminHandler").Logger(),
	}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Post("/admin/login", h.login)
	r.Get("/admin/stats", h.getStats)
	r.Get("/admin/courses-progress", h.getCoursesProgress)
}

// login godoc
// @Summary Admin login
// @Description Checks the shared admin credential. No token is issued.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Admin credentials"
// @Success 200 {object} dto.MessageDTO
// @Failure 401 {object} dto.MessageDTO "Invalid credentials"
// @Router /admin/login [post]
func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := h.adminService.Login(r.Context(), req.Username, req.Password); err != nil {
		writeServiceError(w, h.logger, err, "Login failed")
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageDTO{Success: true, Message: "Login successful"})
}

// getStats godoc
// @Summary Dashboard totals
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DashboardStatsDTO
// @Failure 500 {object} dto.MessageDTO "Failed to fetch stats"
// @Router /admin/stats [get]
func (h *AdminHandler) getStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.statsService.DashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, dto.DashboardStatsDTO{
		TotalCourses:   s.TotalCourses,
		StartedCourses: s.StartedCourses,
		TotalDays:      s.TotalDays,
		TotalQuestions: s.TotalQuestions,
		TotalUsers:     s.TotalUsers,
	})
}

// getCoursesProgress godoc
// @Summary Per-course progress
// @Tags admin
// @Produce json
// @Success 200 {array} dto.CourseProgressDTO
// @Failure 500 {object} dto.MessageDTO "Failed to fetch course progress"
// @Router /admin/courses-progress [get]
func (h *AdminHandler) getCoursesProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.statsService.CoursesProgress(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch course progress")
		return
	}
	resp := make([]dto.CourseProgressDTO, 0, len(progress))
	for _, p := range progress {
		resp = append(resp, dto.CourseProgressDTO{
			Name:     p.Name,
			Value:    p.Key,
			Days:     p.DayCount,
			Progress: p.ProgressPercent,
			Icon:     p.Icon,
			Color:    p.Color,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
