package handler

import (
	"net/http"

	"quizhub/internal/api/v1/dto"
	"quizhub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, v *validator.Validate, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    v,
		logger:      logger.With().Str("handler", "UserHandler").Logger(),
	}
}

// RegisterRoutes mounts user routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users", h.createUser)
}

// createUser godoc
// @Summary Register a learner
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UserCreateDTO true "User registration"
// @Success 200 {object} dto.UserCreateResponseDTO
// @Failure 400 {object} dto.MessageDTO "Validation failed"
// @Failure 500 {object} dto.MessageDTO "Failed to add user"
// @Router /users [post]
func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	u, err := h.userService.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		// A taken email is a store constraint failure and answers 500 too.
		writeServiceError(w, h.logger, err, "Failed to add user")
		return
	}
	completed := make([]dto.CompletedQuizDTO, 0, len(u.CompletedQuizzes))
	for _, c := range u.CompletedQuizzes {
		completed = append(completed, dto.CompletedQuizDTO{
			Course:      c.Course,
			Day:         c.Day,
			Score:       c.Score,
			CompletedAt: c.CompletedAt,
		})
	}
	writeJSON(w, http.StatusOK, dto.UserCreateResponseDTO{
		Success: true,
		User: dto.UserResponseDTO{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			JoinedAt:         u.JoinedAt,
			CompletedQuizzes: completed,
		},
	})
}
