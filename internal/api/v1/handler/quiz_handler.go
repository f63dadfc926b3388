package handler

import (
	"net/http"

	"quizhub/internal/api/v1/dto"
	"quizhub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type QuizHandler struct {
	quizService service.QuizService
	logger      zerolog.Logger
}

func NewQuizHandler(quizService service.QuizService, logger zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		logger:      logger.With().Str("handler", "QuizHandler").Logger(),
	}
}

func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Get("/quiz/{course}/{day}", h.getQuiz)
	r.Get("/topic-detail/{course}/{day}", h.getTopicDetail)
}

// getQuiz godoc
// @Summary Get a day's quiz
// @Tags quiz
// @Produce json
// @Param course path string true "Course key"
// @Param day path string true "Day id"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.MessageDTO "Course not found or Day not found"
// @Failure 500 {object} dto.MessageDTO "Failed to fetch quiz"
// @Router /quiz/{course}/{day} [get]
func (h *QuizHandler) getQuiz(w http.ResponseWriter, r *http.Request) {
	v, err := h.quizService.GetQuiz(r.Context(), chi.URLParam(r, "course"), chi.URLParam(r, "day"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch quiz")
		return
	}
	writeJSON(w, http.StatusOK, dto.QuizResponseDTO{
		Success:     true,
		Questions:   toQuestionDTOs(v.Day.Quizzes),
		Course:      v.CourseName,
		Day:         v.Day.Day,
		Topic:       v.Day.Topic,
		Description: v.Day.Description,
	})
}

// getTopicDetail godoc
// @Summary Get a day's topic detail
// @Tags quiz
// @Produce json
// @Param course path string true "Course key"
// @Param day path string true "Day id"
// @Success 200 {object} dto.TopicDetailResponseDTO
// @Failure 404 {object} dto.MessageDTO "Course not found or Day not found"
// @Failure 500 {object} dto.MessageDTO "Failed to fetch topic detail"
// @Router /topic-detail/{course}/{day} [get]
func (h *QuizHandler) getTopicDetail(w http.ResponseWriter, r *http.Request) {
	v, err := h.quizService.GetTopicDetail(r.Context(), chi.URLParam(r, "course"), chi.URLParam(r, "day"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch topic detail")
		return
	}
	writeJSON(w, http.StatusOK, dto.TopicDetailResponseDTO{
		Success:      true,
		Course:       v.CourseName,
		Day:          v.Day.Day,
		Topic:        v.Day.Topic,
		Description:  v.Day.Description,
		Category:     string(v.Day.Category),
		Quizzes:      toQuestionDTOs(v.Day.Quizzes),
		QuizzesCount: len(v.Day.Quizzes),
	})
}
