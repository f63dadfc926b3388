package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizhub/internal/api/v1/dto"
	"quizhub/internal/model"
	"quizhub/internal/service"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.MessageDTO{Success: false, Message: message})
}

// decodeJSON reads the request body into dst, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return false
	}
	return true
}

// errorResponse maps a service error to its status and client message.
// Unrecognised errors become 500 with fallback as the message.
func errorResponse(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return http.StatusNotFound, "Course not found"
	case errors.Is(err, service.ErrDayNotFound):
		return http.StatusNotFound, "Day not found"
	case errors.Is(err, service.ErrDuplicateCourse):
		return http.StatusBadRequest, "Course already exists"
	case errors.Is(err, service.ErrDuplicateDay):
		return http.StatusBadRequest, "Day already exists"
	case errors.Is(err, service.ErrMissingDeviceID):
		return http.StatusBadRequest, "Device ID is required"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	default:
		return http.StatusInternalServerError, fallback
	}
}

func writeServiceError(w http.ResponseWriter, logger zerolog.Logger, err error, fallback string) {
	status, msg := errorResponse(err, fallback)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Msg(fallback)
	}
	writeError(w, status, msg)
}

func toQuestionDTOs(qs []model.Question) []dto.QuestionDTO {
	out := make([]dto.QuestionDTO, 0, len(qs))
	for _, q := range qs {
		out = append(out, dto.QuestionDTO{
			ID:          q.ID,
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Category:    q.Category,
			Explanation: q.Explanation,
		})
	}
	return out
}

func fromQuestionInputs(in []dto.QuestionInputDTO) []model.Question {
	out := make([]model.Question, 0, len(in))
	for _, q := range in {
		out = append(out, model.Question{
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Category:    q.Category,
			Explanation: q.Explanation,
		})
	}
	return out
}
