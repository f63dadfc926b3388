package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quizhub/internal/repository/repotest"
	"quizhub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{service.ErrCourseNotFound, http.StatusNotFound, "Course not found"},
		{fmt.Errorf("lookup: %w", service.ErrDayNotFound), http.StatusNotFound, "Day not found"},
		{service.ErrDuplicateCourse, http.StatusBadRequest, "Course already exists"},
		{service.ErrDuplicateDay, http.StatusBadRequest, "Day already exists"},
		{service.ErrMissingDeviceID, http.StatusBadRequest, "Device ID is required"},
		{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{errors.New("socket closed"), http.StatusInternalServerError, "fallback"},
	}
	for _, tt := range tests {
		status, msg := errorResponse(tt.err, "fallback")
		if status != tt.status || msg != tt.msg {
			t.Errorf("errorResponse(%v) = %d %q, want %d %q", tt.err, status, msg, tt.status, tt.msg)
		}
	}
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	store := repotest.NewStore()
	h := NewCourseHandler(service.NewCourseService(store.Courses(), zerolog.Nop()), validator.New(), zerolog.Nop())
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	for _, path := range []string{"/admin/courses", "/admin/days", "/admin/questions"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json")))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("POST %s: expected 400, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"success":false`) {
			t.Errorf("POST %s: expected error envelope, got %s", path, rec.Body.String())
		}
	}
}

func TestAddQuestionsBatchRules(t *testing.T) {
	store := repotest.NewStore()
	h := NewCourseHandler(service.NewCourseService(store.Courses(), zerolog.Nop()), validator.New(), zerolog.Nop())
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/questions", strings.NewReader(body)))
		return rec
	}

	if rec := post(`{"course":"css","day":"day-1"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing questions: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.Course("css") != nil {
		t.Fatal("rejected request should not create the course")
	}

	q := `{"question":"q","options":["a","b"],"answer":0}`
	if rec := post(`{"course":"css","day":"day-1","questions":[` + q + `]}`); rec.Code != http.StatusOK {
		t.Fatalf("one question: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec := post(`{"course":"css","day":"day-1","questions":[]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty batch: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"totalQuestions":1`) {
		t.Fatalf("empty batch should report the current total, got %s", rec.Body.String())
	}
}
