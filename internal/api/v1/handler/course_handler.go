package handler

import (
	"context"
	"fmt"
	"net/http"

	"quizhub/internal/api/v1/dto"
	"quizhub/internal/model"
	"quizhub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles catalogue and authoring endpoints.
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validate:      validate,
		logger:        logger.With().Str("handler", "CourseHandler").Logger(),
	}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.listCourses)
	r.Get("/course-days/{course}", h.getCourseDays)
	r.Get("/next-day/{course}", h.getNextDay)
	r.Post("/admin/courses", h.createCourse)
	r.Post("/admin/days", h.addDay)
	r.Put("/admin/days", h.putDay)
	r.Post("/admin/questions", h.addQuestions)
}

// listCourses godoc
// @Summary List all courses
// @Description Returns every course keyed by course key, with its days keyed by day id.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.CatalogDTO
// @Failure 500 {object} dto.MessageDTO "Failed to fetch courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch courses")
		return
	}
	resp := make(dto.CatalogDTO, len(courses))
	for _, c := range courses {
		days := make(map[string]dto.CatalogDayDTO, len(c.Days))
		for _, d := range c.Days {
			days[d.Day] = dto.CatalogDayDTO{
				Topic:       d.Topic,
				Description: d.Description,
				Category:    string(d.Category.OrDefault()),
				Quizzes:     toQuestionDTOs(d.Quizzes),
			}
		}
		resp[c.Key] = dto.CatalogCourseDTO{Name: c.Name, Days: days}
	}
	writeJSON(w, http.StatusOK, resp)
}

// getCourseDays godoc
// @Summary List a course's days
// @Description Returns the days of a course sorted by day number.
// @Tags courses
// @Produce json
// @Param course path string true "Course key"
// @Success 200 {object} dto.CourseDaysResponseDTO
// @Failure 404 {object} dto.MessageDTO "Course not found"
// @Failure 500 {object} dto.MessageDTO "Failed to fetch course days"
// @Router /course-days/{course} [get]
func (h *CourseHandler) getCourseDays(w http.ResponseWriter, r *http.Request) {
	cd, err := h.courseService.GetCourseDays(r.Context(), chi.URLParam(r, "course"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch course days")
		return
	}
	days := make([]dto.DaySummaryDTO, 0, len(cd.Days))
	for _, d := range cd.Days {
		days = append(days, dto.DaySummaryDTO{
			Day:          d.Day,
			Topic:        d.Topic,
			Description:  d.Description,
			QuizzesCount: len(d.Quizzes),
			Category:     string(d.Category.OrDefault()),
		})
	}
	writeJSON(w, http.StatusOK, dto.CourseDaysResponseDTO{
		Success:   true,
		Course:    cd.Name,
		Days:      days,
		TotalDays: len(days),
	})
}

// getNextDay godoc
// @Summary Suggest the next day id
// @Description Returns the day id after the highest existing "day-N", or day-1 for an unknown course.
// @Tags courses
// @Produce json
// @Param course path string true "Course key"
// @Success 200 {object} dto.NextDayResponseDTO
// @Failure 500 {object} dto.MessageDTO "Failed to compute next day"
// @Router /next-day/{course} [get]
func (h *CourseHandler) getNextDay(w http.ResponseWriter, r *http.Request) {
	next, err := h.courseService.NextDay(r.Context(), chi.URLParam(r, "course"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to compute next day")
		return
	}
	writeJSON(w, http.StatusOK, dto.NextDayResponseDTO{
		Success:      true,
		NextDay:      next.Day,
		ExistingDays: next.ExistingDays,
	})
}

// createCourse godoc
// @Summary Create a course
// @Description Creates an empty course. Keys are unique.
// @Tags admin
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 200 {object} dto.CourseCreateResponseDTO
// @Failure 400 {object} dto.MessageDTO "Missing fields or course already exists"
// @Failure 500 {object} dto.MessageDTO "Failed to add course"
// @Router /admin/courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Course key and name are required")
		return
	}
	c, err := h.courseService.CreateCourse(r.Context(), req.Key, req.Name)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to add course")
		return
	}
	writeJSON(w, http.StatusOK, dto.CourseCreateResponseDTO{
		Success:   true,
		Message:   fmt.Sprintf("Course %q added successfully", c.Name),
		CourseKey: c.Key,
	})
}

// addDay godoc
// @Summary Add a day
// @Description Appends a new day to a course, creating the course if needed. Rejects an existing day id.
// @Tags admin
// @Accept json
// @Produce json
// @Param day body dto.DayCreateDTO true "Day creation request"
// @Success 200 {object} dto.DayCreateResponseDTO
// @Failure 400 {object} dto.MessageDTO "Validation failed or day already exists"
// @Failure 404 {object} dto.MessageDTO "Course not found"
// @Failure 500 {object} dto.MessageDTO "Failed to add day"
// @Router /admin/days [post]
func (h *CourseHandler) addDay(w http.ResponseWriter, r *http.Request) {
	h.writeDay(w, r, h.courseService.AddDay)
}

// putDay godoc
// @Summary Create or replace a day
// @Description Stores a day, overwriting any existing day with the same id. Creates the course if needed.
// @Tags admin
// @Accept json
// @Produce json
// @Param day body dto.DayCreateDTO true "Day request"
// @Success 200 {object} dto.DayCreateResponseDTO
// @Failure 400 {object} dto.MessageDTO "Validation failed"
// @Failure 500 {object} dto.MessageDTO "Failed to add day"
// @Router /admin/days [put]
func (h *CourseHandler) putDay(w http.ResponseWriter, r *http.Request) {
	h.writeDay(w, r, h.courseService.PutDay)
}

func (h *CourseHandler) writeDay(w http.ResponseWriter, r *http.Request, store func(ctx context.Context, p service.AddDayParams) (*model.Day, error)) {
	var req dto.DayCreateDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	day, err := store(r.Context(), service.AddDayParams{
		CourseKey:   req.Course,
		Day:         req.Day,
		Topic:       req.Topic,
		Description: req.Description,
		Category:    model.Category(req.Category),
		Questions:   fromQuestionInputs(req.Quizzes),
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to add day")
		return
	}
	writeJSON(w, http.StatusOK, dto.DayCreateResponseDTO{
		Success: true,
		Message: fmt.Sprintf("Added day %s to %s", day.Day, req.Course),
		Day:     day.Day,
	})
}

// addQuestions godoc
// @Summary Add questions to a day
// @Description Appends questions to a day, creating the course and day if needed.
// @Tags admin
// @Accept json
// @Produce json
// @Param questions body dto.QuestionsAddDTO true "Questions request"
// @Success 200 {object} dto.QuestionsAddResponseDTO
// @Failure 400 {object} dto.MessageDTO "Validation failed"
// @Failure 500 {object} dto.MessageDTO "Failed to add questions"
// @Router /admin/questions [post]
func (h *CourseHandler) addQuestions(w http.ResponseWriter, r *http.Request) {
	var req dto.QuestionsAddDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	total, err := h.courseService.AddQuestions(r.Context(), req.Course, req.Day, fromQuestionInputs(req.Questions))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to add questions")
		return
	}
	writeJSON(w, http.StatusOK, dto.QuestionsAddResponseDTO{
		Success:        true,
		Message:        fmt.Sprintf("Added %d questions to %s - %s", len(req.Questions), req.Course, req.Day),
		TotalQuestions: total,
	})
}
