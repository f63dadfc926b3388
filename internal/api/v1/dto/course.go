package dto

// CourseCreateDTO is the body of POST /admin/courses.
type CourseCreateDTO struct {
	Key  string `json:"key" validate:"required"`
	Name string `json:"name" validate:"required"`
	// Icon is accepted for client compatibility and not stored.
	Icon *string `json:"icon,omitempty"`
}

type CourseCreateResponseDTO struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CourseKey string `json:"courseKey"`
}

// CatalogDTO is the GET /courses payload: course key to course summary.
type CatalogDTO map[string]CatalogCourseDTO

type CatalogCourseDTO struct {
	Name string                   `json:"name"`
	Days map[string]CatalogDayDTO `json:"days"`
}

type CatalogDayDTO struct {
	Topic       string        `json:"topic"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Quizzes     []QuestionDTO `json:"quizzes"`
}

type CourseDaysResponseDTO struct {
	Success   bool            `json:"success"`
	Course    string          `json:"course"`
	Days      []DaySummaryDTO `json:"days"`
	TotalDays int             `json:"totalDays"`
}

type DaySummaryDTO struct {
	Day          string `json:"day"`
	Topic        string `json:"topic"`
	Description  string `json:"description"`
	QuizzesCount int    `json:"quizzesCount"`
	Category     string `json:"category"`
}

type NextDayResponseDTO struct {
	Success      bool   `json:"success"`
	NextDay      string `json:"nextDay"`
	ExistingDays []int  `json:"existingDays"`
}
