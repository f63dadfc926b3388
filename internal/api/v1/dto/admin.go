package dto

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type DashboardStatsDTO struct {
	TotalCourses   int   `json:"totalCourses"`
	StartedCourses int   `json:"startedCourses"`
	TotalDays      int   `json:"totalDays"`
	TotalQuestions int   `json:"totalQuestions"`
	TotalUsers     int64 `json:"totalUsers"`
}

// CourseProgressDTO is one entry of GET /admin/courses-progress. Value is the
// course key.
type CourseProgressDTO struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Days     int     `json:"days"`
	Progress float64 `json:"progress"`
	Icon     string  `json:"icon"`
	Color    string  `json:"color"`
}
