package dto

type VisitDTO struct {
	DeviceID  string `json:"deviceId"`
	UserAgent string `json:"userAgent,omitempty"`
}

type VisitResponseDTO struct {
	Success      bool  `json:"success"`
	IsNewVisitor bool  `json:"isNewVisitor"`
	TotalUsers   int64 `json:"totalUsers"`
}

// PublicStatsDTO is the landing-page summary. TotalUsers counts visitor
// devices.
type PublicStatsDTO struct {
	TotalCourses   int   `json:"totalCourses"`
	StartedCourses int   `json:"startedCourses"`
	TotalDays      int   `json:"totalDays"`
	TotalUsers     int64 `json:"totalUsers"`
}
