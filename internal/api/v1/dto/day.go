package dto

// DayCreateDTO is the body of POST and PUT /admin/days.
type DayCreateDTO struct {
	Course      string             `json:"course" validate:"required"`
	Day         string             `json:"day" validate:"required"`
	Topic       string             `json:"topic"`
	Description string             `json:"description"`
	Category    string             `json:"category,omitempty" validate:"omitempty,oneof=basic medium advanced"`
	Quizzes     []QuestionInputDTO `json:"quizzes,omitempty" validate:"omitempty,dive"`
}

// DayCreateResponseDTO echoes the stored day identifier.
type DayCreateResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Day     string `json:"day"`
}
