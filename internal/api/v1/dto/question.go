package dto

// QuestionInputDTO is a question as submitted by an admin. IDs are assigned
// by the server.
type QuestionInputDTO struct {
	Question    string   `json:"question" validate:"required"`
	Options     []string `json:"options" validate:"required,min=1"`
	Answer      int      `json:"answer" validate:"gte=0"`
	Explanation string   `json:"explanation"`
	Category    string   `json:"category,omitempty"`
}

type QuestionDTO struct {
	ID          int64    `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Category    string   `json:"category"`
	Explanation string   `json:"explanation"`
}

// QuestionsAddDTO is the body of POST /admin/questions.
type QuestionsAddDTO struct {
	Course    string             `json:"course" validate:"required"`
	Day       string             `json:"day" validate:"required"`
	Questions []QuestionInputDTO `json:"questions" validate:"required,dive"`
}

type QuestionsAddResponseDTO struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TotalQuestions int    `json:"totalQuestions"`
}
