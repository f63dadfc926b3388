package dto

type QuizResponseDTO struct {
	Success     bool          `json:"success"`
	Questions   []QuestionDTO `json:"questions"`
	Course      string        `json:"course"`
	Day         string        `json:"day"`
	Topic       string        `json:"topic"`
	Description string        `json:"description"`
}

type TopicDetailResponseDTO struct {
	Success      bool          `json:"success"`
	Course       string        `json:"course"`
	Day          string        `json:"day"`
	Topic        string        `json:"topic"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Quizzes      []QuestionDTO `json:"quizzes"`
	QuizzesCount int           `json:"quizzesCount"`
}
