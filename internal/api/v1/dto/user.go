package dto

import "time"

type UserCreateDTO struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UserResponseDTO struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	JoinedAt         time.Time          `json:"joinedAt"`
	CompletedQuizzes []CompletedQuizDTO `json:"completedQuizzes"`
}

type CompletedQuizDTO struct {
	Course      string    `json:"course"`
	Day         string    `json:"day"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completedAt"`
}

type UserCreateResponseDTO struct {
	Success bool            `json:"success"`
	User    UserResponseDTO `json:"user"`
}
