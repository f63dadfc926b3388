package model

import "time"

// User represents a registered learner.
type User struct {
	ID               string          `bson:"id" json:"id"`
	Name             string          `bson:"name" json:"name"`
	Email            string          `bson:"email" json:"email"`
	JoinedAt         time.Time       `bson:"joinedAt" json:"joinedAt"`
	CompletedQuizzes []CompletedQuiz `bson:"completedQuizzes" json:"completedQuizzes"`
}

// CompletedQuiz records a finished quiz. Nothing writes these yet.
type CompletedQuiz struct {
	Course      string    `bson:"course" json:"course"`
	Day         string    `bson:"day" json:"day"`
	Score       int       `bson:"score" json:"score"`
	CompletedAt time.Time `bson:"completedAt" json:"completedAt"`
}
