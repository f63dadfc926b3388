package service

import (
	"context"

	"quizhub/internal/model"
	"quizhub/internal/repository"

	"github.com/rs/zerolog"
)

// QuizService provides read-only views of a single day for learners.
type QuizService interface {
	// GetQuiz returns the day as stored.
	GetQuiz(ctx context.Context, courseKey, day string) (*DayView, error)
	// GetTopicDetail returns the day with its category defaulted to basic.
	GetTopicDetail(ctx context.Context, courseKey, day string) (*DayView, error)
}

// DayView is one day together with the display name of its course.
type DayView struct {
	CourseName string
	Day        model.Day
}

type quizService struct {
	repo   repository.CourseRepository
	logger zerolog.Logger
}

func NewQuizService(repo repository.CourseRepository, logger zerolog.Logger) QuizService {
	return &quizService{
		repo:   repo,
		logger: logger.With().Str("service", "QuizService").Logger(),
	}
}

func (s *quizService) GetQuiz(ctx context.Context, courseKey, day string) (*DayView, error) {
	return s.lookup(ctx, courseKey, day)
}

func (s *quizService) GetTopicDetail(ctx context.Context, courseKey, day string) (*DayView, error) {
	v, err := s.lookup(ctx, courseKey, day)
	if err != nil {
		return nil, err
	}
	v.Day.Category = v.Day.Category.OrDefault()
	return v, nil
}

func (s *quizService) lookup(ctx context.Context, courseKey, day string) (*DayView, error) {
	c, err := s.repo.GetCourseByKey(ctx, courseKey)
	if err != nil {
		s.logger.Error().Err(err).Str("course", courseKey).Str("day", day).Msg("Failed to get course")
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	d := c.FindDay(day)
	if d == nil {
		return nil, ErrDayNotFound
	}
	view := &DayView{CourseName: c.Name, Day: *d}
	if view.Day.Quizzes == nil {
		view.Day.Quizzes = []model.Question{}
	}
	return view, nil
}
