package service

import (
	"context"
	"math"

	"quizhub/internal/model"
	"quizhub/internal/repository"

	"github.com/rs/zerolog"
)

// completeCourseDays is the day count at which a course shows as 100% done.
const completeCourseDays = 30

type StatsService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	CoursesProgress(ctx context.Context) ([]CourseProgress, error)
	// PublicStats is the landing-page summary; its user count is the number of
	// distinct visitor devices rather than registered users.
	PublicStats(ctx context.Context) (*PublicStats, error)
}

type DashboardStats struct {
	TotalCourses   int
	StartedCourses int
	TotalDays      int
	TotalQuestions int
	TotalUsers     int64
}

type PublicStats struct {
	TotalCourses   int
	StartedCourses int
	TotalDays      int
	TotalVisitors  int64
}

type CourseProgress struct {
	Name            string
	Key             string
	DayCount        int
	ProgressPercent float64
	Icon            string
	Color           string
}

type statsService struct {
	courses  repository.CourseRepository
	users    repository.UserRepository
	visitors repository.VisitorRepository
	logger   zerolog.Logger
}

func NewStatsService(courses repository.CourseRepository, users repository.UserRepository, visitors repository.VisitorRepository, logger zerolog.Logger) StatsService {
	return &statsService{
		courses:  courses,
		users:    users,
		visitors: visitors,
		logger:   logger.With().Str("service", "StatsService").Logger(),
	}
}

func (s *statsService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list courses for stats")
		return nil, err
	}
	users, err := s.users.CountUsers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to count users")
		return nil, err
	}

	stats := &DashboardStats{TotalCourses: len(courses), TotalUsers: users}
	for i := range courses {
		stats.TotalDays += len(courses[i].Days)
		if len(courses[i].Days) > 0 {
			stats.StartedCourses++
		}
		stats.TotalQuestions += courses[i].QuestionCount()
	}
	return stats, nil
}

func (s *statsService) CoursesProgress(ctx context.Context) ([]CourseProgress, error) {
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list courses for progress")
		return nil, err
	}
	out := make([]CourseProgress, 0, len(courses))
	for _, c := range courses {
		out = append(out, progressOf(c))
	}
	return out, nil
}

func (s *statsService) PublicStats(ctx context.Context) (*PublicStats, error) {
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list courses for public stats")
		return nil, err
	}
	visitors, err := s.visitors.CountVisitors(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to count visitors")
		return nil, err
	}
	stats := &PublicStats{TotalCourses: len(courses), TotalVisitors: visitors}
	for _, c := range courses {
		stats.TotalDays += len(c.Days)
		if len(c.Days) > 0 {
			stats.StartedCourses++
		}
	}
	return stats, nil
}

func progressOf(c model.Course) CourseProgress {
	days := len(c.Days)
	style := styleFor(c.Key)
	return CourseProgress{
		Name:            c.Name,
		Key:             c.Key,
		DayCount:        days,
		ProgressPercent: math.Min(float64(days)/completeCourseDays*100, 100),
		Icon:            style.icon,
		Color:           style.color,
	}
}
