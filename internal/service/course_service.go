package service

import (
	"context"
	"errors"
	"math"
	"time"

	"quizhub/internal/model"
	"quizhub/internal/repository"

	"github.com/rs/zerolog"
)

// Placeholders for a day created implicitly by AddQuestions.
const (
	placeholderTopic       = "No topic"
	placeholderDescription = "No description"
)

// CourseService creates and mutates courses, their days and questions.
type CourseService interface {
	// CreateCourse inserts an empty course. Fails with ErrDuplicateCourse.
	CreateCourse(ctx context.Context, key, name string) (*model.Course, error)
	// ListCourses returns every course in storage order.
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseDays returns the course name and its days sorted by day number.
	GetCourseDays(ctx context.Context, key string) (*CourseDays, error)
	// AddDay appends a new day and fails with ErrDuplicateDay if it exists.
	AddDay(ctx context.Context, p AddDayParams) (*model.Day, error)
	// PutDay creates the day or overwrites an existing one.
	PutDay(ctx context.Context, p AddDayParams) (*model.Day, error)
	// AddQuestions appends questions to a day and returns the day's new total.
	AddQuestions(ctx context.Context, courseKey, day string, questions []model.Question) (int, error)
	// NextDay proposes the identifier following the highest existing "day-N".
	NextDay(ctx context.Context, courseKey string) (*NextDay, error)
}

type AddDayParams struct {
	CourseKey   string
	Day         string
	Topic       string
	Description string
	Category    model.Category
	Questions   []model.Question
}

type CourseDays struct {
	Name string
	Days []model.Day
}

type NextDay struct {
	Day          string
	ExistingDays []int
}

// CourseServiceOption configures a CourseService.
type CourseServiceOption func(*courseService)

// WithClock replaces time.Now as the source of question IDs.
func WithClock(now func() time.Time) CourseServiceOption {
	return func(s *courseService) { s.now = now }
}

type courseService struct {
	repo   repository.CourseRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewCourseService(repo repository.CourseRepository, logger zerolog.Logger, opts ...CourseServiceOption) CourseService {
	s := &courseService{
		repo:   repo,
		now:    time.Now,
		logger: logger.With().Str("service", "CourseService").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *courseService) CreateCourse(ctx context.Context, key, name string) (*model.Course, error) {
	existing, err := s.repo.GetCourseByKey(ctx, key)
	if err != nil {
		s.logger.Error().Err(err).Str("course", key).Msg("Failed to look up course")
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCourse
	}

	c := &model.Course{Key: key, Name: name, Days: []model.Day{}}
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateCourse
		}
		s.logger.Error().Err(err).Str("course", key).Msg("Failed to create course")
		return nil, err
	}
	s.logger.Info().Str("course", key).Str("name", name).Msg("Course created")
	return c, nil
}

func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list courses")
		return nil, err
	}
	return courses, nil
}

func (s *courseService) GetCourseDays(ctx context.Context, key string) (*CourseDays, error) {
	c, err := s.repo.GetCourseByKey(ctx, key)
	if err != nil {
		s.logger.Error().Err(err).Str("course", key).Msg("Failed to get course")
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	days := append([]model.Day(nil), c.Days...)
	sortDaysByNumber(days)
	return &CourseDays{Name: c.Name, Days: days}, nil
}

func (s *courseService) AddDay(ctx context.Context, p AddDayParams) (*model.Day, error) {
	c, err := s.loadOrCreate(ctx, p.CourseKey)
	if err != nil {
		return nil, err
	}
	if c.FindDay(p.Day) != nil {
		return nil, ErrDuplicateDay
	}
	day := s.newDay(p)
	c.Days = append(c.Days, day)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info().Str("course", c.Key).Str("day", day.Day).Msg("Day added")
	return &day, nil
}

func (s *courseService) PutDay(ctx context.Context, p AddDayParams) (*model.Day, error) {
	c, err := s.loadOrCreate(ctx, p.CourseKey)
	if err != nil {
		return nil, err
	}
	day := s.newDay(p)
	if existing := c.FindDay(p.Day); existing != nil {
		*existing = day
	} else {
		c.Days = append(c.Days, day)
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info().Str("course", c.Key).Str("day", day.Day).Msg("Day stored")
	return &day, nil
}

func (s *courseService) AddQuestions(ctx context.Context, courseKey, dayID string, questions []model.Question) (int, error) {
	c, err := s.loadOrCreate(ctx, courseKey)
	if err != nil {
		return 0, err
	}
	day := c.FindDay(dayID)
	if day == nil {
		c.Days = append(c.Days, model.Day{
			Day:         dayID,
			Topic:       placeholderTopic,
			Description: placeholderDescription,
			Category:    model.CategoryBasic,
			Quizzes:     []model.Question{},
		})
		day = &c.Days[len(c.Days)-1]
	}
	day.Quizzes = append(day.Quizzes, s.stampQuestions(questions)...)
	if err := s.save(ctx, c); err != nil {
		return 0, err
	}
	s.logger.Info().Str("course", c.Key).Str("day", dayID).Int("added", len(questions)).
		Int("total", len(day.Quizzes)).Msg("Questions added")
	return len(day.Quizzes), nil
}

func (s *courseService) NextDay(ctx context.Context, courseKey string) (*NextDay, error) {
	c, err := s.repo.GetCourseByKey(ctx, courseKey)
	if err != nil {
		s.logger.Error().Err(err).Str("course", courseKey).Msg("Failed to get course")
		return nil, err
	}
	if c == nil {
		return &NextDay{Day: dayID(1), ExistingDays: []int{}}, nil
	}
	nums := dayNumbers(c.Days)
	next := 1
	if len(nums) > 0 {
		next = nums[len(nums)-1]
		// A saturated day number has no successor.
		if next < math.MaxInt {
			next++
		}
	}
	return &NextDay{Day: dayID(next), ExistingDays: nums}, nil
}

// loadOrCreate returns the stored course, or a new unsaved one named after the
// capitalized key.
func (s *courseService) loadOrCreate(ctx context.Context, key string) (*model.Course, error) {
	c, err := s.repo.GetCourseByKey(ctx, key)
	if err != nil {
		s.logger.Error().Err(err).Str("course", key).Msg("Failed to get course")
		return nil, err
	}
	if c == nil {
		s.logger.Debug().Str("course", key).Msg("Creating course on the fly")
		return &model.Course{Key: key, Name: capitalize(key), Days: []model.Day{}}, nil
	}
	return c, nil
}

func (s *courseService) save(ctx context.Context, c *model.Course) error {
	if err := s.repo.SaveCourse(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("course", c.Key).Msg("Failed to save course")
		return err
	}
	return nil
}

func (s *courseService) newDay(p AddDayParams) model.Day {
	return model.Day{
		Day:         p.Day,
		Topic:       p.Topic,
		Description: p.Description,
		Category:    p.Category.OrDefault(),
		Quizzes:     s.stampQuestions(p.Questions),
	}
}

// stampQuestions copies qs, giving each an ID of one captured instant in
// milliseconds plus its position in the batch. IDs are unique within a batch
// only; two batches in the same millisecond overlap.
func (s *courseService) stampQuestions(qs []model.Question) []model.Question {
	base := s.now().UnixMilli()
	out := make([]model.Question, len(qs))
	for i, q := range qs {
		q.ID = base + int64(i)
		// Stored questions always carry a category, unlike the raw input.
		if q.Category == "" {
			q.Category = string(model.CategoryBasic)
		}
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
