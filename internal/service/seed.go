package service

import (
	"context"
	"errors"
	"fmt"

	"quizhub/internal/model"
	"quizhub/internal/repository"

	"github.com/rs/zerolog"
)

// DefaultCourses is the catalogue inserted into an empty store.
func DefaultCourses() []model.Course {
	return []model.Course{
		{
			Key:  "html",
			Name: "HTML",
			Days: []model.Day{{
				Day:         "day-1",
				Topic:       "HTML Basics",
				Description: "Learn fundamental HTML tags and structure",
				Category:    model.CategoryBasic,
				Quizzes: []model.Question{{
					ID:       1731417600000,
					Question: "What does HTML stand for?",
					Options: []string{
						"Hyper Text Markup Language",
						"High Tech Modern Language",
						"Hyper Transfer Markup Language",
						"Home Tool Markup Language",
					},
					Answer:      0,
					Category:    string(model.CategoryBasic),
					Explanation: "HTML stands for Hyper Text Markup Language...",
				}},
			}},
		},
		{
			Key:  "css",
			Name: "CSS",
			Days: []model.Day{{
				Day:         "day-1",
				Topic:       "CSS Basics",
				Description: "Learn fundamental CSS properties and selectors",
				Category:    model.CategoryBasic,
				Quizzes:     []model.Question{},
			}},
		},
	}
}

// SeedDefaults inserts DefaultCourses when the store holds no courses.
func SeedDefaults(ctx context.Context, repo repository.CourseRepository, logger zerolog.Logger) error {
	n, err := repo.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("counting courses before seeding: %w", err)
	}
	if n > 0 {
		logger.Debug().Int64("courses", n).Msg("Store already has courses, skipping seed")
		return nil
	}
	for _, c := range DefaultCourses() {
		c := c
		if err := repo.CreateCourse(ctx, &c); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				continue
			}
			return fmt.Errorf("seeding course %s: %w", c.Key, err)
		}
	}
	logger.Info().Msg("Default courses created")
	return nil
}
