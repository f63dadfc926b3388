package service

import (
	"context"
	"time"

	"quizhub/internal/model"
	"quizhub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type UserService interface {
	// Register stores a new learner. A taken email surfaces as
	// repository.ErrDuplicateKey.
	Register(ctx context.Context, name, email string) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger.With().Str("service", "UserService").Logger(),
	}
}

func (s *userService) Register(ctx context.Context, name, email string) (*model.User, error) {
	u := &model.User{
		ID:               uuid.NewString(),
		Name:             name,
		Email:            email,
		JoinedAt:         time.Now().UTC(),
		CompletedQuizzes: []model.CompletedQuiz{},
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, err
	}
	return u, nil
}
