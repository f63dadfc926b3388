package service

import (
	"context"
	"errors"
	"time"

	"quizhub/internal/model"
	"quizhub/internal/repository"

	"github.com/rs/zerolog"
)

type VisitorService interface {
	// RegisterVisit records a visit from deviceID and reports whether the
	// device was new along with the number of distinct devices seen.
	RegisterVisit(ctx context.Context, deviceID, userAgent string) (*VisitResult, error)
}

type VisitResult struct {
	IsNewVisitor  bool
	TotalVisitors int64
}

type visitorService struct {
	repo   repository.VisitorRepository
	logger zerolog.Logger
}

func NewVisitorService(repo repository.VisitorRepository, logger zerolog.Logger) VisitorService {
	return &visitorService{
		repo:   repo,
		logger: logger.With().Str("service", "VisitorService").Logger(),
	}
}

func (s *visitorService) RegisterVisit(ctx context.Context, deviceID, userAgent string) (*VisitResult, error) {
	if deviceID == "" {
		return nil, ErrMissingDeviceID
	}
	now := time.Now().UTC()

	isNew := false
	v, err := s.repo.RecordVisit(ctx, deviceID, now)
	if err != nil {
		s.logger.Error().Err(err).Str("device_id", deviceID).Msg("Failed to record visit")
		return nil, err
	}
	if v == nil {
		err := s.repo.CreateVisitor(ctx, &model.Visitor{
			DeviceID:   deviceID,
			UserAgent:  userAgent,
			FirstVisit: now,
			LastVisit:  now,
			VisitCount: 1,
		})
		switch {
		case err == nil:
			isNew = true
			s.logger.Info().Str("device_id", deviceID).Msg("New visitor registered")
		case errors.Is(err, repository.ErrDuplicateKey):
			// Another request registered the device first; count this visit.
			if _, err := s.repo.RecordVisit(ctx, deviceID, now); err != nil {
				s.logger.Error().Err(err).Str("device_id", deviceID).Msg("Failed to record visit")
				return nil, err
			}
		default:
			s.logger.Error().Err(err).Str("device_id", deviceID).Msg("Failed to create visitor")
			return nil, err
		}
	}

	total, err := s.repo.CountVisitors(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to count visitors")
		return nil, err
	}
	return &VisitResult{IsNewVisitor: isNew, TotalVisitors: total}, nil
}
