package service

import (
	"context"
	"fmt"

	"quizhub/internal/config"

	"github.com/rs/zerolog"
)

// AdminCredentials is the single shared admin login, loaded once at startup.
type AdminCredentials struct {
	Username string
	Password string
}

// LoadAdminCredentials reads the admin login from cfg. When
// cfg.AdminPasswordSecret is set the password is fetched through secrets.
func LoadAdminCredentials(ctx context.Context, cfg *config.Config, secrets SecretResolver) (AdminCredentials, error) {
	creds := AdminCredentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
	if cfg.AdminPasswordSecret == "" {
		return creds, nil
	}
	if secrets == nil {
		return AdminCredentials{}, fmt.Errorf("ADMIN_PASSWORD_SECRET is set but no secret resolver is configured")
	}
	pw, err := secrets.ResolveSecret(ctx, cfg.AdminPasswordSecret)
	if err != nil {
		return AdminCredentials{}, fmt.Errorf("resolving admin password: %w", err)
	}
	creds.Password = pw
	return creds, nil
}

// AdminService checks login attempts against the shared credential. It issues
// no token: the client keeps its own "is admin" flag and the admin routes
// trust it.
type AdminService interface {
	Login(ctx context.Context, username, password string) error
}

type adminService struct {
	creds  AdminCredentials
	logger zerolog.Logger
}

func NewAdminService(creds AdminCredentials, logger zerolog.Logger) AdminService {
	return &adminService{
		creds:  creds,
		logger: logger.With().Str("service", "AdminService").Logger(),
	}
}

func (s *adminService) Login(_ context.Context, username, password string) error {
	if username != s.creds.Username || password != s.creds.Password {
		s.logger.Warn().Str("username", username).Msg("Admin login rejected")
		return ErrInvalidCredentials
	}
	s.logger.Info().Str("username", username).Msg("Admin login accepted")
	return nil
}
