package seed

import (
	"context"
	"fmt"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/app/repositories"
	"github.com/campusdesk/campusdesk/internal/config"
	"github.com/campusdesk/campusdesk/internal/pkg/auth"
	"github.com/campusdesk/campusdesk/internal/pkg/logger"
)

// CreateDefaultData seeds the initial admin staff account so a fresh
// deployment can be logged into. Runs only against an empty staff table.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, cfg *config.Config) error {
	count, err := repos.StaffRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check staff accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.Password == "" {
		logger.Warn().Msg("No staff accounts exist and no admin password configured, skipping seed")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Staff{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		DisplayName:  "Administrator",
	}
	if err := repos.StaffRepository.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Str("email", admin.Email).Msg("Seeded default admin account")
	return nil
}
