package services

import (
	"context"
	"errors"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/app/models/dto"
	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
	"github.com/campusdesk/campusdesk/internal/pkg/auth"
	"github.com/campusdesk/campusdesk/internal/pkg/logger"
)

// StaffReader is the repository surface authentication needs.
type StaffReader interface {
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
}

// AuthService authenticates dashboard staff accounts.
type AuthService struct {
	staffRepo  StaffReader
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(staffRepo StaffReader, jwtService *auth.JWTService) *AuthService {
	return &AuthService{staffRepo: staffRepo, jwtService: jwtService}
}

// Login verifies credentials and issues an access token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(staff.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(staff.ID, staff.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate access token")
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		Staff: dto.StaffResponse{
			ID:          staff.ID,
			Email:       staff.Email,
			DisplayName: staff.DisplayName,
		},
	}, nil
}
