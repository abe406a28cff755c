package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
	"github.com/campusdesk/campusdesk/internal/pkg/auth"
)

type stubStaffRepo struct {
	staff map[string]*models.Staff
}

func (r *stubStaffRepo) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	staff, ok := r.staff[email]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return staff, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusdesk-test",
	})
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	repo := &stubStaffRepo{staff: map[string]*models.Staff{
		"admin@campus.edu": {ID: 1, Email: "admin@campus.edu", PasswordHash: hash, DisplayName: "Admin"},
	}}
	service := NewAuthService(repo, testJWTService())

	resp, err := service.Login(context.Background(), "admin@campus.edu", "correct horse")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)
	assert.Equal(t, "Admin", resp.Staff.DisplayName)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	repo := &stubStaffRepo{staff: map[string]*models.Staff{
		"admin@campus.edu": {ID: 1, Email: "admin@campus.edu", PasswordHash: hash},
	}}
	service := NewAuthService(repo, testJWTService())

	_, err = service.Login(context.Background(), "admin@campus.edu", "wrong")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	service := NewAuthService(&stubStaffRepo{}, testJWTService())

	_, err := service.Login(context.Background(), "nobody@campus.edu", "whatever")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
