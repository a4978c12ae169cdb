package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"storroz/internal/config"
	"storroz/internal/models"
	"storroz/internal/repository"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret-key",
		AccessTokenDuration:  2 * time.Hour,
		RefreshTokenDuration: 168 * time.Hour,
	}
}

func TestRegister_IssuesTokenPair(t *testing.T) {
	userRepo := new(MockUserRepository)

	// the refresh token goes into the row at creation
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "amy" && u.RefreshToken != ""
	}), "pw1234").Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 1
	})

	svc := NewAuthService(userRepo, testAuthConfig())

	user, accessToken, refreshToken, err := svc.Register(context.Background(), repository.CreateUserRequest{
		Username: "amy",
		Email:    "amy@x.com",
		Password: "pw1234",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.Equal(t, user.RefreshToken, refreshToken)

	// the stored token is the one handed out, no extra persistence round
	userRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestRegister_Conflict(t *testing.T) {
	userRepo := new(MockUserRepository)

	userRepo.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(repository.ErrConflict)

	svc := NewAuthService(userRepo, testAuthConfig())

	_, accessToken, _, err := svc.Register(context.Background(), repository.CreateUserRequest{
		Username: "amy",
		Email:    "amy@x.com",
		Password: "pw1234",
	})

	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.Empty(t, accessToken)
}
