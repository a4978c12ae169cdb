package test

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"storroz/internal/models"
	"storroz/internal/repository"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserService) UpdatePrivacy(ctx context.Context, userID int64, privateStatus bool) error {
	args := m.Called(ctx, userID, privateStatus)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePrivacy(ctx context.Context, userID int64, privateStatus bool) error {
	args := m.Called(ctx, userID, privateStatus)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followingID, followerID int64) (*models.Follower, error) {
	args := m.Called(ctx, followingID, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follower), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followingID, followerID int64) error {
	args := m.Called(ctx, followingID, followerID)
	return args.Error(0)
}

func (m *MockFollowService) GetFollowers(ctx context.Context, userID int64) ([]models.Follower, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follower), args.Error(1)
}

func (m *MockFollowService) GetFollowing(ctx context.Context, userID int64) ([]models.Follower, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follower), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) EditMedia(ctx context.Context, req repository.UpdateMediaRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPostService) Explore(ctx context.Context, limit int) ([]models.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) UpdateMedia(ctx context.Context, req repository.UpdateMediaRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPostRepository) GetRecent(ctx context.Context, limit int) ([]models.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) LikePost(ctx context.Context, userID, postID int64) (*models.Like, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockEngagementService) UnlikePost(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockEngagementService) CommentOnPost(ctx context.Context, userID, postID int64, content string) (*models.Comment, error) {
	args := m.Called(ctx, userID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockEngagementService) GetComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByReceiverID(ctx context.Context, receiverID int64) ([]models.Notification, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID, receiverID int64) error {
	args := m.Called(ctx, notificationID, receiverID)
	return args.Error(0)
}
