package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"storroz/internal/models"
	"storroz/internal/repository"
)

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

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, followerID, followingID int64) (*models.Follower, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follower), args.Error(1)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) GetFollowers(ctx context.Context, userID int64) ([]models.Follower, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follower), args.Error(1)
}

func (m *MockFollowRepository) GetFollowing(ctx context.Context, userID int64) ([]models.Follower, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follower), args.Error(1)
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

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, userID, postID int64) (*models.Like, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
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

type MockTablesRepository struct {
	mock.Mock
}

func (m *MockTablesRepository) CountSchemaTables() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
