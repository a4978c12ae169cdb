package repository

import (
	"context"
	"storroz/internal/models"
	"time"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) error
	UpdatePrivacy(ctx context.Context, userID int64, privateStatus bool) error
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID int64) (*models.Follower, error)
	Delete(ctx context.Context, followerID, followingID int64) error
	GetFollowers(ctx context.Context, userID int64) ([]models.Follower, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.Follower, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	UpdateMedia(ctx context.Context, req UpdateMediaRequest) error
	GetRecent(ctx context.Context, limit int) ([]models.Post, error)
	SearchPosts(ctx context.Context, query string) ([]models.Post, error)
}

type HashtagRepository interface {
	GetOrCreate(ctx context.Context, name string) (*models.Hashtag, error)
	Associate(ctx context.Context, postID, hashtagID int64) error
	GetTrending(ctx context.Context, since time.Time, limit int) ([]models.TrendingHashtag, error)
	Search(ctx context.Context, query string) ([]models.Hashtag, error)
}

type LikeRepository interface {
	Create(ctx context.Context, userID, postID int64) (*models.Like, error)
	Delete(ctx context.Context, userID, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByReceiverID(ctx context.Context, receiverID int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, receiverID int64) error
}

type TablesRepository interface {
	CountSchemaTables() (int, error)
}

type Repository struct {
	User         UserRepository
	Follow       FollowRepository
	Post         PostRepository
	Hashtag      HashtagRepository
	Like         LikeRepository
	Comment      CommentRepository
	Notification NotificationRepository
	Tables       TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Follow:       NewFollowRepository(db),
		Post:         NewPostRepository(db),
		Hashtag:      NewHashtagRepository(db),
		Like:         NewLikeRepository(db),
		Comment:      NewCommentRepository(db),
		Notification: NewNotificationRepository(db),
		Tables:       NewTablesRepository(db),
	}
}
