package models

import (
	"time"
)

// Post types: Storroz is a short text post, image and video carry a media URL in content
const (
	PostTypeStorroz = "storroz"
	PostTypeImage   = "image"
	PostTypeVideo   = "video"
)

type User struct {
	ID                     int64     `json:"id" db:"id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	ProfilePicture         string    `json:"profilePicture" db:"profile_picture"`
	Bio                    string    `json:"bio" db:"bio"`
	PrivateStatus          bool      `json:"privateStatus" db:"private_status"`
	VerifiedStatus         bool      `json:"verifiedStatus" db:"verified_status"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostType  string    `json:"postType" db:"post_type"`
	Content   string    `json:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Location  *string   `json:"location" db:"location"`
}

type Follower struct {
	ID          int64     `json:"id" db:"id"`
	FollowerID  int64     `json:"followerId" db:"follower_id"`
	FollowingID int64     `json:"followingId" db:"following_id"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

type Hashtag struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// TrendingHashtag is a hashtag with its usage count over the trending window
type TrendingHashtag struct {
	Name  string `json:"name" db:"name"`
	Count int64  `json:"count" db:"count"`
}

type Like struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type Comment struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	Content   string    `json:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type Notification struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	PostID     *int64    `json:"postId" db:"post_id"`
	Content    string    `json:"content" db:"content"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	IsRead     bool      `json:"isRead" db:"is_read"`
}
