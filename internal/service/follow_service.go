package service

import (
	"context"
	"fmt"
	"log"

	"storroz/internal/models"
	"storroz/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, followingID, followerID int64) (*models.Follower, error)
	Unfollow(ctx context.Context, followingID, followerID int64) error
	GetFollowers(ctx context.Context, userID int64) ([]models.Follower, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.Follower, error)
}

type followService struct {
	followRepo       repository.FollowRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, notificationRepo repository.NotificationRepository) FollowService {
	return &followService{
		followRepo:       followRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *followService) Follow(ctx context.Context, followingID, followerID int64) (*models.Follower, error) {
	// the followee must exist
	_, err := s.userRepo.GetUserByID(ctx, followingID)
	if err != nil {
		return nil, err
	}

	follower, err := s.userRepo.GetUserByID(ctx, followerID)
	if err != nil {
		return nil, err
	}

	edge, err := s.followRepo.Create(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		SenderID:   followerID,
		ReceiverID: followingID,
		Content:    fmt.Sprintf("%s подписался на вас", follower.Username),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("Внимание: не удалось создать уведомление о подписке: %v", err)
	}

	return edge, nil
}

func (s *followService) Unfollow(ctx context.Context, followingID, followerID int64) error {
	err := s.followRepo.Delete(ctx, followerID, followingID)
	if err != nil {
		return err
	}

	return nil
}

func (s *followService) GetFollowers(ctx context.Context, userID int64) ([]models.Follower, error) {
	_, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.followRepo.GetFollowers(ctx, userID)
}

func (s *followService) GetFollowing(ctx context.Context, userID int64) ([]models.Follower, error) {
	_, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.followRepo.GetFollowing(ctx, userID)
}
