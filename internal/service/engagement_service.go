package service

import (
	"context"
	"fmt"
	"log"

	"storroz/internal/models"
	"storroz/internal/repository"
)

type EngagementService interface {
	LikePost(ctx context.Context, userID, postID int64) (*models.Like, error)
	UnlikePost(ctx context.Context, userID, postID int64) error
	CommentOnPost(ctx context.Context, userID, postID int64, content string) (*models.Comment, error)
	GetComments(ctx context.Context, postID int64) ([]models.Comment, error)
}

type engagementService struct {
	likeRepo         repository.LikeRepository
	commentRepo      repository.CommentRepository
	postRepo         repository.PostRepository
	notificationRepo repository.NotificationRepository
}

func NewEngagementService(likeRepo repository.LikeRepository, commentRepo repository.CommentRepository, postRepo repository.PostRepository, notificationRepo repository.NotificationRepository) EngagementService {
	return &engagementService{
		likeRepo:         likeRepo,
		commentRepo:      commentRepo,
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *engagementService) LikePost(ctx context.Context, userID, postID int64) (*models.Like, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	like, err := s.likeRepo.Create(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	s.notifyPostOwner(ctx, post, userID, "Ваш пост понравился пользователю")

	return like, nil
}

func (s *engagementService) UnlikePost(ctx context.Context, userID, postID int64) error {
	_, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	return s.likeRepo.Delete(ctx, userID, postID)
}

func (s *engagementService) CommentOnPost(ctx context.Context, userID, postID int64, content string) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.notifyPostOwner(ctx, post, userID, "Ваш пост прокомментировал пользователь")

	return comment, nil
}

func (s *engagementService) GetComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	_, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return s.commentRepo.GetByPostID(ctx, postID)
}

// notifyPostOwner creates an engagement notification, except for self-engagement
func (s *engagementService) notifyPostOwner(ctx context.Context, post *models.Post, senderID int64, message string) {
	if post.UserID == senderID {
		return
	}

	notification := &models.Notification{
		SenderID:   senderID,
		ReceiverID: post.UserID,
		PostID:     &post.ID,
		Content:    fmt.Sprintf("%s %d", message, senderID),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("Внимание: не удалось создать уведомление: %v", err)
	}
}
