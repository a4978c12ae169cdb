package service

import (
	"storroz/internal/config"
	"storroz/internal/repository"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Follow     FollowService
	Post       PostService
	Engagement EngagementService
	Hashtag    HashtagService
	Tables     TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth:       NewAuthService(rep.User, cfg),
		User:       NewUserService(rep.User, cfg),
		Follow:     NewFollowService(rep.Follow, rep.User, rep.Notification),
		Post:       NewPostService(rep.Post, rep.Hashtag),
		Engagement: NewEngagementService(rep.Like, rep.Comment, rep.Post, rep.Notification),
		Hashtag:    NewHashtagService(rep.Hashtag, cfg),
		Tables:     NewTablesService(rep.Tables),
	}
}
