package service

import (
	"context"
	"storroz/internal/config"
	"storroz/internal/repository"
)

type UserService interface {
	UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) error
	UpdatePrivacy(ctx context.Context, userID int64, privateStatus bool) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *userService) UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) error {
	// update user profile, unset fields are kept as is
	err := s.userRepo.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	return nil
}

func (s *userService) UpdatePrivacy(ctx context.Context, userID int64, privateStatus bool) error {
	err := s.userRepo.UpdatePrivacy(ctx, userID, privateStatus)
	if err != nil {
		return err
	}

	return nil
}
