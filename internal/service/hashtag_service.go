package service

import (
	"context"
	"time"

	"storroz/internal/config"
	"storroz/internal/models"
	"storroz/internal/repository"
)

const trendingLimit = 10

type HashtagService interface {
	GetTrending(ctx context.Context) ([]models.TrendingHashtag, error)
	Search(ctx context.Context, query string) ([]models.Hashtag, error)
}

type hashtagService struct {
	hashtagRepo repository.HashtagRepository
	cfg         *config.Config
}

func NewHashtagService(hashtagRepo repository.HashtagRepository, cfg *config.Config) HashtagService {
	return &hashtagService{
		hashtagRepo: hashtagRepo,
		cfg:         cfg,
	}
}

func (s *hashtagService) GetTrending(ctx context.Context) ([]models.TrendingHashtag, error) {
	since := time.Now().Add(-s.cfg.TrendingWindow)

	return s.hashtagRepo.GetTrending(ctx, since, trendingLimit)
}

func (s *hashtagService) Search(ctx context.Context, query string) ([]models.Hashtag, error) {
	return s.hashtagRepo.Search(ctx, query)
}
