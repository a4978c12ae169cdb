package service

import (
	"context"
	"log"
	"regexp"
	"strings"

	"storroz/internal/models"
	"storroz/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	EditMedia(ctx context.Context, req repository.UpdateMediaRequest) error
	Explore(ctx context.Context, limit int) ([]models.Post, error)
}

type postService struct {
	postRepo    repository.PostRepository
	hashtagRepo repository.HashtagRepository
}

var hashtagPattern = regexp.MustCompile(`#([\p{L}\d_]+)`)

func NewPostService(postRepo repository.PostRepository, hashtagRepo repository.HashtagRepository) PostService {
	return &postService{
		postRepo:    postRepo,
		hashtagRepo: hashtagRepo,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		UserID:   req.UserID,
		PostType: req.PostType,
		Content:  req.Content,
		Location: req.Location,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	// associate the #hashtags found in the content with the post
	for _, name := range extractHashtags(post.Content) {
		hashtag, err := p.hashtagRepo.GetOrCreate(ctx, name)
		if err != nil {
			log.Printf("Внимание: не удалось сохранить хештег %s: %v", name, err)
			continue
		}

		if err := p.hashtagRepo.Associate(ctx, post.ID, hashtag.ID); err != nil {
			log.Printf("Внимание: не удалось привязать хештег %s: %v", name, err)
		}
	}

	return post, nil
}

func (p *postService) EditMedia(ctx context.Context, req repository.UpdateMediaRequest) error {
	err := p.postRepo.UpdateMedia(ctx, req)
	if err != nil {
		return err
	}

	// the content may carry new hashtags after the edit
	if req.Content != nil {
		for _, name := range extractHashtags(*req.Content) {
			hashtag, err := p.hashtagRepo.GetOrCreate(ctx, name)
			if err != nil {
				log.Printf("Внимание: не удалось сохранить хештег %s: %v", name, err)
				continue
			}

			if err := p.hashtagRepo.Associate(ctx, req.PostID, hashtag.ID); err != nil {
				log.Printf("Внимание: не удалось привязать хештег %s: %v", name, err)
			}
		}
	}

	return nil
}

func (p *postService) Explore(ctx context.Context, limit int) ([]models.Post, error) {
	return p.postRepo.GetRecent(ctx, limit)
}

// extractHashtags returns the lowercased, deduplicated #tags of the content
func extractHashtags(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool)
	var names []string
	for _, match := range matches {
		name := strings.ToLower(match[1])
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}
