package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"storroz/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	UserID   int64   `json:"userId"`
	PostType string  `json:"postType"`
	Content  string  `json:"content"`
	Location *string `json:"location"`
}

// UpdateMediaRequest carries a partial content/location update: nil fields stay unchanged
type UpdateMediaRequest struct {
	PostID   int64   `json:"postId"`
	Content  *string `json:"content"`
	Location *string `json:"location"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (user_id, post_type, content, location)
        VALUES ($1, $2, $3, $4)
        RETURNING id, timestamp
    `

	err := r.db.QueryRowxContext(ctx, query,
		post.UserID,
		post.PostType,
		post.Content,
		post.Location,
	).Scan(&post.ID, &post.Timestamp)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) UpdateMedia(ctx context.Context, req UpdateMediaRequest) error {
	query := `
		UPDATE posts SET
			content = COALESCE($1, content),
			location = COALESCE($2, location)
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, req.Content, req.Location, req.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", req.PostID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) GetRecent(ctx context.Context, limit int) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        ORDER BY timestamp DESC
        LIMIT $1
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении последних постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	sqlQuery := `
		SELECT * FROM posts
		WHERE content ILIKE '%' || $1 || '%'
		ORDER BY timestamp DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске постов: %w", err)
	}

	return posts, nil
}
