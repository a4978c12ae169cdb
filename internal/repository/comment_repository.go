package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"storroz/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (user_id, post_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp
	`

	err := r.db.QueryRowxContext(ctx, query,
		comment.UserID,
		comment.PostID,
		comment.Content,
	).Scan(&comment.ID, &comment.Timestamp)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY id`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
