package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"storroz/internal/models"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, userID, postID int64) (*models.Like, error) {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		RETURNING id, timestamp
	`

	like := models.Like{
		UserID: userID,
		PostID: postID,
	}

	err := r.db.QueryRowxContext(ctx, query, userID, postID).Scan(&like.ID, &like.Timestamp)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("лайк %w", ErrConflict)
		}
		return nil, fmt.Errorf("ошибка при создании лайка: %w", err)
	}

	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID int64) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("лайк: %w", ErrNotFound)
	}

	return nil
}
