package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"storroz/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followingID int64) (*models.Follower, error) {
	if followerID == followingID {
		return nil, fmt.Errorf("нельзя подписаться на самого себя: %w", ErrValidation)
	}

	query := `
		INSERT INTO followers (follower_id, following_id)
		VALUES ($1, $2)
		RETURNING id, timestamp
	`

	edge := models.Follower{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	err := r.db.QueryRowxContext(ctx, query, followerID, followingID).Scan(&edge.ID, &edge.Timestamp)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("подписка %w", ErrConflict)
		}
		return nil, fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return &edge, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	query := `DELETE FROM followers WHERE follower_id = $1 AND following_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("подписка: %w", ErrNotFound)
	}

	return nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID int64) ([]models.Follower, error) {
	query := `SELECT * FROM followers WHERE following_id = $1 ORDER BY id`

	var followers []models.Follower
	err := r.db.SelectContext(ctx, &followers, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписчиков: %w", err)
	}

	return followers, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID int64) ([]models.Follower, error) {
	query := `SELECT * FROM followers WHERE follower_id = $1 ORDER BY id`

	var following []models.Follower
	err := r.db.SelectContext(ctx, &following, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return following, nil
}
