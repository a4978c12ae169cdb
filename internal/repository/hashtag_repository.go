package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"storroz/internal/models"
)

type hashtagRepository struct {
	db *sqlx.DB
}

func NewHashtagRepository(db *sqlx.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

// GetOrCreate inserts the hashtag if it does not exist yet and returns the row.
// Hashtags are shared between posts, so the insert never conflicts fatally.
func (r *hashtagRepository) GetOrCreate(ctx context.Context, name string) (*models.Hashtag, error) {
	insertQuery := `
		INSERT INTO hashtags (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, insertQuery, name)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании хештега: %w", err)
	}

	var hashtag models.Hashtag
	err = r.db.GetContext(ctx, &hashtag, `SELECT * FROM hashtags WHERE name = $1`, name)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении хештега: %w", err)
	}

	return &hashtag, nil
}

func (r *hashtagRepository) Associate(ctx context.Context, postID, hashtagID int64) error {
	query := `
		INSERT INTO post_hashtag (post_id, hashtag_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, hashtag_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, postID, hashtagID)
	if err != nil {
		return fmt.Errorf("ошибка при привязке хештега к посту: %w", err)
	}

	return nil
}

func (r *hashtagRepository) GetTrending(ctx context.Context, since time.Time, limit int) ([]models.TrendingHashtag, error) {
	query := `
		SELECT h.name AS name, COUNT(*) AS count
		FROM hashtags h
		JOIN post_hashtag ph ON ph.hashtag_id = h.id
		JOIN posts p ON p.id = ph.post_id
		WHERE p.timestamp >= $1
		GROUP BY h.name
		ORDER BY count DESC, name
		LIMIT $2
	`

	var trending []models.TrendingHashtag
	err := r.db.SelectContext(ctx, &trending, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении популярных хештегов: %w", err)
	}

	return trending, nil
}

func (r *hashtagRepository) Search(ctx context.Context, query string) ([]models.Hashtag, error) {
	sqlQuery := `
		SELECT * FROM hashtags
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`

	var hashtags []models.Hashtag
	err := r.db.SelectContext(ctx, &hashtags, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске хештегов: %w", err)
	}

	return hashtags, nil
}
