package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

// CountSchemaTables counts how many of the migration tables actually exist,
// so the surface can report an incomplete migration.
func (r *tablesRepository) CountSchemaTables() (int, error) {
	var count int

	err := r.db.Get(&count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
			  AND table_name IN ('users', 'posts', 'followers', 'hashtags', 'post_hashtag', 'likes', 'comments', 'notifications')
		`)

	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте таблиц базы данных: %w", err)
	}

	return count, nil
}
