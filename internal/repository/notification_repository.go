package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"storroz/internal/models"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (sender_id, receiver_id, post_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp
	`

	err := r.db.QueryRowxContext(ctx, query,
		notification.SenderID,
		notification.ReceiverID,
		notification.PostID,
		notification.Content,
	).Scan(&notification.ID, &notification.Timestamp)
	if err != nil {
		return fmt.Errorf("ошибка при создании уведомления: %w", err)
	}

	return nil
}

func (r *notificationRepository) GetByReceiverID(ctx context.Context, receiverID int64) ([]models.Notification, error) {
	query := `SELECT * FROM notifications WHERE receiver_id = $1 ORDER BY id DESC`

	var notifications []models.Notification
	err := r.db.SelectContext(ctx, &notifications, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении уведомлений: %w", err)
	}

	return notifications, nil
}

// MarkRead flips is_read only when the notification belongs to receiverID,
// so a foreign notification looks exactly like a missing one.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, receiverID int64) error {
	query := `
		UPDATE notifications SET
			is_read = TRUE
		WHERE id = $1 AND receiver_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, notificationID, receiverID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении уведомления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("уведомление с ID %d: %w", notificationID, ErrNotFound)
	}

	return nil
}
