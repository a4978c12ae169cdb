package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"storroz/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries a partial profile update: nil fields stay unchanged
type UpdateProfileRequest struct {
	UserID         int64   `json:"userId"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
	PrivateStatus  *bool   `json:"privateStatus"`
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	user.PasswordHash = string(hashedPassword)

	query := `
		INSERT INTO users (username, email, password_hash, profile_picture, bio, refresh_token, refresh_token_expiry_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err = r.db.QueryRowxContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.ProfilePicture,
		user.Bio,
		user.RefreshToken,
		user.RefreshTokenExpiryTime,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("имя пользователя или email %w", ErrConflict)
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по имени: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("неверный пароль: %w", ErrValidation)
	}

	return user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	query := `
		UPDATE users
		SET bio = COALESCE($1, bio),
		    profile_picture = COALESCE($2, profile_picture),
		    private_status = COALESCE($3, private_status)
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, req.Bio, req.ProfilePicture, req.PrivateStatus, req.UserID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %d: %w", req.UserID, ErrNotFound)
	}

	return nil
}

func (r *userRepository) UpdatePrivacy(ctx context.Context, userID int64, privateStatus bool) error {
	query := `UPDATE users SET private_status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, privateStatus, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении настроек приватности: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %d: %w", userID, ErrNotFound)
	}

	return nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении refresh token: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	var user models.User

	query := `
		SELECT * FROM users
		WHERE refresh_token = $1
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &user, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("недействительный или просроченный refresh token: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по refresh token: %w", err)
	}

	return &user, nil
}

func (r *userRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	sqlQuery := `
		SELECT * FROM users
		WHERE username ILIKE '%' || $1 || '%'
		ORDER BY username
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске пользователей: %w", err)
	}

	return users, nil
}
