package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors of the store boundary. Handlers discriminate them
// with errors.Is and map them to HTTP statuses.
var (
	ErrValidation = errors.New("некорректные данные")
	ErrNotFound   = errors.New("не найдено")
	ErrConflict   = errors.New("уже существует")
)

// isUniqueViolation reports whether err is a PostgreSQL unique_violation (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
