package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"storroz/internal/repository"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteRepoError maps the store sentinels to HTTP statuses
func WriteRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, err.Error(), http.StatusConflict)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
