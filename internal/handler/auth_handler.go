package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"unicode/utf8"

	"storroz/internal/repository"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	Bio            string `json:"bio"`
	PrivateStatus  bool   `json:"privateStatus"`
	VerifiedStatus bool   `json:"verifiedStatus"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// username verification
	if req.Username == "" {
		WriteError(w, "Имя пользователя обязательно", http.StatusBadRequest)
		return
	}

	// email verification
	patternEmail := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, err := regexp.MatchString(patternEmail, req.Email)
	if err != nil || !matched {
		WriteError(w, "Неверный формат email", http.StatusBadRequest)
		return
	}

	// password verification
	if utf8.RuneCountInString(req.Password) < 6 {
		WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// creating a form to create user
	serviceReq := repository.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	// registering a user in the service, the token pair comes back with it
	user, accessToken, refreshToken, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			WriteError(w, "Имя пользователя или email уже существует", http.StatusConflict)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// forming the response
	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         newUserResponse(user),
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// logging
	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// a missing user and a wrong password look the same to the caller
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrValidation) {
			WriteError(w, "Неверное имя пользователя или пароль", http.StatusUnauthorized)
		} else {
			WriteError(w, "Ошибка при входе", http.StatusInternalServerError)
		}
		return
	}

	// forming the response
	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         newUserResponse(user),
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// token missing
	if req.RefreshToken == "" {
		WriteError(w, "Отсуствует refreshToken", http.StatusBadRequest)
		return
	}

	// update accessToken and refreshToken
	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		WriteError(w, "Refresh Token истек или недействителен", http.StatusUnauthorized)
		return
	}

	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         newUserResponse(user),
	}

	WriteSuccess(w, response, http.StatusOK)
}
