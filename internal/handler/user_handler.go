package handlers

import (
	"encoding/json"
	"net/http"

	"storroz/internal/models"
	"storroz/internal/repository"
)

type FollowRequest struct {
	FollowerID *int64 `json:"follower_id" validate:"required"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		Bio:            user.Bio,
		PrivateStatus:  user.PrivateStatus,
		VerifiedStatus: user.VerifiedStatus,
	}
}

func (h *Handlers) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"user": newUserResponse(user)}, http.StatusOK)
}

func (h *Handlers) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	var req struct {
		Bio            *string `json:"bio"`
		ProfilePicture *string `json:"profile_picture"`
		PrivateStatus  *bool   `json:"private_status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateProfileRequest{
		UserID:         userID,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		PrivateStatus:  req.PrivateStatus,
	}

	if err := h.UserService.UpdateProfile(r.Context(), serviceReq); err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Профиль пользователя обновлен"}, http.StatusOK)
}

func (h *Handlers) UpdatePrivacy(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	var req struct {
		PrivateStatus *bool `json:"private_status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.PrivateStatus == nil {
		WriteError(w, "Отсутствует private_status", http.StatusBadRequest)
		return
	}

	if err := h.UserService.UpdatePrivacy(r.Context(), userID, *req.PrivateStatus); err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Настройки приватности обновлены"}, http.StatusOK)
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.FollowerID == nil {
		WriteError(w, "Отсутствует follower_id", http.StatusBadRequest)
		return
	}

	edge, err := h.FollowService.Follow(r.Context(), userID, *req.FollowerID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Подписка оформлена",
		"follow":  edge,
	}, http.StatusCreated)
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.FollowerID == nil {
		WriteError(w, "Отсутствует follower_id", http.StatusBadRequest)
		return
	}

	if err := h.FollowService.Unfollow(r.Context(), userID, *req.FollowerID); err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Подписка отменена"}, http.StatusOK)
}

func (h *Handlers) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	followers, err := h.FollowService.GetFollowers(r.Context(), userID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	if followers == nil {
		followers = []models.Follower{}
	}

	WriteSuccess(w, map[string]interface{}{"followers": followers}, http.StatusOK)
}

func (h *Handlers) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	following, err := h.FollowService.GetFollowing(r.Context(), userID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	if following == nil {
		following = []models.Follower{}
	}

	WriteSuccess(w, map[string]interface{}{"following": following}, http.StatusOK)
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, "Параметр q обязателен для поиска", http.StatusBadRequest)
		return
	}

	users, err := h.UserRepo.SearchUsers(r.Context(), query)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	// only the public fields go out
	results := make([]UserResponse, 0, len(users))
	for i := range users {
		results = append(results, newUserResponse(&users[i]))
	}

	WriteSuccess(w, map[string]interface{}{"matching_users": results}, http.StatusOK)
}
