package handlers

import (
	"encoding/json"
	"net/http"

	"storroz/internal/models"
	"storroz/internal/repository"
)

const exploreLimit = 50

type CreatePostRequest struct {
	UserID   *int64  `json:"user_id" validate:"required"`
	PostType string  `json:"post_type" validate:"required,oneof=storroz image video"`
	Content  string  `json:"content" validate:"required"`
	Location *string `json:"location"`
}

type EngagementRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
}

type CommentRequest struct {
	UserID  *int64 `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreatePostRequest{
		UserID:   *req.UserID,
		PostType: req.PostType,
		Content:  req.Content,
		Location: req.Location,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Пост создан",
		"post":    post,
	}, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{"post": post}, http.StatusOK)
}

func (h *Handlers) EditPostMedia(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req struct {
		Content  *string `json:"content"`
		Location *string `json:"location"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateMediaRequest{
		PostID:   postID,
		Content:  req.Content,
		Location: req.Location,
	}

	if err := h.PostService.EditMedia(r.Context(), serviceReq); err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Медиа поста обновлено"}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req EngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.UserID == nil {
		WriteError(w, "Отсутствует user_id", http.StatusBadRequest)
		return
	}

	like, err := h.EngagementService.LikePost(r.Context(), *req.UserID, postID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Пост лайкнут",
		"like":    like,
	}, http.StatusCreated)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req EngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.UserID == nil {
		WriteError(w, "Отсутствует user_id", http.StatusBadRequest)
		return
	}

	if err := h.EngagementService.UnlikePost(r.Context(), *req.UserID, postID); err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Лайк убран"}, http.StatusOK)
}

func (h *Handlers) CommentOnPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	comment, err := h.EngagementService.CommentOnPost(r.Context(), *req.UserID, postID, req.Content)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Комментарий добавлен",
		"comment": comment,
	}, http.StatusCreated)
}

func (h *Handlers) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	comments, err := h.EngagementService.GetComments(r.Context(), postID)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	WriteSuccess(w, map[string]interface{}{"comments": comments}, http.StatusOK)
}

func (h *Handlers) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, "Параметр q обязателен для поиска", http.StatusBadRequest)
		return
	}

	posts, err := h.PostRepo.SearchPosts(r.Context(), query)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, map[string]interface{}{"matching_posts": posts}, http.StatusOK)
}

func (h *Handlers) Explore(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.Explore(r.Context(), exploreLimit)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, map[string]interface{}{"explore_content": posts}, http.StatusOK)
}
