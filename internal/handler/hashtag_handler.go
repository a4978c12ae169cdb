package handlers

import (
	"net/http"

	"storroz/internal/models"
)

func (h *Handlers) GetTrendingHashtags(w http.ResponseWriter, r *http.Request) {
	trending, err := h.HashtagService.GetTrending(r.Context())
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	if trending == nil {
		trending = []models.TrendingHashtag{}
	}

	WriteSuccess(w, map[string]interface{}{"trending_hashtags": trending}, http.StatusOK)
}

func (h *Handlers) SearchHashtags(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, "Параметр q обязателен для поиска", http.StatusBadRequest)
		return
	}

	hashtags, err := h.HashtagService.Search(r.Context(), query)
	if err != nil {
		WriteRepoError(w, err)
		return
	}

	if hashtags == nil {
		hashtags = []models.Hashtag{}
	}

	WriteSuccess(w, map[string]interface{}{"matching_hashtags": hashtags}, http.StatusOK)
}
