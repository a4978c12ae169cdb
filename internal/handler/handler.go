package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"storroz/internal/config"
	"storroz/internal/repository"
	"storroz/internal/service"
)

type Handlers struct {
	AuthService       service.AuthService
	UserService       service.UserService
	UserRepo          repository.UserRepository
	FollowService     service.FollowService
	PostService       service.PostService
	PostRepo          repository.PostRepository
	EngagementService service.EngagementService
	HashtagService    service.HashtagService
	NotificationRepo  repository.NotificationRepository
	TablesRepo        repository.TablesRepository
	TablesService     service.TablesService
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:       service.Auth,
		UserService:       service.User,
		UserRepo:          repo.User,
		FollowService:     service.Follow,
		PostService:       service.Post,
		PostRepo:          repo.Post,
		EngagementService: service.Engagement,
		HashtagService:    service.Hashtag,
		NotificationRepo:  repo.Notification,
		TablesRepo:        repo.Tables,
		TablesService:     service.Tables,
		Cfg:               config,
		Validate:          validator.New(),
	}
}

// pathID extracts an integer path variable from the request
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"message": "Storroz API"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
