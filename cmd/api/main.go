package main

import (
	"fmt"
	"log"
	"net/http"
	"storroz/cmd/app"
	"storroz/internal/config"
	handlers "storroz/internal/handler"
	"storroz/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/users/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/users/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/api/users/{user_id:[0-9]+}", handler.GetUserProfile).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{user_id:[0-9]+}", handler.UpdateUserProfile).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{user_id:[0-9]+}/privacy", handler.UpdatePrivacy).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{user_id:[0-9]+}/follow", handler.FollowUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{user_id:[0-9]+}/unfollow", handler.UnfollowUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{user_id:[0-9]+}/followers", handler.GetFollowers).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{user_id:[0-9]+}/following", handler.GetFollowing).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{post_id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{post_id:[0-9]+}/edit-media", handler.EditPostMedia).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{post_id:[0-9]+}/like", handler.LikePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{post_id:[0-9]+}/like", handler.UnlikePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{post_id:[0-9]+}/comment", handler.CommentOnPost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{post_id:[0-9]+}/comments", handler.GetPostComments).Methods(http.MethodGet)

	router.HandleFunc("/api/hashtags/trending", handler.GetTrendingHashtags).Methods(http.MethodGet)
	router.HandleFunc("/api/hashtags/search", handler.SearchHashtags).Methods(http.MethodGet)
	router.HandleFunc("/api/search/users", handler.SearchUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/search/posts", handler.SearchPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/search/hashtags", handler.SearchHashtags).Methods(http.MethodGet)
	router.HandleFunc("/api/explore", handler.Explore).Methods(http.MethodGet)

	router.HandleFunc("/api/notifications", handler.GetNotifications).Methods(http.MethodGet)
	router.HandleFunc("/api/notifications/{notification_id:[0-9]+}/read", handler.MarkNotificationRead).Methods(http.MethodPut)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
