package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialnet/cmd/app"
	"socialnet/internal/config"
	handlers "socialnet/internal/handler"
	"socialnet/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// внутри mux, чтобы метрики видели шаблон маршрута, а не сырой путь
	router.Use(middleware.MetricsMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			handlers.WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
			return
		}
		handlers.WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
	}).Methods(http.MethodGet)

	// setting up routes
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	api.HandleFunc("/profile/me", handler.GetMyProfile).Methods(http.MethodGet)
	api.HandleFunc("/profile/me", handler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/profile/me/privacy", handler.UpdatePrivacySettings).Methods(http.MethodPut)
	api.HandleFunc("/profile/me/password", handler.ChangePassword).Methods(http.MethodPut)
	api.HandleFunc("/profile/me/avatar", handler.UploadAvatar).Methods(http.MethodPost)
	api.HandleFunc("/profile/me/avatar", handler.DeleteAvatar).Methods(http.MethodDelete)
	api.HandleFunc("/profile/{id}", handler.GetUserProfile).Methods(http.MethodGet)

	api.HandleFunc("/feed", handler.GetNewsFeed).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/posts", handler.GetUserPosts).Methods(http.MethodGet)

	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/reactions", handler.AddPostReaction).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/reactions", handler.RemovePostReaction).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/reactions", handler.GetPostReactions).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/comments", handler.GetPostComments).Methods(http.MethodGet)

	api.HandleFunc("/comments/{id}", handler.GetComment).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}", handler.UpdateComment).Methods(http.MethodPut)
	api.HandleFunc("/comments/{id}", handler.DeleteComment).Methods(http.MethodDelete)
	api.HandleFunc("/comments/{id}/replies", handler.GetCommentReplies).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}/reactions", handler.AddCommentReaction).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}/reactions", handler.RemoveCommentReaction).Methods(http.MethodDelete)
	api.HandleFunc("/comments/{id}/reactions", handler.GetCommentReactions).Methods(http.MethodGet)

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
