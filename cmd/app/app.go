package app

import (
	"log"

	"socialnet/internal/config"
	"socialnet/internal/database"
	"socialnet/internal/repository"
	"socialnet/internal/service"
	"socialnet/internal/storage"
)

// App поднимает зависимости сервера: PostgreSQL со схемой из migrations/,
// бакет MinIO под медиа и собранный поверх них сервисный слой.
// Без БД или хранилища сервер не стартует.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("БД недоступна, запуск прерван: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Хранилище медиа недоступно, запуск прерван: %v", err)
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
