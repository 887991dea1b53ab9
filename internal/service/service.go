package service

import (
	"socialnet/internal/config"
	"socialnet/internal/repository"
	"socialnet/internal/storage"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	Profile ProfileService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Post:    NewPostService(rep, storage, cfg),
		Comment: NewCommentService(rep, storage, cfg),
		Profile: NewProfileService(rep, storage, cfg),
	}
}
