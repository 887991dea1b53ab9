package handlers

import (
	"github.com/go-playground/validator/v10"

	"socialnet/internal/config"
	"socialnet/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	ProfileService service.ProfileService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PostService:    service.Post,
		CommentService: service.Comment,
		ProfileService: service.Profile,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
