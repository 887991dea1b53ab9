package service

import (
	"context"
	"log"
	"strings"

	"socialnet/internal/config"
	"socialnet/internal/models"
	"socialnet/internal/repository"
	"socialnet/internal/storage"
)

const (
	postsFolder   = "posts"
	avatarsFolder = "avatars"
)

type CreatePostRequest struct {
	Content string
	Privacy models.PostPrivacy
	Image   *UploadFile
	Video   *UploadFile
}

type UpdatePostRequest struct {
	Content string
	Privacy models.PostPrivacy
}

type PostService interface {
	CreatePost(ctx context.Context, userID string, req CreatePostRequest) (*PostView, error)
	GetPost(ctx context.Context, postID, viewerID string) (*PostDetailView, error)
	UpdatePost(ctx context.Context, postID, userID string, req UpdatePostRequest) (*PostView, error)
	DeletePost(ctx context.Context, postID, userID string) error
	GetUserPosts(ctx context.Context, targetUserID, viewerID string, page, size int) ([]PostView, error)
	GetNewsFeed(ctx context.Context, viewerID string, page, size int) ([]PostView, error)
	AddReaction(ctx context.Context, postID, userID string, reactionType models.ReactionType) (*ReactionView, error)
	RemoveReaction(ctx context.Context, postID, userID string) error
	GetPostReactions(ctx context.Context, postID string, filter *models.ReactionType, limit int) ([]ReactionView, error)
}

type postService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	reactionRepo repository.ReactionRepository
	storage      storage.Storage
	composer     *viewComposer
	cfg          *config.Config
}

func NewPostService(repo *repository.Repository, store storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:     repo.Post,
		userRepo:     repo.User,
		reactionRepo: repo.Reaction,
		storage:      store,
		composer:     newViewComposer(repo),
		cfg:          cfg,
	}
}

// mapNotFound переводит ошибку "не найден" из репозитория в сервисную
// ошибку с кодом ErrNotFound, остальные ошибки проходят без изменений.
func mapNotFound(err error, message string) error {
	if strings.Contains(err.Error(), "не найден") {
		return NewError(ErrNotFound, message)
	}
	return err
}

func normalizePage(page, size, defaultSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = defaultSize
	}
	return size, (page - 1) * size
}

func (s *postService) CreatePost(ctx context.Context, userID string, req CreatePostRequest) (*PostView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" && req.Image == nil && req.Video == nil {
		return nil, NewValidationError("Пост должен содержать текст или медиафайл")
	}
	if !req.Privacy.Valid() {
		return nil, NewValidationError("Недопустимый уровень приватности")
	}

	post := &models.Post{
		UserID:  userID,
		Content: content,
		Privacy: req.Privacy,
	}

	if req.Image != nil {
		objectName, url, err := s.storage.Upload(ctx, postsFolder, req.Image.FileName, req.Image.Reader, req.Image.Size)
		if err != nil {
			return nil, err
		}
		post.ImageObject = &objectName
		post.ImageURL = &url
	}

	if req.Video != nil {
		objectName, url, err := s.storage.Upload(ctx, postsFolder, req.Video.FileName, req.Video.Reader, req.Video.Size)
		if err != nil {
			// откатываем уже загруженное изображение
			if post.ImageObject != nil {
				if delErr := s.storage.Delete(ctx, *post.ImageObject); delErr != nil {
					log.Printf("не удалось удалить изображение после сбоя загрузки видео: %v", delErr)
				}
			}
			return nil, err
		}
		post.VideoObject = &objectName
		post.VideoURL = &url
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.composer.PostView(ctx, post, userID)
}

func (s *postService) GetPost(ctx context.Context, postID, viewerID string) (*PostDetailView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, mapNotFound(err, "Пост не найден")
	}
	return s.composer.PostDetailView(ctx, post, viewerID, defaultPageSize, 0)
}

func (s *postService) UpdatePost(ctx context.Context, postID, userID string, req UpdatePostRequest) (*PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, mapNotFound(err, "Пост не найден")
	}
	if post.UserID != userID {
		return nil, NewError(ErrForbidden, "Можно редактировать только свои посты")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" && post.ImageURL == nil && post.VideoURL == nil {
		return nil, NewValidationError("Пост должен содержать текст или медиафайл")
	}
	if !req.Privacy.Valid() {
		return nil, NewValidationError("Недопустимый уровень приватности")
	}

	post.Content = content
	post.Privacy = req.Privacy
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.composer.PostView(ctx, updated, userID)
}

func (s *postService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return mapNotFound(err, "Пост не найден")
	}
	if post.UserID != userID {
		return NewError(ErrForbidden, "Можно удалять только свои посты")
	}

	// сбой хранилища не блокирует удаление поста
	if post.ImageObject != nil {
		if err := s.storage.Delete(ctx, *post.ImageObject); err != nil {
			log.Printf("не удалось удалить изображение поста %s: %v", postID, err)
		}
	}
	if post.VideoObject != nil {
		if err := s.storage.Delete(ctx, *post.VideoObject); err != nil {
			log.Printf("не удалось удалить видео поста %s: %v", postID, err)
		}
	}

	return s.postRepo.SoftDelete(ctx, postID)
}

func (s *postService) GetUserPosts(ctx context.Context, targetUserID, viewerID string, page, size int) ([]PostView, error) {
	if _, err := s.userRepo.GetUserByID(ctx, targetUserID); err != nil {
		return nil, mapNotFound(err, "Пользователь не найден")
	}

	limit, offset := normalizePage(page, size, defaultPageSize)
	posts, err := s.postRepo.GetUserPosts(ctx, targetUserID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.composer.PostViews(ctx, posts, viewerID)
}

func (s *postService) GetNewsFeed(ctx context.Context, viewerID string, page, size int) ([]PostView, error) {
	limit, offset := normalizePage(page, size, defaultPageSize)
	posts, err := s.postRepo.GetNewsFeed(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.composer.PostViews(ctx, posts, viewerID)
}

// AddReaction переключает реакцию пользователя: повторная реакция того же
// типа снимает её (возвращается nil), другой тип заменяет текущую.
func (s *postService) AddReaction(ctx context.Context, postID, userID string, reactionType models.ReactionType) (*ReactionView, error) {
	if !reactionType.Valid() {
		return nil, NewValidationError("Недопустимый тип реакции")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, mapNotFound(err, "Пост не найден")
	}

	existing, err := s.reactionRepo.GetReaction(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case existing == nil:
		reaction := &models.Reaction{PostID: postID, UserID: userID, Type: reactionType}
		if err := s.reactionRepo.AddReaction(ctx, reaction); err != nil {
			return nil, err
		}
		return s.composer.PostReactionView(ctx, reaction)
	case existing.Type == reactionType:
		if err := s.reactionRepo.RemoveReaction(ctx, postID, userID); err != nil {
			return nil, err
		}
		return nil, nil
	default:
		existing.Type = reactionType
		if err := s.reactionRepo.UpdateReaction(ctx, existing); err != nil {
			return nil, err
		}
		return s.composer.PostReactionView(ctx, existing)
	}
}

func (s *postService) RemoveReaction(ctx context.Context, postID, userID string) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return mapNotFound(err, "Пост не найден")
	}
	if err := s.reactionRepo.RemoveReaction(ctx, postID, userID); err != nil {
		return mapNotFound(err, "Реакция не найдена")
	}
	return nil
}

func (s *postService) GetPostReactions(ctx context.Context, postID string, filter *models.ReactionType, limit int) ([]ReactionView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, mapNotFound(err, "Пост не найден")
	}

	if limit < 1 || limit > 100 {
		limit = recentReactionsLimit
	}

	var (
		reactions []models.Reaction
		err       error
	)
	if filter != nil {
		if !filter.Valid() {
			return nil, NewValidationError("Недопустимый тип реакции")
		}
		reactions, err = s.reactionRepo.GetReactionsByType(ctx, postID, *filter, limit)
	} else {
		reactions, err = s.reactionRepo.GetRecentReactions(ctx, postID, limit)
	}
	if err != nil {
		return nil, err
	}
	return s.composer.PostReactionViews(ctx, reactions)
}
