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

const commentsFolder = "comments"

type AddCommentRequest struct {
	Content         string
	ParentCommentID *string
	MediaType       *models.MediaType
	Media           *UploadFile
}

type CommentService interface {
	AddComment(ctx context.Context, postID, userID string, req AddCommentRequest) (*CommentView, error)
	GetComment(ctx context.Context, commentID, viewerID string) (*CommentView, error)
	UpdateComment(ctx context.Context, commentID, userID, content string) (*CommentView, error)
	DeleteComment(ctx context.Context, commentID, userID string) error
	GetPostComments(ctx context.Context, postID, viewerID string, page, size int) ([]CommentView, error)
	GetCommentReplies(ctx context.Context, commentID, viewerID string, page, size int) ([]CommentView, error)
	AddReaction(ctx context.Context, commentID, userID string, reactionType models.ReactionType) (*ReactionView, error)
	RemoveReaction(ctx context.Context, commentID, userID string) error
	GetCommentReactions(ctx context.Context, commentID string, filter *models.ReactionType, limit int) ([]ReactionView, error)
}

type commentService struct {
	commentRepo  repository.CommentRepository
	postRepo     repository.PostRepository
	reactionRepo repository.CommentReactionRepository
	storage      storage.Storage
	composer     *viewComposer
	cfg          *config.Config
}

func NewCommentService(repo *repository.Repository, store storage.Storage, cfg *config.Config) CommentService {
	return &commentService{
		commentRepo:  repo.Comment,
		postRepo:     repo.Post,
		reactionRepo: repo.CommentReaction,
		storage:      store,
		composer:     newViewComposer(repo),
		cfg:          cfg,
	}
}

func (s *commentService) AddComment(ctx context.Context, postID, userID string, req AddCommentRequest) (*CommentView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" && req.Media == nil {
		return nil, NewValidationError("Комментарий должен содержать текст или медиафайл")
	}
	if req.Media != nil && (req.MediaType == nil || !req.MediaType.Valid()) {
		return nil, NewValidationError("Недопустимый тип медиафайла")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, mapNotFound(err, "Пост не найден")
	}

	// ответ обязан ссылаться на живой комментарий того же поста
	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentCommentID)
		if err != nil {
			return nil, mapNotFound(err, "Родительский комментарий не найден")
		}
		if parent.PostID != postID {
			return nil, NewValidationError("Родительский комментарий относится к другому посту")
		}
	}

	comment := &models.Comment{
		PostID:          postID,
		UserID:          userID,
		ParentCommentID: req.ParentCommentID,
		Content:         content,
	}

	if req.Media != nil {
		objectName, url, err := s.storage.Upload(ctx, commentsFolder, req.Media.FileName, req.Media.Reader, req.Media.Size)
		if err != nil {
			return nil, err
		}
		comment.MediaType = req.MediaType
		comment.MediaObject = &objectName
		comment.MediaURL = &url
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.composer.CommentView(ctx, comment, userID, false)
}

func (s *commentService) GetComment(ctx context.Context, commentID, viewerID string) (*CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, mapNotFound(err, "Комментарий не найден")
	}
	return s.composer.CommentView(ctx, comment, viewerID, !comment.IsReply())
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, userID, content string) (*CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, mapNotFound(err, "Комментарий не найден")
	}
	if comment.UserID != userID {
		return nil, NewError(ErrForbidden, "Можно редактировать только свои комментарии")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("Текст комментария не может быть пустым")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	updated, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return s.composer.CommentView(ctx, updated, userID, false)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return mapNotFound(err, "Комментарий не найден")
	}
	if comment.UserID != userID {
		return NewError(ErrForbidden, "Можно удалять только свои комментарии")
	}

	if comment.MediaObject != nil {
		if err := s.storage.Delete(ctx, *comment.MediaObject); err != nil {
			log.Printf("не удалось удалить медиа комментария %s: %v", commentID, err)
		}
	}

	return s.commentRepo.SoftDelete(ctx, commentID)
}

func (s *commentService) GetPostComments(ctx context.Context, postID, viewerID string, page, size int) ([]CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, mapNotFound(err, "Пост не найден")
	}

	limit, offset := normalizePage(page, size, defaultPageSize)
	comments, err := s.commentRepo.GetPostComments(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.composer.CommentViews(ctx, comments, viewerID, true)
}

func (s *commentService) GetCommentReplies(ctx context.Context, commentID, viewerID string, page, size int) ([]CommentView, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, mapNotFound(err, "Комментарий не найден")
	}

	limit, offset := normalizePage(page, size, defaultRepliesPageSize)
	replies, err := s.commentRepo.GetReplies(ctx, commentID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.composer.CommentViews(ctx, replies, viewerID, false)
}

// AddReaction работает так же, как реакции на посты: повтор того же типа
// снимает реакцию, другой тип заменяет её.
func (s *commentService) AddReaction(ctx context.Context, commentID, userID string, reactionType models.ReactionType) (*ReactionView, error) {
	if !reactionType.Valid() {
		return nil, NewValidationError("Недопустимый тип реакции")
	}

	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, mapNotFound(err, "Комментарий не найден")
	}

	existing, err := s.reactionRepo.GetReaction(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case existing == nil:
		reaction := &models.CommentReaction{CommentID: commentID, UserID: userID, Type: reactionType}
		if err := s.reactionRepo.AddReaction(ctx, reaction); err != nil {
			return nil, err
		}
		return s.composer.CommentReactionView(ctx, reaction)
	case existing.Type == reactionType:
		if err := s.reactionRepo.RemoveReaction(ctx, commentID, userID); err != nil {
			return nil, err
		}
		return nil, nil
	default:
		existing.Type = reactionType
		if err := s.reactionRepo.UpdateReaction(ctx, existing); err != nil {
			return nil, err
		}
		return s.composer.CommentReactionView(ctx, existing)
	}
}

func (s *commentService) RemoveReaction(ctx context.Context, commentID, userID string) error {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return mapNotFound(err, "Комментарий не найден")
	}
	if err := s.reactionRepo.RemoveReaction(ctx, commentID, userID); err != nil {
		return mapNotFound(err, "Реакция не найдена")
	}
	return nil
}

func (s *commentService) GetCommentReactions(ctx context.Context, commentID string, filter *models.ReactionType, limit int) ([]ReactionView, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, mapNotFound(err, "Комментарий не найден")
	}

	if limit < 1 || limit > 100 {
		limit = recentReactionsLimit
	}

	var (
		reactions []models.CommentReaction
		err       error
	)
	if filter != nil {
		if !filter.Valid() {
			return nil, NewValidationError("Недопустимый тип реакции")
		}
		reactions, err = s.reactionRepo.GetReactionsByType(ctx, commentID, *filter, limit)
	} else {
		reactions, err = s.reactionRepo.GetRecentReactions(ctx, commentID, limit)
	}
	if err != nil {
		return nil, err
	}
	return s.composer.CommentReactionViews(ctx, reactions)
}
