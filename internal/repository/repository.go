package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"socialnet/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsernameOrEmail(ctx context.Context, login string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	VerifyPassword(ctx context.Context, login, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePrivacy(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateAvatar(ctx context.Context, userID string, avatarURL, avatarObject *string) error
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	SoftDelete(ctx context.Context, postID string) error
	GetUserPosts(ctx context.Context, userID string, limit, offset int) ([]models.Post, error)
	GetNewsFeed(ctx context.Context, limit, offset int) ([]models.Post, error)
	CountComments(ctx context.Context, postID string) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	SoftDelete(ctx context.Context, commentID string) error
	GetPostComments(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error)
	GetReplies(ctx context.Context, parentCommentID string, limit, offset int) ([]models.Comment, error)
	CountReplies(ctx context.Context, parentCommentID string) (int, error)
}

type ReactionRepository interface {
	GetReaction(ctx context.Context, postID, userID string) (*models.Reaction, error)
	AddReaction(ctx context.Context, reaction *models.Reaction) error
	UpdateReaction(ctx context.Context, reaction *models.Reaction) error
	RemoveReaction(ctx context.Context, postID, userID string) error
	GetPostReactions(ctx context.Context, postID string) ([]models.Reaction, error)
	GetRecentReactions(ctx context.Context, postID string, limit int) ([]models.Reaction, error)
	GetReactionsByType(ctx context.Context, postID string, reactionType models.ReactionType, limit int) ([]models.Reaction, error)
}

type CommentReactionRepository interface {
	GetReaction(ctx context.Context, commentID, userID string) (*models.CommentReaction, error)
	AddReaction(ctx context.Context, reaction *models.CommentReaction) error
	UpdateReaction(ctx context.Context, reaction *models.CommentReaction) error
	RemoveReaction(ctx context.Context, commentID, userID string) error
	GetCommentReactions(ctx context.Context, commentID string) ([]models.CommentReaction, error)
	GetRecentReactions(ctx context.Context, commentID string, limit int) ([]models.CommentReaction, error)
	GetReactionsByType(ctx context.Context, commentID string, reactionType models.ReactionType, limit int) ([]models.CommentReaction, error)
}

type Repository struct {
	User            UserRepository
	Post            PostRepository
	Comment         CommentRepository
	Reaction        ReactionRepository
	CommentReaction CommentReactionRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:            NewUserRepository(db),
		Post:            NewPostRepository(db),
		Comment:         NewCommentRepository(db),
		Reaction:        NewReactionRepository(db),
		CommentReaction: NewCommentReactionRepository(db),
	}
}
