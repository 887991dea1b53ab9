package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"socialnet/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments
		(comment_id, post_id, user_id, parent_comment_id, content, media_type, media_url,
			media_object, is_deleted, created_at, updated_at)
		VALUES
		(:comment_id, :post_id, :user_id, :parent_comment_id, :content, :media_type, :media_url,
			:media_object, :is_deleted, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	query := `
		SELECT * FROM comments
		WHERE comment_id = $1 AND is_deleted = FALSE
	`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с ID %s не найден", commentID)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	comment.UpdatedAt = time.Now()

	query := `
		UPDATE comments SET
			content = :content,
			updated_at = :updated_at
		WHERE comment_id = :comment_id AND is_deleted = FALSE
	`

	result, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("комментарий не найден")
	}

	return nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, commentID string) error {
	query := `
		UPDATE comments SET
			is_deleted = TRUE,
			updated_at = CURRENT_TIMESTAMP
		WHERE comment_id = $1 AND is_deleted = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("комментарий не найден")
	}

	return nil
}

// GetPostComments возвращает страницу верхнеуровневых комментариев поста, старые первыми
func (r *commentRepository) GetPostComments(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error) {
	query := `
		SELECT * FROM comments
		WHERE post_id = $1 AND parent_comment_id IS NULL AND is_deleted = FALSE
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) GetReplies(ctx context.Context, parentCommentID string, limit, offset int) ([]models.Comment, error) {
	query := `
		SELECT * FROM comments
		WHERE parent_comment_id = $1 AND is_deleted = FALSE
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`

	var replies []models.Comment
	err := r.db.SelectContext(ctx, &replies, query, parentCommentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ответов: %w", err)
	}

	return replies, nil
}

// CountReplies считает только неудаленные ответы
func (r *commentRepository) CountReplies(ctx context.Context, parentCommentID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM comments
		WHERE parent_comment_id = $1 AND is_deleted = FALSE
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, parentCommentID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете ответов: %w", err)
	}

	return count, nil
}
