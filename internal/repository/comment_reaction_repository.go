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

type commentReactionRepository struct {
	db *sqlx.DB
}

func NewCommentReactionRepository(db *sqlx.DB) CommentReactionRepository {
	return &commentReactionRepository{db: db}
}

// GetReaction возвращает (nil, nil), если реакции пользователя на комментарий нет
func (r *commentReactionRepository) GetReaction(ctx context.Context, commentID, userID string) (*models.CommentReaction, error) {
	query := `SELECT * FROM comment_reactions WHERE comment_id = $1 AND user_id = $2`

	var reaction models.CommentReaction
	err := r.db.GetContext(ctx, &reaction, query, commentID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении реакции на комментарий: %w", err)
	}

	return &reaction, nil
}

func (r *commentReactionRepository) AddReaction(ctx context.Context, reaction *models.CommentReaction) error {
	if reaction.ReactionID == "" {
		reaction.ReactionID = uuid.New().String()
	}

	now := time.Now()
	reaction.CreatedAt = now
	reaction.UpdatedAt = now

	query := `
		INSERT INTO comment_reactions (reaction_id, comment_id, user_id, type, created_at, updated_at)
		VALUES (:reaction_id, :comment_id, :user_id, :type, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, reaction)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении реакции на комментарий: %w", err)
	}

	return nil
}

func (r *commentReactionRepository) UpdateReaction(ctx context.Context, reaction *models.CommentReaction) error {
	reaction.UpdatedAt = time.Now()

	query := `
		UPDATE comment_reactions SET
			type = :type,
			updated_at = :updated_at
		WHERE comment_id = :comment_id AND user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, reaction)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении реакции на комментарий: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("реакция не найдена")
	}

	return nil
}

func (r *commentReactionRepository) RemoveReaction(ctx context.Context, commentID, userID string) error {
	query := `DELETE FROM comment_reactions WHERE comment_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, commentID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении реакции на комментарий: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("реакция не найдена")
	}

	return nil
}

func (r *commentReactionRepository) GetCommentReactions(ctx context.Context, commentID string) ([]models.CommentReaction, error) {
	query := `SELECT * FROM comment_reactions WHERE comment_id = $1`

	var reactions []models.CommentReaction
	err := r.db.SelectContext(ctx, &reactions, query, commentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении реакций комментария: %w", err)
	}

	return reactions, nil
}

func (r *commentReactionRepository) GetRecentReactions(ctx context.Context, commentID string, limit int) ([]models.CommentReaction, error) {
	query := `
		SELECT * FROM comment_reactions
		WHERE comment_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var reactions []models.CommentReaction
	err := r.db.SelectContext(ctx, &reactions, query, commentID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении последних реакций: %w", err)
	}

	return reactions, nil
}

func (r *commentReactionRepository) GetReactionsByType(ctx context.Context, commentID string, reactionType models.ReactionType, limit int) ([]models.CommentReaction, error) {
	query := `
		SELECT * FROM comment_reactions
		WHERE comment_id = $1 AND type = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	var reactions []models.CommentReaction
	err := r.db.SelectContext(ctx, &reactions, query, commentID, reactionType, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении реакций по типу: %w", err)
	}

	return reactions, nil
}
