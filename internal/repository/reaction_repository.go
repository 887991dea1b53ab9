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

type reactionRepository struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// GetReaction возвращает (nil, nil), если реакции пользователя на пост нет
func (r *reactionRepository) GetReaction(ctx context.Context, postID, userID string) (*models.Reaction, error) {
	query := `SELECT * FROM reactions WHERE post_id = $1 AND user_id = $2`

	var reaction models.Reaction
	err := r.db.GetContext(ctx, &reaction, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении реакции: %w", err)
	}

	return &reaction, nil
}

func (r *reactionRepository) AddReaction(ctx context.Context, reaction *models.Reaction) error {
	if reaction.ReactionID == "" {
		reaction.ReactionID = uuid.New().String()
	}

	now := time.Now()
	reaction.CreatedAt = now
	reaction.UpdatedAt = now

	query := `
		INSERT INTO reactions (reaction_id, post_id, user_id, type, created_at, updated_at)
		VALUES (:reaction_id, :post_id, :user_id, :type, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, reaction)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении реакции: %w", err)
	}

	return nil
}

func (r *reactionRepository) UpdateReaction(ctx context.Context, reaction *models.Reaction) error {
	reaction.UpdatedAt = time.Now()

	query := `
		UPDATE reactions SET
			type = :type,
			updated_at = :updated_at
		WHERE post_id = :post_id AND user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, reaction)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении реакции: %w", err)
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

func (r *reactionRepository) RemoveReaction(ctx context.Context, postID, userID string) error {
	query := `DELETE FROM reactions WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении реакции: %w", err)
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

func (r *reactionRepository) GetPostReactions(ctx context.Context, postID string) ([]models.Reaction, error) {
	query := `SELECT * FROM reactions WHERE post_id = $1`

	var reactions []models.Reaction
	err := r.db.SelectContext(ctx, &reactions, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении реакций поста: %w", err)
	}

	return reactions, nil
}

func (r *reactionRepository) GetRecentReactions(ctx context.Context, postID string, limit int) ([]models.Reaction, error) {
	query := `
		SELECT * FROM reactions
		WHERE post_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var reactions []models.Reaction
	err := r.db.SelectContext(ctx, &reactions, query, postID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении последних реакций: %w", err)
	}

	return reactions, nil
}

func (r *reactionRepository) GetReactionsByType(ctx context.Context, postID string, reactionType models.ReactionType, limit int) ([]models.Reaction, error) {
	query := `
		SELECT * FROM reactions
		WHERE post_id = $1 AND type = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	var reactions []models.Reaction
	err := r.db.SelectContext(ctx, &reactions, query, postID, reactionType, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении реакций по типу: %w", err)
	}

	return reactions, nil
}
