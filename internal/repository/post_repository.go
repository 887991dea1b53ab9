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

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts
		(post_id, user_id, content, image_url, image_object, video_url, video_object,
			privacy, is_deleted, created_at, updated_at)
		VALUES
		(:post_id, :user_id, :content, :image_url, :image_object, :video_url, :video_object,
			:privacy, :is_deleted, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE post_id = $1 AND is_deleted = FALSE
	`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s не найден", postID)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE posts SET
			content = :content,
			privacy = :privacy,
			updated_at = :updated_at
		WHERE post_id = :post_id AND is_deleted = FALSE
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пост не найден")
	}

	return nil
}

func (r *postRepository) SoftDelete(ctx context.Context, postID string) error {
	query := `
		UPDATE posts SET
			is_deleted = TRUE,
			updated_at = CURRENT_TIMESTAMP
		WHERE post_id = $1 AND is_deleted = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пост не найден")
	}

	return nil
}

func (r *postRepository) GetUserPosts(ctx context.Context, userID string, limit, offset int) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE user_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetNewsFeed(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE is_deleted = FALSE AND privacy = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, models.PrivacyPublic, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

func (r *postRepository) CountComments(ctx context.Context, postID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM comments
		WHERE post_id = $1 AND is_deleted = FALSE
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете комментариев: %w", err)
	}

	return count, nil
}
