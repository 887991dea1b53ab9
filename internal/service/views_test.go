package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialnet/internal/models"
)

func TestTimeAgo(t *testing.T) {
	now := time.Now()

	t.Run("Меньше минуты", func(t *testing.T) {
		assert.Equal(t, "Just now", timeAgo(now.Add(-30*time.Second)))
	})

	t.Run("Минуты", func(t *testing.T) {
		assert.Equal(t, "5m", timeAgo(now.Add(-5*time.Minute)))
	})

	t.Run("Часы", func(t *testing.T) {
		assert.Equal(t, "3h", timeAgo(now.Add(-3*time.Hour)))
	})

	t.Run("Дни в пределах недели", func(t *testing.T) {
		assert.Equal(t, "2d", timeAgo(now.Add(-49*time.Hour)))
	})

	t.Run("Старше недели - абсолютная дата", func(t *testing.T) {
		old := now.Add(-10 * 24 * time.Hour)
		assert.Equal(t, old.Format("Jan 02"), timeAgo(old))
	})
}

func TestIsEdited(t *testing.T) {
	created := time.Now().Add(-time.Hour)

	t.Run("Обновление в пределах минуты не считается редактированием", func(t *testing.T) {
		assert.False(t, isEdited(created, created.Add(30*time.Second)))
	})

	t.Run("Ровно минута еще не редактирование", func(t *testing.T) {
		assert.False(t, isEdited(created, created.Add(time.Minute)))
	})

	t.Run("После минуты считается редактированием", func(t *testing.T) {
		assert.True(t, isEdited(created, created.Add(2*time.Minute)))
	})
}

func TestNormalizePage(t *testing.T) {
	t.Run("Значения по умолчанию", func(t *testing.T) {
		limit, offset := normalizePage(0, 0, defaultPageSize)
		assert.Equal(t, 20, limit)
		assert.Equal(t, 0, offset)
	})

	t.Run("Смещение считается от номера страницы", func(t *testing.T) {
		limit, offset := normalizePage(3, 15, defaultPageSize)
		assert.Equal(t, 15, limit)
		assert.Equal(t, 30, offset)
	})

	t.Run("Размер больше ста откатывается к значению по умолчанию", func(t *testing.T) {
		limit, _ := normalizePage(1, 500, defaultPageSize)
		assert.Equal(t, 20, limit)
	})

	t.Run("Отрицательная страница трактуется как первая", func(t *testing.T) {
		_, offset := normalizePage(-4, 10, defaultPageSize)
		assert.Equal(t, 0, offset)
	})
}

func testAuthor(userID, username, firstName string) *models.User {
	return &models.User{
		UserID:    userID,
		Username:  username,
		FirstName: firstName,
		LastName:  "Тестов",
		IsActive:  true,
	}
}

func TestViewComposerPostView(t *testing.T) {
	t.Run("Собирает вид поста с автором, сводкой и реакцией зрителя", func(t *testing.T) {
		// Arrange
		userRepo := new(MockUserRepository)
		postRepo := new(MockPostRepository)
		reactionRepo := new(MockReactionRepository)
		composer := newViewComposer(newTestRepository(userRepo, postRepo, new(MockCommentRepository), reactionRepo, new(MockCommentReactionRepository)))

		post := &models.Post{
			PostID:    "post-1",
			UserID:    "author-1",
			Content:   "Первый пост",
			Privacy:   models.PrivacyPublic,
			CreatedAt: time.Now().Add(-2 * time.Hour),
			UpdatedAt: time.Now().Add(-2 * time.Hour),
		}

		userRepo.On("GetUserByID", mock.Anything, "author-1").
			Return(testAuthor("author-1", "ivan", "Иван"), nil)
		reactionRepo.On("GetPostReactions", mock.Anything, "post-1").
			Return([]models.Reaction{
				{PostID: "post-1", UserID: "viewer-1", Type: models.ReactionLove},
				{PostID: "post-1", UserID: "other", Type: models.ReactionLike},
			}, nil)
		postRepo.On("CountComments", mock.Anything, "post-1").Return(7, nil)

		// Act
		view, err := composer.PostView(context.Background(), post, "viewer-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Иван Тестов", view.UserFullName)
		assert.Equal(t, "ivan", view.Username)
		assert.Equal(t, 2, view.ReactionsSummary.TotalCount)
		assert.Equal(t, 7, view.CommentsCount)
		require.NotNil(t, view.CurrentUserReaction)
		assert.Equal(t, models.ReactionLove, *view.CurrentUserReaction)
		assert.False(t, view.IsOwnPost)
		assert.Equal(t, "2h", view.TimeAgo)
	})

	t.Run("Анонимный зритель не получает собственную реакцию", func(t *testing.T) {
		// Arrange
		userRepo := new(MockUserRepository)
		postRepo := new(MockPostRepository)
		reactionRepo := new(MockReactionRepository)
		composer := newViewComposer(newTestRepository(userRepo, postRepo, new(MockCommentRepository), reactionRepo, new(MockCommentReactionRepository)))

		post := &models.Post{PostID: "post-1", UserID: "author-1", CreatedAt: time.Now(), UpdatedAt: time.Now()}

		userRepo.On("GetUserByID", mock.Anything, "author-1").
			Return(testAuthor("author-1", "ivan", "Иван"), nil)
		reactionRepo.On("GetPostReactions", mock.Anything, "post-1").
			Return([]models.Reaction{{UserID: "someone", Type: models.ReactionLike}}, nil)
		postRepo.On("CountComments", mock.Anything, "post-1").Return(0, nil)

		// Act
		view, err := composer.PostView(context.Background(), post, "")

		// Assert
		require.NoError(t, err)
		assert.Nil(t, view.CurrentUserReaction)
		assert.False(t, view.IsOwnPost)
	})
}

func TestViewComposerCommentView(t *testing.T) {
	parentID := "comment-1"

	t.Run("Верхнеуровневый комментарий вкладывает до трех ответов", func(t *testing.T) {
		// Arrange
		userRepo := new(MockUserRepository)
		commentRepo := new(MockCommentRepository)
		commentReactionRepo := new(MockCommentReactionRepository)
		composer := newViewComposer(newTestRepository(userRepo, new(MockPostRepository), commentRepo, new(MockReactionRepository), commentReactionRepo))

		comment := &models.Comment{
			CommentID: "comment-1",
			PostID:    "post-1",
			UserID:    "author-1",
			Content:   "Корневой комментарий",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		replies := []models.Comment{
			{CommentID: "r1", PostID: "post-1", UserID: "author-1", ParentCommentID: &parentID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
			{CommentID: "r2", PostID: "post-1", UserID: "author-1", ParentCommentID: &parentID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
			{CommentID: "r3", PostID: "post-1", UserID: "author-1", ParentCommentID: &parentID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		}

		userRepo.On("GetUserByID", mock.Anything, "author-1").
			Return(testAuthor("author-1", "ivan", "Иван"), nil)
		commentReactionRepo.On("GetCommentReactions", mock.Anything, mock.Anything).
			Return([]models.CommentReaction{}, nil)
		commentRepo.On("CountReplies", mock.Anything, "comment-1").Return(5, nil)
		commentRepo.On("CountReplies", mock.Anything, "r1").Return(0, nil)
		commentRepo.On("CountReplies", mock.Anything, "r2").Return(0, nil)
		commentRepo.On("CountReplies", mock.Anything, "r3").Return(0, nil)
		commentRepo.On("GetReplies", mock.Anything, "comment-1", 3, 0).Return(replies, nil)

		// Act
		view, err := composer.CommentView(context.Background(), comment, "viewer-1", true)

		// Assert
		require.NoError(t, err)
		assert.Len(t, view.Replies, 3)
		assert.Equal(t, 5, view.RepliesCount)
		assert.True(t, view.HasMoreReplies)
		assert.False(t, view.IsReply)
		// автор загружен один раз благодаря кешу на время запроса
		userRepo.AssertNumberOfCalls(t, "GetUserByID", 1)
	})

	t.Run("У ответа вложенные ответы не запрашиваются", func(t *testing.T) {
		// Arrange
		userRepo := new(MockUserRepository)
		commentRepo := new(MockCommentRepository)
		commentReactionRepo := new(MockCommentReactionRepository)
		composer := newViewComposer(newTestRepository(userRepo, new(MockPostRepository), commentRepo, new(MockReactionRepository), commentReactionRepo))

		reply := &models.Comment{
			CommentID:       "r1",
			PostID:          "post-1",
			UserID:          "author-1",
			ParentCommentID: &parentID,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		userRepo.On("GetUserByID", mock.Anything, "author-1").
			Return(testAuthor("author-1", "ivan", "Иван"), nil)
		commentReactionRepo.On("GetCommentReactions", mock.Anything, "r1").
			Return([]models.CommentReaction{}, nil)
		commentRepo.On("CountReplies", mock.Anything, "r1").Return(0, nil)

		// Act
		view, err := composer.CommentView(context.Background(), reply, "", true)

		// Assert
		require.NoError(t, err)
		assert.True(t, view.IsReply)
		assert.NotNil(t, view.Replies)
		assert.Empty(t, view.Replies)
		assert.False(t, view.HasMoreReplies)
		commentRepo.AssertNotCalled(t, "GetReplies", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("HasMoreReplies ложен когда ответов ровно три", func(t *testing.T) {
		// Arrange
		userRepo := new(MockUserRepository)
		commentRepo := new(MockCommentRepository)
		commentReactionRepo := new(MockCommentReactionRepository)
		composer := newViewComposer(newTestRepository(userRepo, new(MockPostRepository), commentRepo, new(MockReactionRepository), commentReactionRepo))

		comment := &models.Comment{CommentID: "comment-1", PostID: "post-1", UserID: "author-1", CreatedAt: time.Now(), UpdatedAt: time.Now()}

		userRepo.On("GetUserByID", mock.Anything, "author-1").
			Return(testAuthor("author-1", "ivan", "Иван"), nil)
		commentReactionRepo.On("GetCommentReactions", mock.Anything, mock.Anything).
			Return([]models.CommentReaction{}, nil)
		commentRepo.On("CountReplies", mock.Anything, mock.Anything).Return(3, nil)
		commentRepo.On("GetReplies", mock.Anything, "comment-1", 3, 0).Return([]models.Comment{}, nil)

		// Act
		view, err := composer.CommentView(context.Background(), comment, "", true)

		// Assert
		require.NoError(t, err)
		assert.False(t, view.HasMoreReplies)
	})
}
