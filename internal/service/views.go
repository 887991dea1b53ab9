package service

import (
	"context"
	"fmt"
	"time"

	"socialnet/internal/models"
	"socialnet/internal/repository"
)

const (
	// максимум ответов, вкладываемых в верхнеуровневый комментарий
	maxPreviewReplies = 3
	// сколько последних реакций показываем в детальном виде поста
	recentReactionsLimit = 10
	// обновление в пределах минуты после создания не считается редактированием
	editGracePeriod = time.Minute
	// размер страницы по умолчанию для лент и комментариев
	defaultPageSize = 20
	// размер страницы по умолчанию для ответов на комментарий
	defaultRepliesPageSize = 10
)

type PostView struct {
	PostID    string             `json:"postId"`
	UserID    string             `json:"userId"`
	Content   string             `json:"content"`
	ImageURL  *string            `json:"imageUrl"`
	VideoURL  *string            `json:"videoUrl"`
	Privacy   models.PostPrivacy `json:"privacy"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`

	UserFullName    string  `json:"userFullName"`
	UserDisplayName string  `json:"userDisplayName"`
	Username        string  `json:"username"`
	UserAvatarURL   *string `json:"userAvatarUrl"`

	ReactionsSummary    ReactionSummary      `json:"reactionsSummary"`
	CurrentUserReaction *models.ReactionType `json:"currentUserReaction"`
	CommentsCount       int                  `json:"commentsCount"`
	IsOwnPost           bool                 `json:"isOwnPost"`
	TimeAgo             string               `json:"timeAgo"`
}

type PostDetailView struct {
	PostView
	Comments        []CommentView  `json:"comments"`
	RecentReactions []ReactionView `json:"recentReactions"`
}

type CommentView struct {
	CommentID       string            `json:"commentId"`
	PostID          string            `json:"postId"`
	UserID          string            `json:"userId"`
	ParentCommentID *string           `json:"parentCommentId"`
	Content         string            `json:"content"`
	MediaType       *models.MediaType `json:"mediaType"`
	MediaURL        *string           `json:"mediaUrl"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`

	UserFullName    string  `json:"userFullName"`
	UserDisplayName string  `json:"userDisplayName"`
	Username        string  `json:"username"`
	UserAvatarURL   *string `json:"userAvatarUrl"`

	ReactionsSummary    ReactionSummary      `json:"reactionsSummary"`
	CurrentUserReaction *models.ReactionType `json:"currentUserReaction"`
	RepliesCount        int                  `json:"repliesCount"`

	TimeAgo      string `json:"timeAgo"`
	IsOwnComment bool   `json:"isOwnComment"`
	IsReply      bool   `json:"isReply"`
	IsEdited     bool   `json:"isEdited"`

	Replies        []CommentView `json:"replies"`
	HasMoreReplies bool          `json:"hasMoreReplies"`
}

type ReactionView struct {
	UserID        string              `json:"userId"`
	UserFullName  string              `json:"userFullName"`
	Username      string              `json:"username"`
	UserAvatarURL *string             `json:"userAvatarUrl"`
	Type          models.ReactionType `json:"type"`
	TypeEmoji     string              `json:"typeEmoji"`
	TypeName      string              `json:"typeName"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// timeAgo - относительная метка времени с фиксированными порогами
func timeAgo(t time.Time) string {
	elapsed := time.Since(t)

	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(elapsed.Hours()/24))
	default:
		return t.Format("Jan 02")
	}
}

// isEdited отсекает ложный флаг от касания updated_at в момент создания
func isEdited(createdAt, updatedAt time.Time) bool {
	return updatedAt.After(createdAt.Add(editGracePeriod))
}

// viewComposer собирает view-объекты из сущностей, реакций и данных авторов.
// Общий для постового и комментарного сервисов.
type viewComposer struct {
	userRepo            repository.UserRepository
	postRepo            repository.PostRepository
	commentRepo         repository.CommentRepository
	reactionRepo        repository.ReactionRepository
	commentReactionRepo repository.CommentReactionRepository
}

func newViewComposer(repo *repository.Repository) *viewComposer {
	return &viewComposer{
		userRepo:            repo.User,
		postRepo:            repo.Post,
		commentRepo:         repo.Comment,
		reactionRepo:        repo.Reaction,
		commentReactionRepo: repo.CommentReaction,
	}
}

// resolveUser загружает автора с кешем на время запроса, чтобы не ходить
// в БД за одним и тем же пользователем несколько раз
func (v *viewComposer) resolveUser(ctx context.Context, cache map[string]*models.User, userID string) (*models.User, error) {
	if user, ok := cache[userID]; ok {
		return user, nil
	}

	user, err := v.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cache[userID] = user
	return user, nil
}

func (v *viewComposer) PostView(ctx context.Context, post *models.Post, viewerID string) (*PostView, error) {
	users := make(map[string]*models.User)
	return v.postView(ctx, users, post, viewerID)
}

func (v *viewComposer) postView(ctx context.Context, users map[string]*models.User, post *models.Post, viewerID string) (*PostView, error) {
	author, err := v.resolveUser(ctx, users, post.UserID)
	if err != nil {
		return nil, err
	}

	reactions, err := v.reactionRepo.GetPostReactions(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	commentsCount, err := v.postRepo.CountComments(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	view := &PostView{
		PostID:          post.PostID,
		UserID:          post.UserID,
		Content:         post.Content,
		ImageURL:        post.ImageURL,
		VideoURL:        post.VideoURL,
		Privacy:         post.Privacy,
		CreatedAt:       post.CreatedAt,
		UpdatedAt:       post.UpdatedAt,
		UserFullName:    author.FullName(),
		UserDisplayName: author.FirstName,
		Username:        author.Username,
		UserAvatarURL:   author.AvatarURL,

		ReactionsSummary: SummarizeReactions(postReactionTypes(reactions)),
		CommentsCount:    commentsCount,
		IsOwnPost:        viewerID != "" && viewerID == post.UserID,
		TimeAgo:          timeAgo(post.CreatedAt),
	}

	if viewerID != "" {
		for i := range reactions {
			if reactions[i].UserID == viewerID {
				view.CurrentUserReaction = &reactions[i].Type
				break
			}
		}
	}

	return view, nil
}

func (v *viewComposer) PostDetailView(ctx context.Context, post *models.Post, viewerID string, commentLimit, commentOffset int) (*PostDetailView, error) {
	users := make(map[string]*models.User)

	base, err := v.postView(ctx, users, post, viewerID)
	if err != nil {
		return nil, err
	}

	comments, err := v.commentRepo.GetPostComments(ctx, post.PostID, commentLimit, commentOffset)
	if err != nil {
		return nil, err
	}

	commentViews := make([]CommentView, 0, len(comments))
	for i := range comments {
		cv, err := v.commentView(ctx, users, &comments[i], viewerID, true)
		if err != nil {
			return nil, err
		}
		commentViews = append(commentViews, *cv)
	}

	recent, err := v.reactionRepo.GetRecentReactions(ctx, post.PostID, recentReactionsLimit)
	if err != nil {
		return nil, err
	}

	recentViews, err := v.postReactionViews(ctx, users, recent)
	if err != nil {
		return nil, err
	}

	return &PostDetailView{
		PostView:        *base,
		Comments:        commentViews,
		RecentReactions: recentViews,
	}, nil
}

func (v *viewComposer) CommentView(ctx context.Context, comment *models.Comment, viewerID string, includeReplies bool) (*CommentView, error) {
	users := make(map[string]*models.User)
	return v.commentView(ctx, users, comment, viewerID, includeReplies)
}

// commentView собирает вид комментария; для верхнеуровневых комментариев
// вкладывает до трех неудаленных ответов, старые первыми
func (v *viewComposer) commentView(ctx context.Context, users map[string]*models.User, comment *models.Comment, viewerID string, includeReplies bool) (*CommentView, error) {
	author, err := v.resolveUser(ctx, users, comment.UserID)
	if err != nil {
		return nil, err
	}

	reactions, err := v.commentReactionRepo.GetCommentReactions(ctx, comment.CommentID)
	if err != nil {
		return nil, err
	}

	// живой счетчик неудаленных ответов, а не длина вложенного списка
	repliesCount, err := v.commentRepo.CountReplies(ctx, comment.CommentID)
	if err != nil {
		return nil, err
	}

	view := &CommentView{
		CommentID:       comment.CommentID,
		PostID:          comment.PostID,
		UserID:          comment.UserID,
		ParentCommentID: comment.ParentCommentID,
		Content:         comment.Content,
		MediaType:       comment.MediaType,
		MediaURL:        comment.MediaURL,
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
		UserFullName:    author.FullName(),
		UserDisplayName: author.FirstName,
		Username:        author.Username,
		UserAvatarURL:   author.AvatarURL,

		ReactionsSummary: SummarizeReactions(commentReactionTypes(reactions)),
		RepliesCount:     repliesCount,

		TimeAgo:      timeAgo(comment.CreatedAt),
		IsOwnComment: viewerID != "" && viewerID == comment.UserID,
		IsReply:      comment.IsReply(),
		IsEdited:     isEdited(comment.CreatedAt, comment.UpdatedAt),

		Replies: []CommentView{},
	}

	if viewerID != "" {
		for i := range reactions {
			if reactions[i].UserID == viewerID {
				view.CurrentUserReaction = &reactions[i].Type
				break
			}
		}
	}

	if includeReplies && !comment.IsReply() {
		replies, err := v.commentRepo.GetReplies(ctx, comment.CommentID, maxPreviewReplies, 0)
		if err != nil {
			return nil, err
		}

		for i := range replies {
			rv, err := v.commentView(ctx, users, &replies[i], viewerID, false)
			if err != nil {
				return nil, err
			}
			view.Replies = append(view.Replies, *rv)
		}

		view.HasMoreReplies = repliesCount > maxPreviewReplies
	}

	return view, nil
}

func (v *viewComposer) PostViews(ctx context.Context, posts []models.Post, viewerID string) ([]PostView, error) {
	users := make(map[string]*models.User)
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		view, err := v.postView(ctx, users, &posts[i], viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (v *viewComposer) CommentViews(ctx context.Context, comments []models.Comment, viewerID string, includeReplies bool) ([]CommentView, error) {
	users := make(map[string]*models.User)
	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		view, err := v.commentView(ctx, users, &comments[i], viewerID, includeReplies)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (v *viewComposer) PostReactionView(ctx context.Context, reaction *models.Reaction) (*ReactionView, error) {
	views, err := v.postReactionViews(ctx, make(map[string]*models.User), []models.Reaction{*reaction})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (v *viewComposer) PostReactionViews(ctx context.Context, reactions []models.Reaction) ([]ReactionView, error) {
	return v.postReactionViews(ctx, make(map[string]*models.User), reactions)
}

func (v *viewComposer) CommentReactionView(ctx context.Context, reaction *models.CommentReaction) (*ReactionView, error) {
	views, err := v.commentReactionViews(ctx, make(map[string]*models.User), []models.CommentReaction{*reaction})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (v *viewComposer) CommentReactionViews(ctx context.Context, reactions []models.CommentReaction) ([]ReactionView, error) {
	return v.commentReactionViews(ctx, make(map[string]*models.User), reactions)
}

func (v *viewComposer) postReactionViews(ctx context.Context, users map[string]*models.User, reactions []models.Reaction) ([]ReactionView, error) {
	views := make([]ReactionView, 0, len(reactions))
	for i := range reactions {
		user, err := v.resolveUser(ctx, users, reactions[i].UserID)
		if err != nil {
			return nil, err
		}

		views = append(views, ReactionView{
			UserID:        reactions[i].UserID,
			UserFullName:  user.FullName(),
			Username:      user.Username,
			UserAvatarURL: user.AvatarURL,
			Type:          reactions[i].Type,
			TypeEmoji:     reactions[i].Type.Emoji(),
			TypeName:      reactions[i].Type.DisplayName(),
			CreatedAt:     reactions[i].CreatedAt,
		})
	}
	return views, nil
}

func (v *viewComposer) commentReactionViews(ctx context.Context, users map[string]*models.User, reactions []models.CommentReaction) ([]ReactionView, error) {
	views := make([]ReactionView, 0, len(reactions))
	for i := range reactions {
		user, err := v.resolveUser(ctx, users, reactions[i].UserID)
		if err != nil {
			return nil, err
		}

		views = append(views, ReactionView{
			UserID:        reactions[i].UserID,
			UserFullName:  user.FullName(),
			Username:      user.Username,
			UserAvatarURL: user.AvatarURL,
			Type:          reactions[i].Type,
			TypeEmoji:     reactions[i].Type.Emoji(),
			TypeName:      reactions[i].Type.DisplayName(),
			CreatedAt:     reactions[i].CreatedAt,
		})
	}
	return views, nil
}
