package test

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"socialnet/internal/models"
	"socialnet/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Login(ctx context.Context, login, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, userID string, req service.CreatePostRequest) (*service.PostView, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostView), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID, viewerID string) (*service.PostDetailView, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostDetailView), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID, userID string, req service.UpdatePostRequest) (*service.PostView, error) {
	args := m.Called(ctx, postID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostView), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostService) GetUserPosts(ctx context.Context, targetUserID, viewerID string, page, size int) ([]service.PostView, error) {
	args := m.Called(ctx, targetUserID, viewerID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PostView), args.Error(1)
}

func (m *MockPostService) GetNewsFeed(ctx context.Context, viewerID string, page, size int) ([]service.PostView, error) {
	args := m.Called(ctx, viewerID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PostView), args.Error(1)
}

func (m *MockPostService) AddReaction(ctx context.Context, postID, userID string, reactionType models.ReactionType) (*service.ReactionView, error) {
	args := m.Called(ctx, postID, userID, reactionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReactionView), args.Error(1)
}

func (m *MockPostService) RemoveReaction(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostService) GetPostReactions(ctx context.Context, postID string, filter *models.ReactionType, limit int) ([]service.ReactionView, error) {
	args := m.Called(ctx, postID, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ReactionView), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(ctx context.Context, postID, userID string, req service.AddCommentRequest) (*service.CommentView, error) {
	args := m.Called(ctx, postID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommentView), args.Error(1)
}

func (m *MockCommentService) GetComment(ctx context.Context, commentID, viewerID string) (*service.CommentView, error) {
	args := m.Called(ctx, commentID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommentView), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID, userID, content string) (*service.CommentView, error) {
	args := m.Called(ctx, commentID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommentView), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockCommentService) GetPostComments(ctx context.Context, postID, viewerID string, page, size int) ([]service.CommentView, error) {
	args := m.Called(ctx, postID, viewerID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CommentView), args.Error(1)
}

func (m *MockCommentService) GetCommentReplies(ctx context.Context, commentID, viewerID string, page, size int) ([]service.CommentView, error) {
	args := m.Called(ctx, commentID, viewerID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CommentView), args.Error(1)
}

func (m *MockCommentService) AddReaction(ctx context.Context, commentID, userID string, reactionType models.ReactionType) (*service.ReactionView, error) {
	args := m.Called(ctx, commentID, userID, reactionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReactionView), args.Error(1)
}

func (m *MockCommentService) RemoveReaction(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockCommentService) GetCommentReactions(ctx context.Context, commentID string, filter *models.ReactionType, limit int) ([]service.ReactionView, error) {
	args := m.Called(ctx, commentID, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ReactionView), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetUserProfile(ctx context.Context, targetUserID, viewerID string) (*service.ProfileView, error) {
	args := m.Called(ctx, targetUserID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, req service.UpdateProfileRequest) (*service.ProfileView, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) UpdatePrivacySettings(ctx context.Context, userID string, req service.UpdatePrivacyRequest) (*service.ProfileView, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) ChangePassword(ctx context.Context, userID string, req service.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, userID string, file *service.UploadFile) (*service.ProfileView, error) {
	args := m.Called(ctx, userID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) DeleteAvatar(ctx context.Context, userID string) (*service.ProfileView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}
