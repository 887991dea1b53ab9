package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"socialnet/internal/config"
	handlers "socialnet/internal/handler"
)

func createTestHandlers() (*handlers.Handlers, *MockAuthService, *MockPostService, *MockCommentService, *MockProfileService) {
	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		ServerPort:   8080,
		Media: config.Media{
			MaxImageSize: 10 * 1024 * 1024,
			MaxVideoSize: 100 * 1024 * 1024,
			MaxGifSize:   20 * 1024 * 1024,
		},
	}

	authService := new(MockAuthService)
	postService := new(MockPostService)
	commentService := new(MockCommentService)
	profileService := new(MockProfileService)

	h := &handlers.Handlers{
		AuthService:    authService,
		PostService:    postService,
		CommentService: commentService,
		ProfileService: profileService,
		Cfg:            cfg,
		Validate:       validator.New(),
	}

	return h, authService, postService, commentService, profileService
}

// withUser adds the authenticated user to the request context
func withUser(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), "userID", userID)
	return req.WithContext(ctx)
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

// assertJSONSuccess checks the success envelope and returns the data field
func assertJSONSuccess(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) interface{} {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data, ok := response["data"]
	assert.True(t, ok, "в ответе нет поля data")
	return data
}
