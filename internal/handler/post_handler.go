package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"socialnet/internal/models"
	"socialnet/internal/service"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/ogg":       true,
	"video/avi":       true,
	"video/x-msvideo": true,
	"video/quicktime": true,
}

// formFile достает файл из multipart-формы; отсутствие поля не ошибка
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return file, header, nil
}

func (h *Handlers) checkImage(header *multipart.FileHeader) (string, bool) {
	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "Неподдерживаемый тип изображения. Разрешены: JPEG, PNG, GIF, WebP", false
	}
	if header.Size > h.Cfg.Media.MaxImageSize {
		return fmt.Sprintf("Изображение слишком большое (макс. %d MB)", h.Cfg.Media.MaxImageSize/(1024*1024)), false
	}
	return "", true
}

func (h *Handlers) checkVideo(header *multipart.FileHeader) (string, bool) {
	contentType := header.Header.Get("Content-Type")
	if !allowedVideoTypes[contentType] {
		return "Неподдерживаемый тип видео. Разрешены: MP4, WebM, OGG, AVI, MOV", false
	}
	if header.Size > h.Cfg.Media.MaxVideoSize {
		return fmt.Sprintf("Видео слишком большое (макс. %d MB)", h.Cfg.Media.MaxVideoSize/(1024*1024)), false
	}
	return "", true
}

func parsePrivacy(raw string) (models.PostPrivacy, bool) {
	if raw == "" {
		return models.PrivacyPublic, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	privacy := models.PostPrivacy(value)
	return privacy, privacy.Valid()
}

func pagination(r *http.Request) (page, size int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	return page, size
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	if err := r.ParseMultipartForm(h.Cfg.Media.MaxVideoSize + h.Cfg.Media.MaxImageSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		}
		return
	}

	privacy, ok := parsePrivacy(r.FormValue("privacy"))
	if !ok {
		WriteError(w, "Недопустимый уровень приватности", http.StatusBadRequest)
		return
	}

	req := service.CreatePostRequest{
		Content: r.FormValue("content"),
		Privacy: privacy,
	}

	imageFile, imageHeader, err := formFile(r, "image")
	if err != nil {
		WriteError(w, "Не удалось получить изображение", http.StatusBadRequest)
		return
	}
	if imageFile != nil {
		defer imageFile.Close()
		if msg, ok := h.checkImage(imageHeader); !ok {
			WriteError(w, msg, http.StatusBadRequest)
			return
		}
		req.Image = &service.UploadFile{
			FileName: imageHeader.Filename,
			Size:     imageHeader.Size,
			Reader:   imageFile,
		}
	}

	videoFile, videoHeader, err := formFile(r, "video")
	if err != nil {
		WriteError(w, "Не удалось получить видео", http.StatusBadRequest)
		return
	}
	if videoFile != nil {
		defer videoFile.Close()
		if msg, ok := h.checkVideo(videoHeader); !ok {
			WriteError(w, msg, http.StatusBadRequest)
			return
		}
		req.Video = &service.UploadFile{
			FileName: videoHeader.Filename,
			Size:     videoHeader.Size,
			Reader:   videoFile,
		}
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)

	post, err := h.PostService.GetPost(r.Context(), postID, viewerID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	var req struct {
		Content string             `json:"content"`
		Privacy models.PostPrivacy `json:"privacy"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), postID, userID, service.UpdatePostRequest{
		Content: req.Content,
		Privacy: req.Privacy,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост успешно удален"}, http.StatusOK)
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)
	page, size := pagination(r)

	posts, err := h.PostService.GetUserPosts(r.Context(), targetUserID, viewerID, page, size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetNewsFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := r.Context().Value("userID").(string)
	page, size := pagination(r)

	posts, err := h.PostService.GetNewsFeed(r.Context(), viewerID, page, size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) AddPostReaction(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	var req struct {
		Type models.ReactionType `json:"type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	reaction, err := h.PostService.AddReaction(r.Context(), postID, userID, req.Type)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	// reaction == nil означает, что повторная реакция снята
	if reaction == nil {
		WriteSuccess(w, nil, http.StatusOK)
		return
	}

	WriteSuccess(w, reaction, http.StatusOK)
}

func (h *Handlers) RemovePostReaction(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	if err := h.PostService.RemoveReaction(r.Context(), postID, userID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}

func parseReactionFilter(r *http.Request) (*models.ReactionType, bool) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	reactionType := models.ReactionType(value)
	if !reactionType.Valid() {
		return nil, false
	}
	return &reactionType, true
}

func (h *Handlers) GetPostReactions(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	filter, ok := parseReactionFilter(r)
	if !ok {
		WriteError(w, "Недопустимый тип реакции", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reactions, err := h.PostService.GetPostReactions(r.Context(), postID, filter, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, reactions, http.StatusOK)
}
