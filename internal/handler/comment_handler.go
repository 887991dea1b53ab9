package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"socialnet/internal/models"
	"socialnet/internal/service"
)

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	if err := r.ParseMultipartForm(h.Cfg.Media.MaxVideoSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		}
		return
	}

	req := service.AddCommentRequest{
		Content: r.FormValue("content"),
	}
	if parentID := r.FormValue("parentCommentId"); parentID != "" {
		req.ParentCommentID = &parentID
	}

	// у комментария может быть не больше одного медиафайла
	attached := 0
	for _, field := range []string{"image", "video", "gif"} {
		file, header, err := formFile(r, field)
		if err != nil {
			WriteError(w, "Не удалось получить медиафайл", http.StatusBadRequest)
			return
		}
		if file == nil {
			continue
		}
		defer file.Close()

		attached++
		if attached > 1 {
			WriteError(w, "Комментарий может содержать только один медиафайл", http.StatusBadRequest)
			return
		}

		var mediaType models.MediaType
		switch field {
		case "image":
			if msg, ok := h.checkImage(header); !ok {
				WriteError(w, msg, http.StatusBadRequest)
				return
			}
			mediaType = models.MediaImage
		case "video":
			if msg, ok := h.checkVideo(header); !ok {
				WriteError(w, msg, http.StatusBadRequest)
				return
			}
			mediaType = models.MediaVideo
		case "gif":
			if header.Header.Get("Content-Type") != "image/gif" {
				WriteError(w, "Файл GIF должен иметь тип image/gif", http.StatusBadRequest)
				return
			}
			if header.Size > h.Cfg.Media.MaxGifSize {
				WriteError(w, fmt.Sprintf("GIF слишком большой (макс. %d MB)", h.Cfg.Media.MaxGifSize/(1024*1024)), http.StatusBadRequest)
				return
			}
			mediaType = models.MediaGif
		}

		req.MediaType = &mediaType
		req.Media = &service.UploadFile{
			FileName: header.Filename,
			Size:     header.Size,
			Reader:   file,
		}
	}

	comment, err := h.CommentService.AddComment(r.Context(), postID, userID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)

	comment, err := h.CommentService.GetComment(r.Context(), commentID, viewerID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	var req struct {
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), commentID, userID, req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	if err := h.CommentService.DeleteComment(r.Context(), commentID, userID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Комментарий успешно удален"}, http.StatusOK)
}

func (h *Handlers) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)
	page, size := pagination(r)

	comments, err := h.CommentService.GetPostComments(r.Context(), postID, viewerID, page, size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) GetCommentReplies(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)
	page, size := pagination(r)

	replies, err := h.CommentService.GetCommentReplies(r.Context(), commentID, viewerID, page, size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, replies, http.StatusOK)
}

func (h *Handlers) AddCommentReaction(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	var req struct {
		Type models.ReactionType `json:"type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	reaction, err := h.CommentService.AddReaction(r.Context(), commentID, userID, req.Type)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if reaction == nil {
		WriteSuccess(w, nil, http.StatusOK)
		return
	}

	WriteSuccess(w, reaction, http.StatusOK)
}

func (h *Handlers) RemoveCommentReaction(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]
	userID := r.Context().Value("userID").(string)

	if err := h.CommentService.RemoveReaction(r.Context(), commentID, userID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handlers) GetCommentReactions(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]

	filter, ok := parseReactionFilter(r)
	if !ok {
		WriteError(w, "Недопустимый тип реакции", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reactions, err := h.CommentService.GetCommentReactions(r.Context(), commentID, filter, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, reactions, http.StatusOK)
}
