package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"socialnet/internal/service"
)

func (h *Handlers) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	profile, err := h.ProfileService.GetUserProfile(r.Context(), userID, userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)

	profile, err := h.ProfileService.GetUserProfile(r.Context(), targetUserID, viewerID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	profile, err := h.ProfileService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) UpdatePrivacySettings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req service.UpdatePrivacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	profile, err := h.ProfileService.UpdatePrivacySettings(r.Context(), userID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req service.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.ProfileService.ChangePassword(r.Context(), userID, req); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пароль успешно изменен"}, http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	if err := r.ParseMultipartForm(h.Cfg.Media.MaxImageSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if msg, ok := h.checkImage(header); !ok {
		WriteError(w, msg, http.StatusBadRequest)
		return
	}

	profile, err := h.ProfileService.UploadAvatar(r.Context(), userID, &service.UploadFile{
		FileName: header.Filename,
		Size:     header.Size,
		Reader:   file,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	profile, err := h.ProfileService.DeleteAvatar(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}
