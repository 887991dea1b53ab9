package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"socialnet/internal/service"
)

// SuccessResponse - стандартный конверт успешного ответа. Поле data
// сериализуется всегда: снятая реакция отдается как data: null.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Errors  []string `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(SuccessResponse{Success: true, Data: data})
}

// validationMessages разворачивает ошибки validator в понятные сообщения по полям
func validationMessages(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("Поле %s обязательно", fe.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("Поле %s должно быть корректным email", fe.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("Поле %s должно содержать не менее %s символов", fe.Field(), fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("Поле %s не может быть длиннее %s символов", fe.Field(), fe.Param()))
		case "alphanum":
			messages = append(messages, fmt.Sprintf("Поле %s может содержать только буквы и цифры", fe.Field()))
		case "url":
			messages = append(messages, fmt.Sprintf("Поле %s должно быть корректным URL", fe.Field()))
		default:
			messages = append(messages, fmt.Sprintf("Поле %s не прошло проверку %s", fe.Field(), fe.Tag()))
		}
	}
	return messages
}

// WriteValidationError отдает 400 со списком нарушений по полям запроса
func WriteValidationError(w http.ResponseWriter, err error) {
	messages := validationMessages(err)
	if len(messages) == 0 {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "Некорректные данные", Errors: messages})
}

// WriteServiceError переводит код сервисной ошибки в HTTP-статус
func WriteServiceError(w http.ResponseWriter, err error) {
	svcErr := service.AsServiceError(err)

	statusCode := http.StatusInternalServerError
	switch svcErr.Code {
	case service.ErrValidation:
		statusCode = http.StatusBadRequest
	case service.ErrUnauthorized:
		statusCode = http.StatusUnauthorized
	case service.ErrForbidden:
		statusCode = http.StatusForbidden
	case service.ErrNotFound:
		statusCode = http.StatusNotFound
	case service.ErrConflict:
		statusCode = http.StatusConflict
	}

	message := svcErr.Message
	if message == "" && len(svcErr.Errors) > 0 {
		message = "Некорректные данные"
	}
	if svcErr.Code == service.ErrInternal {
		message = "Внутренняя ошибка сервера"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Errors: svcErr.Errors})
}
