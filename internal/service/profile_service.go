package service

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"socialnet/internal/config"
	"socialnet/internal/models"
	"socialnet/internal/repository"
	"socialnet/internal/storage"
)

// minAge - минимальный возраст пользователя в годах
const minAge = 13

type ProfileView struct {
	UserID      string     `json:"userId"`
	Username    string     `json:"username"`
	FullName    string     `json:"fullName"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Bio         *string    `json:"bio"`
	AvatarURL   *string    `json:"avatarUrl"`
	Location    *string    `json:"location"`
	Website     *string    `json:"website"`
	Email       *string    `json:"email"`
	PhoneNumber *string    `json:"phoneNumber"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	IsPrivate   bool       `json:"isPrivate"`
	CreatedAt   time.Time  `json:"createdAt"`

	IsOwnProfile bool `json:"isOwnProfile"`
}

type UpdateProfileRequest struct {
	FirstName   string     `json:"firstName" validate:"required,max=50"`
	LastName    string     `json:"lastName" validate:"max=50"`
	Bio         *string    `json:"bio" validate:"omitempty,max=500"`
	Location    *string    `json:"location" validate:"omitempty,max=100"`
	Website     *string    `json:"website" validate:"omitempty,url,max=200"`
	PhoneNumber *string    `json:"phoneNumber" validate:"omitempty,max=20"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

type UpdatePrivacyRequest struct {
	IsPrivate       bool `json:"isPrivate"`
	ShowEmail       bool `json:"showEmail"`
	ShowPhoneNumber bool `json:"showPhoneNumber"`
	ShowDateOfBirth bool `json:"showDateOfBirth"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ProfileService interface {
	GetUserProfile(ctx context.Context, targetUserID, viewerID string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileView, error)
	UpdatePrivacySettings(ctx context.Context, userID string, req UpdatePrivacyRequest) (*ProfileView, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	UploadAvatar(ctx context.Context, userID string, file *UploadFile) (*ProfileView, error)
	DeleteAvatar(ctx context.Context, userID string) (*ProfileView, error)
}

type profileService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewProfileService(repo *repository.Repository, store storage.Storage, cfg *config.Config) ProfileService {
	return &profileService{
		userRepo: repo.User,
		storage:  store,
		cfg:      cfg,
	}
}

// profileView собирает публичное представление профиля. В открытом профиле
// контакты и дата рождения видны всем; в приватном - только владельцу или
// при явном разрешении соответствующим флагом Show*.
func profileView(user *models.User, viewerID string) *ProfileView {
	isOwn := viewerID != "" && viewerID == user.UserID
	hideContacts := !isOwn && user.IsPrivate

	view := &ProfileView{
		UserID:       user.UserID,
		Username:     user.Username,
		FullName:     user.FullName(),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Bio:          user.Bio,
		AvatarURL:    user.AvatarURL,
		Location:     user.Location,
		Website:      user.Website,
		IsPrivate:    user.IsPrivate,
		CreatedAt:    user.CreatedAt,
		IsOwnProfile: isOwn,
	}

	if !hideContacts || user.ShowEmail {
		email := user.Email
		view.Email = &email
	}
	if !hideContacts || user.ShowPhoneNumber {
		view.PhoneNumber = user.PhoneNumber
	}
	if !hideContacts || user.ShowDateOfBirth {
		view.DateOfBirth = user.DateOfBirth
	}

	return view
}

func (s *profileService) GetUserProfile(ctx context.Context, targetUserID, viewerID string) (*ProfileView, error) {
	user, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return nil, mapNotFound(err, "Пользователь не найден")
	}
	return profileView(user, viewerID), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*ProfileView, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, "Пользователь не найден")
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, NewValidationError("Имя не может быть пустым")
	}
	if req.DateOfBirth != nil {
		if req.DateOfBirth.After(time.Now().AddDate(-minAge, 0, 0)) {
			return nil, NewValidationError("Пользователь должен быть старше 13 лет")
		}
	}

	user.FirstName = firstName
	user.LastName = strings.TrimSpace(req.LastName)
	user.Bio = req.Bio
	user.Location = req.Location
	user.Website = req.Website
	user.PhoneNumber = req.PhoneNumber
	user.DateOfBirth = req.DateOfBirth

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return profileView(user, userID), nil
}

func (s *profileService) UpdatePrivacySettings(ctx context.Context, userID string, req UpdatePrivacyRequest) (*ProfileView, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, "Пользователь не найден")
	}

	user.IsPrivate = req.IsPrivate
	user.ShowEmail = req.ShowEmail
	user.ShowPhoneNumber = req.ShowPhoneNumber
	user.ShowDateOfBirth = req.ShowDateOfBirth

	if err := s.userRepo.UpdatePrivacy(ctx, user); err != nil {
		return nil, err
	}

	return profileView(user, userID), nil
}

func (s *profileService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return mapNotFound(err, "Пользователь не найден")
	}

	if _, err := s.userRepo.VerifyPassword(ctx, user.Email, req.CurrentPassword); err != nil {
		return NewError(ErrUnauthorized, "Неверный текущий пароль")
	}

	if req.NewPassword != req.ConfirmPassword {
		return NewValidationError("Пароли не совпадают")
	}

	if validation := ValidatePassword(req.NewPassword); !validation.IsValid {
		return NewValidationErrors(validation.Errors)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}

func (s *profileService) UploadAvatar(ctx context.Context, userID string, file *UploadFile) (*ProfileView, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, "Пользователь не найден")
	}
	if file == nil {
		return nil, NewValidationError("Файл аватара не передан")
	}

	objectName, url, err := s.storage.Upload(ctx, avatarsFolder, file.FileName, file.Reader, file.Size)
	if err != nil {
		return nil, err
	}

	// старый аватар чистим по возможности
	if user.AvatarObject != nil {
		if delErr := s.storage.Delete(ctx, *user.AvatarObject); delErr != nil {
			log.Printf("не удалось удалить старый аватар пользователя %s: %v", userID, delErr)
		}
	}

	if err := s.userRepo.UpdateAvatar(ctx, userID, &url, &objectName); err != nil {
		return nil, err
	}

	user.AvatarURL = &url
	user.AvatarObject = &objectName
	return profileView(user, userID), nil
}

func (s *profileService) DeleteAvatar(ctx context.Context, userID string) (*ProfileView, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, "Пользователь не найден")
	}

	if user.AvatarObject != nil {
		if err := s.storage.Delete(ctx, *user.AvatarObject); err != nil {
			log.Printf("не удалось удалить аватар пользователя %s: %v", userID, err)
		}
	}

	if err := s.userRepo.UpdateAvatar(ctx, userID, nil, nil); err != nil {
		return nil, err
	}

	user.AvatarURL = nil
	user.AvatarObject = nil
	return profileView(user, userID), nil
}
