package models

import (
	"strings"
	"time"
)

type User struct {
	UserID                 string     `json:"userId" db:"user_id"`
	Username               string     `json:"username" db:"username"`
	Email                  string     `json:"email" db:"email"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	FirstName              string     `json:"firstName" db:"first_name"`
	LastName               string     `json:"lastName" db:"last_name"`
	Bio                    *string    `json:"bio" db:"bio"`
	AvatarURL              *string    `json:"avatarUrl" db:"avatar_url"`
	AvatarObject           *string    `json:"-" db:"avatar_object"`
	Location               *string    `json:"location" db:"location"`
	Website                *string    `json:"website" db:"website"`
	PhoneNumber            *string    `json:"phoneNumber" db:"phone_number"`
	DateOfBirth            *time.Time `json:"dateOfBirth" db:"date_of_birth"`
	IsPrivate              bool       `json:"isPrivate" db:"is_private"`
	ShowEmail              bool       `json:"showEmail" db:"show_email"`
	ShowPhoneNumber        bool       `json:"showPhoneNumber" db:"show_phone_number"`
	ShowDateOfBirth        bool       `json:"showDateOfBirth" db:"show_date_of_birth"`
	IsActive               bool       `json:"isActive" db:"is_active"`
	RefreshToken           string     `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time  `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time  `json:"updatedAt" db:"updated_at"`
	LastLogin              *time.Time `json:"lastLogin" db:"last_login"`
}

// FullName - полное имя для отображения в ответах
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type PostPrivacy int

const (
	PrivacyPublic PostPrivacy = iota
	PrivacyFriends
	PrivacyPrivate
)

func (p PostPrivacy) Valid() bool {
	return p >= PrivacyPublic && p <= PrivacyPrivate
}

type Post struct {
	PostID      string      `json:"postId" db:"post_id"`
	UserID      string      `json:"userId" db:"user_id"`
	Content     string      `json:"content" db:"content"`
	ImageURL    *string     `json:"imageUrl" db:"image_url"`
	ImageObject *string     `json:"-" db:"image_object"`
	VideoURL    *string     `json:"videoUrl" db:"video_url"`
	VideoObject *string     `json:"-" db:"video_object"`
	Privacy     PostPrivacy `json:"privacy" db:"privacy"`
	IsDeleted   bool        `json:"-" db:"is_deleted"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// MediaType - тип медиа в комментарии (строго один на комментарий)
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaGif   MediaType = "gif"
)

func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo || t == MediaGif
}

type Comment struct {
	CommentID       string     `json:"commentId" db:"comment_id"`
	PostID          string     `json:"postId" db:"post_id"`
	UserID          string     `json:"userId" db:"user_id"`
	ParentCommentID *string    `json:"parentCommentId" db:"parent_comment_id"`
	Content         string     `json:"content" db:"content"`
	MediaType       *MediaType `json:"mediaType" db:"media_type"`
	MediaURL        *string    `json:"mediaUrl" db:"media_url"`
	MediaObject     *string    `json:"-" db:"media_object"`
	IsDeleted       bool       `json:"-" db:"is_deleted"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsReply - является ли комментарий ответом на другой комментарий
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}

type Reaction struct {
	ReactionID string       `json:"reactionId" db:"reaction_id"`
	PostID     string       `json:"postId" db:"post_id"`
	UserID     string       `json:"userId" db:"user_id"`
	Type       ReactionType `json:"type" db:"type"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`
}

type CommentReaction struct {
	ReactionID string       `json:"reactionId" db:"reaction_id"`
	CommentID  string       `json:"commentId" db:"comment_id"`
	UserID     string       `json:"userId" db:"user_id"`
	Type       ReactionType `json:"type" db:"type"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`
}
