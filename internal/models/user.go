package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a channel profile. SubscriberCount is denormalized and is
// only ever mutated inside the subscription toggle transaction.
type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Username        string    `json:"username" gorm:"size:50;uniqueIndex"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email" gorm:"uniqueIndex"`
	AvatarURL       string    `json:"avatar_url"`
	CoverImageURL   string    `json:"cover_image_url"`
	SubscriberCount int64     `json:"subscriber_count" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RegisterUserRequest defines the request body for creating a channel profile.
// Credentials and token issuance live in the identity service; this backend
// only stores the public profile.
type RegisterUserRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=50"`
	FullName      string `json:"full_name" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	AvatarURL     string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	CoverImageURL string `json:"cover_image_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
