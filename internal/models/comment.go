package models

import "time"

// Comment represents a comment on a video
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VideoID   uint      `json:"video_id" gorm:"index"`
	OwnerID   uint      `json:"owner_id" gorm:"index"`
	Content   string    `json:"content"`
	LikeCount int64     `json:"like_count" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommentRequest defines the request body for commenting on a video
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
