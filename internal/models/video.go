package models

import "time"

// Video represents an uploaded video's metadata. Transcoding and storage
// happen upstream; this service only receives the resulting URLs.
// LikeCount is owned by the like toggle; ViewCount and CommentCount are
// bumped by the view and comment paths.
type Video struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OwnerID      uint      `json:"owner_id" gorm:"index"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	ViewCount    int64     `json:"view_count" gorm:"not null;default:0"`
	LikeCount    int64     `json:"like_count" gorm:"not null;default:0"`
	CommentCount int64     `json:"comment_count" gorm:"not null;default:0"`
	IsPublished  bool      `json:"is_published" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateVideoRequest defines the request body for publishing a video
type CreateVideoRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	Description  string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	VideoURL     string  `json:"video_url" validate:"required,url"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Duration     float64 `json:"duration,omitempty" validate:"omitempty,min=0"`
}
