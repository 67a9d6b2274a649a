package models

import "time"

// Notification represents an event delivered to a user's inbox
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Kind        string    `json:"kind" gorm:"size:30;index"` // subscription, video_like, comment_like, tweet_like, comment, upload
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	TargetKind  string    `json:"target_kind,omitempty" gorm:"size:20"` // video, comment, tweet, user
	TargetID    uint      `json:"target_id,omitempty"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
