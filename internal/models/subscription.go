package models

import "time"

// Subscription is a directed edge from a subscriber to a channel. The unique
// index backs toggle idempotence under concurrency: a duplicate create fails
// deterministically instead of silently producing a second edge.
type Subscription struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SubscriberID uint      `json:"subscriber_id" gorm:"index;uniqueIndex:idx_subscriber_channel"`
	ChannelID    uint      `json:"channel_id" gorm:"index;uniqueIndex:idx_subscriber_channel"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubscriberItem is the public projection of one subscriber of a channel
type SubscriberItem struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	AvatarURL    string    `json:"avatar_url"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// SubscribedChannelItem is the public projection of one channel a user follows
type SubscribedChannelItem struct {
	ID              uint      `json:"id"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
	AvatarURL       string    `json:"avatar_url"`
	SubscriberCount int64     `json:"subscriber_count"`
	SubscribedAt    time.Time `json:"subscribed_at"`
}
