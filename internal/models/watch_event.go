package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchEvent records one playback of a video, stored in MongoDB. The
// dashboard's view-growth series is aggregated from this collection.
type WatchEvent struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	VideoID   uint               `json:"video_id" bson:"video_id"`
	ChannelID uint               `json:"channel_id" bson:"channel_id"`
	ViewerID  uint               `json:"viewer_id" bson:"viewer_id"`
	WatchedAt time.Time          `json:"watched_at" bson:"watched_at"`
}

// DayCount is one bucket of a day-resolution growth series
type DayCount struct {
	Day   string `json:"day" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}
