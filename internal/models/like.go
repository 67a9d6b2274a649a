package models

import "time"

// LikeKind discriminates what a like edge points at
type LikeKind string

const (
	LikeKindVideo   LikeKind = "video"
	LikeKindComment LikeKind = "comment"
	LikeKindTweet   LikeKind = "tweet"
)

// LikeTarget is a tagged reference to exactly one likeable entity. Callers
// construct it through VideoTarget/CommentTarget/TweetTarget, so "exactly one
// of video/comment/tweet" holds by construction rather than by runtime check.
type LikeTarget struct {
	Kind LikeKind
	ID   uint
}

func VideoTarget(id uint) LikeTarget   { return LikeTarget{Kind: LikeKindVideo, ID: id} }
func CommentTarget(id uint) LikeTarget { return LikeTarget{Kind: LikeKindComment, ID: id} }
func TweetTarget(id uint) LikeTarget   { return LikeTarget{Kind: LikeKindTweet, ID: id} }

// Like is a directed edge from a user to a video, comment, or tweet. The
// composite unique index keeps at most one edge per (user, kind, target).
type Like struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_kind_target"`
	TargetKind LikeKind  `json:"target_kind" gorm:"size:20;uniqueIndex:idx_user_kind_target"`
	TargetID   uint      `json:"target_id" gorm:"index;uniqueIndex:idx_user_kind_target"`
	CreatedAt  time.Time `json:"created_at"`
}

// LikerItem is the public projection of one user who liked a target
type LikerItem struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	LikedAt   time.Time `json:"liked_at"`
}

// LikedVideoItem is the public projection of one video a user liked
type LikedVideoItem struct {
	ID           uint      `json:"id"`
	OwnerID      uint      `json:"owner_id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    int64     `json:"view_count"`
	LikedAt      time.Time `json:"liked_at"`
}

// LikedCommentItem is the public projection of one comment a user liked
type LikedCommentItem struct {
	ID      uint      `json:"id"`
	VideoID uint      `json:"video_id"`
	OwnerID uint      `json:"owner_id"`
	Content string    `json:"content"`
	LikedAt time.Time `json:"liked_at"`
}

// LikedTweetItem is the public projection of one tweet a user liked
type LikedTweetItem struct {
	ID      uint      `json:"id"`
	OwnerID uint      `json:"owner_id"`
	Content string    `json:"content"`
	LikedAt time.Time `json:"liked_at"`
}
