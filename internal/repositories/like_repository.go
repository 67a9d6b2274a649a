package repositories

import (
	"errors"
	"fmt"

	"github.com/Prajjwal2051/Viewly-sub001/internal/apperrors"
	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like edge operations. Toggle is
// the only code path allowed to touch the like_count columns.
type LikeRepository interface {
	Toggle(userID uint, target models.LikeTarget) (bool, error)
	IsLiked(userID uint, target models.LikeTarget) (bool, error)
	GetLikers(target models.LikeTarget, page models.PageRequest) ([]models.LikerItem, int64, error)
	GetLikedVideos(userID uint, page models.PageRequest) ([]models.LikedVideoItem, int64, error)
	GetLikedComments(userID uint, page models.PageRequest) ([]models.LikedCommentItem, int64, error)
	GetLikedTweets(userID uint, page models.PageRequest) ([]models.LikedTweetItem, int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// counterModel maps a like target kind to the table carrying its counter
func counterModel(kind models.LikeKind) (interface{}, error) {
	switch kind {
	case models.LikeKindVideo:
		return &models.Video{}, nil
	case models.LikeKindComment:
		return &models.Comment{}, nil
	case models.LikeKindTweet:
		return &models.Tweet{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown like kind %q", apperrors.ErrInvalidArgument, kind)
	}
}

// Toggle flips the like edge for (userID, target) and moves the target's
// like counter by one inside a single transaction, returning the resulting
// state. Concurrent double-activation resolves through the unique index the
// same way as subscriptions: the loser reports "already active".
func (r *PostgresLikeRepository) Toggle(userID uint, target models.LikeTarget) (bool, error) {
	model, err := counterModel(target.Kind)
	if err != nil {
		return false, err
	}

	var active bool
	err = r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			active = false
			return adjustCounter(tx, model, target.ID, "like_count", -1)
		}

		like := &models.Like{UserID: userID, TargetKind: target.Kind, TargetID: target.ID}
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		active = true
		return adjustCounter(tx, model, target.ID, "like_count", +1)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, fmt.Errorf("%w: %v", apperrors.ErrTransactionFailed, err)
	}
	return active, nil
}

// IsLiked reports whether the edge currently exists
func (r *PostgresLikeRepository) IsLiked(userID uint, target models.LikeTarget) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID).
		Count(&count).Error
	return count > 0, err
}

// GetLikers lists the users who liked a target, most recent first
func (r *PostgresLikeRepository) GetLikers(target models.LikeTarget, page models.PageRequest) ([]models.LikerItem, int64, error) {
	base := r.db.Table("likes").
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.target_kind = ? AND likes.target_id = ?", target.Kind, target.ID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.LikerItem
	err := base.Session(&gorm.Session{}).
		Select("users.id, users.username, users.full_name, users.avatar_url, likes.created_at AS liked_at").
		Order("likes.created_at DESC, likes.id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Scan(&items).Error
	return items, total, err
}

// GetLikedVideos lists the videos a user liked, most recently liked first
func (r *PostgresLikeRepository) GetLikedVideos(userID uint, page models.PageRequest) ([]models.LikedVideoItem, int64, error) {
	base := r.db.Table("likes").
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.user_id = ? AND likes.target_kind = ?", userID, models.LikeKindVideo)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.LikedVideoItem
	err := base.Session(&gorm.Session{}).
		Select("videos.id, videos.owner_id, videos.title, videos.thumbnail_url, videos.view_count, likes.created_at AS liked_at").
		Order("likes.created_at DESC, likes.id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Scan(&items).Error
	return items, total, err
}

// GetLikedComments lists the comments a user liked, most recently liked first
func (r *PostgresLikeRepository) GetLikedComments(userID uint, page models.PageRequest) ([]models.LikedCommentItem, int64, error) {
	base := r.db.Table("likes").
		Joins("JOIN comments ON comments.id = likes.target_id").
		Where("likes.user_id = ? AND likes.target_kind = ?", userID, models.LikeKindComment)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.LikedCommentItem
	err := base.Session(&gorm.Session{}).
		Select("comments.id, comments.video_id, comments.owner_id, comments.content, likes.created_at AS liked_at").
		Order("likes.created_at DESC, likes.id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Scan(&items).Error
	return items, total, err
}

// GetLikedTweets lists the tweets a user liked, most recently liked first
func (r *PostgresLikeRepository) GetLikedTweets(userID uint, page models.PageRequest) ([]models.LikedTweetItem, int64, error) {
	base := r.db.Table("likes").
		Joins("JOIN tweets ON tweets.id = likes.target_id").
		Where("likes.user_id = ? AND likes.target_kind = ?", userID, models.LikeKindTweet)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.LikedTweetItem
	err := base.Session(&gorm.Session{}).
		Select("tweets.id, tweets.owner_id, tweets.content, likes.created_at AS liked_at").
		Order("likes.created_at DESC, likes.id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Scan(&items).Error
	return items, total, err
}
