package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/Prajjwal2051/Viewly-sub001/internal/apperrors"
	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for subscription edge operations.
// Toggle is the only code path allowed to touch users.subscriber_count.
type SubscriptionRepository interface {
	Toggle(subscriberID, channelID uint) (bool, error)
	IsSubscribed(subscriberID, channelID uint) (bool, error)
	GetSubscribers(channelID uint, page models.PageRequest) ([]models.SubscriberItem, int64, error)
	GetSubscribedChannels(subscriberID uint, page models.PageRequest) ([]models.SubscribedChannelItem, int64, error)
	GetSubscriberIDs(channelID uint) ([]uint, error)
	GrowthSince(channelID uint, since time.Time) ([]models.DayCount, error)
}

// PostgresSubscriptionRepository implements SubscriptionRepository for PostgreSQL
type PostgresSubscriptionRepository struct {
	db *gorm.DB
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository
func NewPostgresSubscriptionRepository(db *gorm.DB) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{db: db}
}

// Toggle flips the subscription edge for (subscriberID, channelID) and moves
// the channel's subscriber counter by one, both inside a single transaction.
// It returns the resulting state: true when the edge now exists.
//
// The delete-first shape makes the branch decision part of the transaction
// itself instead of a separate existence check, and the unique index on
// (subscriber_id, channel_id) turns a concurrent double-activation into a
// deterministic duplicate-key error that is reported as "already active".
func (r *PostgresSubscriptionRepository) Toggle(subscriberID, channelID uint) (bool, error) {
	if subscriberID == channelID {
		return false, apperrors.ErrSelfReference
	}

	var active bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
			Delete(&models.Subscription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			active = false
			return adjustCounter(tx, &models.User{}, channelID, "subscriber_count", -1)
		}

		sub := &models.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		active = true
		return adjustCounter(tx, &models.User{}, channelID, "subscriber_count", +1)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the create race: the concurrent toggle committed the edge
			// and its counter increment, so the observable state is active.
			return true, nil
		}
		return false, fmt.Errorf("%w: %v", apperrors.ErrTransactionFailed, err)
	}
	return active, nil
}

// adjustCounter applies a ±1 to a denormalized counter column and aborts the
// enclosing transaction unless exactly one row was touched, so an edge can
// never be committed without its counter delta.
func adjustCounter(tx *gorm.DB, model interface{}, id uint, column string, delta int) error {
	res := tx.Model(model).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("counter update touched %d rows", res.RowsAffected)
	}
	return nil
}

// IsSubscribed reports whether the edge currently exists
func (r *PostgresSubscriptionRepository) IsSubscribed(subscriberID, channelID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// GetSubscribers lists the subscribers of a channel, most recent first.
// Edges whose subscriber profile no longer exists are dropped by the join
// and excluded from the total.
func (r *PostgresSubscriptionRepository) GetSubscribers(channelID uint, page models.PageRequest) ([]models.SubscriberItem, int64, error) {
	base := r.db.Table("subscriptions").
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.SubscriberItem
	err := base.Session(&gorm.Session{}).
		Select("users.id, users.username, users.full_name, users.avatar_url, subscriptions.created_at AS subscribed_at").
		Order("subscriptions.created_at DESC, subscriptions.id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Scan(&items).Error
	return items, total, err
}

// GetSubscribedChannels lists the channels a user subscribed to, most recent first
func (r *PostgresSubscriptionRepository) GetSubscribedChannels(subscriberID uint, page models.PageRequest) ([]models.SubscribedChannelItem, int64, error) {
	base := r.db.Table("subscriptions").
		Joins("JOIN users ON users.id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.SubscribedChannelItem
	err := base.Session(&gorm.Session{}).
		Select("users.id, users.username, users.full_name, users.avatar_url, users.subscriber_count, subscriptions.created_at AS subscribed_at").
		Order("subscriptions.created_at DESC, subscriptions.id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Scan(&items).Error
	return items, total, err
}

// GetSubscriberIDs returns the ids of every current subscriber of a channel,
// used by the upload notification fan-out
func (r *PostgresSubscriptionRepository) GetSubscriberIDs(channelID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).
		Pluck("subscriber_id", &ids).Error
	return ids, err
}

// GrowthSince buckets new-subscriber edges per day from `since` onward. Day
// truncation happens in Go so the query stays portable across the production
// Postgres and the sqlite test databases; the window is at most a month of
// edges for one channel.
func (r *PostgresSubscriptionRepository) GrowthSince(channelID uint, since time.Time) ([]models.DayCount, error) {
	var stamps []time.Time
	err := r.db.Model(&models.Subscription{}).
		Where("channel_id = ? AND created_at >= ?", channelID, since).
		Order("created_at ASC").
		Pluck("created_at", &stamps).Error
	if err != nil {
		return nil, err
	}
	return bucketByDay(stamps), nil
}

func bucketByDay(stamps []time.Time) []models.DayCount {
	buckets := make([]models.DayCount, 0, len(stamps))
	for _, ts := range stamps {
		day := ts.UTC().Format("2006-01-02")
		if n := len(buckets); n > 0 && buckets[n-1].Day == day {
			buckets[n-1].Count++
			continue
		}
		buckets = append(buckets, models.DayCount{Day: day, Count: 1})
	}
	return buckets
}
