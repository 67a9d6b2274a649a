package repositories

import (
	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"gorm.io/gorm"
)

// ChannelStats are the aggregate totals shown on a channel's dashboard
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalComments    int64 `json:"total_comments"`
	TotalLikes       int64 `json:"total_likes"`
}

// DashboardRepository defines the read-only aggregate queries behind the
// channel dashboard
type DashboardRepository interface {
	GetChannelStats(channelID uint) (*ChannelStats, error)
	GetTopVideo(channelID uint) (*models.Video, error)
}

// PostgresDashboardRepository implements DashboardRepository for PostgreSQL
type PostgresDashboardRepository struct {
	db *gorm.DB
}

// NewPostgresDashboardRepository creates a new PostgresDashboardRepository
func NewPostgresDashboardRepository(db *gorm.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

// GetChannelStats computes the dashboard totals for one channel. Subscribers
// come from the denormalized counter the toggle engine maintains; the rest
// are live aggregates over owned rows.
func (r *PostgresDashboardRepository) GetChannelStats(channelID uint) (*ChannelStats, error) {
	stats := &ChannelStats{}

	if err := r.db.Model(&models.Video{}).Where("owner_id = ?", channelID).
		Count(&stats.TotalVideos).Error; err != nil {
		return nil, err
	}

	type sums struct {
		Views int64
		Likes int64
	}
	var s sums
	if err := r.db.Model(&models.Video{}).Where("owner_id = ?", channelID).
		Select("COALESCE(SUM(view_count), 0) AS views, COALESCE(SUM(like_count), 0) AS likes").
		Scan(&s).Error; err != nil {
		return nil, err
	}
	stats.TotalViews = s.Views
	stats.TotalLikes = s.Likes

	if err := r.db.Table("comments").
		Joins("JOIN videos ON videos.id = comments.video_id").
		Where("videos.owner_id = ?", channelID).
		Count(&stats.TotalComments).Error; err != nil {
		return nil, err
	}

	var channel models.User
	if err := r.db.Select("subscriber_count").First(&channel, channelID).Error; err != nil {
		return nil, err
	}
	stats.TotalSubscribers = channel.SubscriberCount

	return stats, nil
}

// GetTopVideo returns the channel's highest-view video, or nil when the
// channel has no videos
func (r *PostgresDashboardRepository) GetTopVideo(channelID uint) (*models.Video, error) {
	var videos []models.Video
	err := r.db.Where("owner_id = ?", channelID).
		Order("view_count DESC, id ASC").
		Limit(1).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return &videos[0], nil
}
