package repositories

import (
	"fmt"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"gorm.io/gorm"
)

// VideoRepository defines the interface for video metadata operations
type VideoRepository interface {
	CreateVideo(video *models.Video) error
	GetVideoByID(id uint) (*models.Video, error)
	GetVideosByOwner(ownerID uint, page models.PageRequest) ([]models.Video, int64, error)
	DeleteVideo(id, ownerID uint) error
	IncrementViewCount(id uint) error
	IncrementCommentCount(id uint) error
	DecrementCommentCount(id uint) error
}

// PostgresVideoRepository implements VideoRepository for PostgreSQL
type PostgresVideoRepository struct {
	db *gorm.DB
}

// NewPostgresVideoRepository creates a new PostgresVideoRepository
func NewPostgresVideoRepository(db *gorm.DB) *PostgresVideoRepository {
	return &PostgresVideoRepository{db: db}
}

// CreateVideo stores the metadata of a published video
func (r *PostgresVideoRepository) CreateVideo(video *models.Video) error {
	return r.db.Create(video).Error
}

// GetVideoByID retrieves a video by ID
func (r *PostgresVideoRepository) GetVideoByID(id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// GetVideosByOwner lists a channel's videos, newest first
func (r *PostgresVideoRepository) GetVideosByOwner(ownerID uint, page models.PageRequest) ([]models.Video, int64, error) {
	var total int64
	if err := r.db.Model(&models.Video{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []models.Video
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&videos).Error
	return videos, total, err
}

// DeleteVideo removes a video owned by ownerID
func (r *PostgresVideoRepository) DeleteVideo(id, ownerID uint) error {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Video{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("video not found")
	}
	return nil
}

// IncrementViewCount bumps the view counter of a video
func (r *PostgresVideoRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Video{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// IncrementCommentCount bumps the comment counter of a video
func (r *PostgresVideoRepository) IncrementCommentCount(id uint) error {
	return r.db.Model(&models.Video{}).Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
}

// DecrementCommentCount lowers the comment counter of a video
func (r *PostgresVideoRepository) DecrementCommentCount(id uint) error {
	return r.db.Model(&models.Video{}).Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error
}
