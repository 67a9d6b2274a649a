package repositories

import (
	"fmt"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"gorm.io/gorm"
)

// TweetRepository defines the interface for community tweet operations
type TweetRepository interface {
	CreateTweet(tweet *models.Tweet) error
	GetTweetByID(id uint) (*models.Tweet, error)
	GetTweetsByOwner(ownerID uint, page models.PageRequest) ([]models.Tweet, int64, error)
	DeleteTweet(id, ownerID uint) error
}

// PostgresTweetRepository implements TweetRepository for PostgreSQL
type PostgresTweetRepository struct {
	db *gorm.DB
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository
func NewPostgresTweetRepository(db *gorm.DB) *PostgresTweetRepository {
	return &PostgresTweetRepository{db: db}
}

// CreateTweet creates a new tweet
func (r *PostgresTweetRepository) CreateTweet(tweet *models.Tweet) error {
	return r.db.Create(tweet).Error
}

// GetTweetByID retrieves a tweet by ID
func (r *PostgresTweetRepository) GetTweetByID(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// GetTweetsByOwner lists a channel's tweets, newest first
func (r *PostgresTweetRepository) GetTweetsByOwner(ownerID uint, page models.PageRequest) ([]models.Tweet, int64, error) {
	var total int64
	if err := r.db.Model(&models.Tweet{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []models.Tweet
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&tweets).Error
	return tweets, total, err
}

// DeleteTweet removes a tweet owned by ownerID
func (r *PostgresTweetRepository) DeleteTweet(id, ownerID uint) error {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Tweet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tweet not found")
	}
	return nil
}
