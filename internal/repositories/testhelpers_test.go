package repositories

import (
	"testing"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema. The
// pool is pinned to one connection so every query sees the same :memory: DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.Comment{},
		&models.Tweet{},
		&models.Subscription{},
		&models.Like{},
		&models.Notification{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		FullName: "Test " + username,
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, ownerID uint, title string) *models.Video {
	t.Helper()
	video := &models.Video{
		OwnerID:     ownerID,
		Title:       title,
		VideoURL:    "https://cdn.example.com/" + title + ".mp4",
		IsPublished: true,
	}
	require.NoError(t, db.Create(video).Error)
	return video
}

// liveEdgeCount returns the number of subscription edges pointing at a channel
func liveEdgeCount(t *testing.T, db *gorm.DB, channelID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error)
	return count
}

// subscriberCounter reads the denormalized counter off the channel profile
func subscriberCounter(t *testing.T, db *gorm.DB, channelID uint) int64 {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, channelID).Error)
	return user.SubscriberCount
}
