package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/Prajjwal2051/Viewly-sub001/internal/repositories"
	"github.com/Prajjwal2051/Viewly-sub001/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db        *gorm.DB
	echo      *echo.Echo
	users     repositories.UserRepository
	videos    repositories.VideoRepository
	comments  repositories.CommentRepository
	tweets    repositories.TweetRepository
	subs      repositories.SubscriptionRepository
	likes     repositories.LikeRepository
	notifs    repositories.NotificationRepository
	dashboard repositories.DashboardRepository
}

func newTestEnv(t *testing.T) *testEnv {
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

	e := echo.New()
	e.Validator = validators.NewValidator()

	return &testEnv{
		db:        db,
		echo:      e,
		users:     repositories.NewPostgresUserRepository(db),
		videos:    repositories.NewPostgresVideoRepository(db),
		comments:  repositories.NewPostgresCommentRepository(db),
		tweets:    repositories.NewPostgresTweetRepository(db),
		subs:      repositories.NewPostgresSubscriptionRepository(db),
		likes:     repositories.NewPostgresLikeRepository(db),
		notifs:    repositories.NewPostgresNotificationRepository(db),
		dashboard: repositories.NewPostgresDashboardRepository(db),
	}
}

func (env *testEnv) relationshipHandler() *RelationshipHandler {
	return NewRelationshipHandler(env.subs, env.likes, env.users, env.videos, env.comments, env.tweets, env.notifs)
}

func (env *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, FullName: "Test " + username, Email: username + "@example.com"}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createVideo(t *testing.T, ownerID uint, title string) *models.Video {
	t.Helper()
	video := &models.Video{OwnerID: ownerID, Title: title, VideoURL: "https://cdn.example.com/v.mp4", IsPublished: true}
	require.NoError(t, env.db.Create(video).Error)
	return video
}

// newContext builds an Echo context with an optional authenticated user and
// path parameters, returning the recorder capturing the response
func (env *testEnv) newContext(method, target string, body string, userID uint, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

// httpStatus extracts the status an Echo handler produced, whether it wrote
// the response or returned an *echo.HTTPError
func httpStatus(t *testing.T, err error, rec *httptest.ResponseRecorder) int {
	t.Helper()
	if err == nil {
		return rec.Code
	}
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return he.Code
}

// stubWatchEvents satisfies WatchEventRepository without a MongoDB instance
type stubWatchEvents struct {
	growth   []models.DayCount
	recorded []models.WatchEvent
}

func (s *stubWatchEvents) RecordView(_ context.Context, event *models.WatchEvent) error {
	s.recorded = append(s.recorded, *event)
	return nil
}

func (s *stubWatchEvents) ViewGrowthSince(_ context.Context, _ uint, _ time.Time) ([]models.DayCount, error) {
	return s.growth, nil
}

var _ repositories.WatchEventRepository = (*stubWatchEvents)(nil)
