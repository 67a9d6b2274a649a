package repositories

import (
	"context"
	"time"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WatchEventRepository defines the interface for the MongoDB watch-event
// collection backing the dashboard's view-growth series
type WatchEventRepository interface {
	RecordView(ctx context.Context, event *models.WatchEvent) error
	ViewGrowthSince(ctx context.Context, channelID uint, since time.Time) ([]models.DayCount, error)
}

// MongoWatchEventRepository implements WatchEventRepository for MongoDB
type MongoWatchEventRepository struct {
	collection *mongo.Collection
}

// NewMongoWatchEventRepository creates a new MongoWatchEventRepository
func NewMongoWatchEventRepository(db *mongo.Database) *MongoWatchEventRepository {
	return &MongoWatchEventRepository{collection: db.Collection("watch_events")}
}

// RecordView appends one playback event
func (r *MongoWatchEventRepository) RecordView(ctx context.Context, event *models.WatchEvent) error {
	event.ID = primitive.NewObjectID()
	if event.WatchedAt.IsZero() {
		event.WatchedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// viewGrowthPipeline buckets a channel's watch events per day from `since`
// onward: match on channel and window, group on the formatted day, then sort
// chronologically.
func viewGrowthPipeline(channelID uint, since time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "channel_id", Value: channelID},
			{Key: "watched_at", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$watched_at"},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// ViewGrowthSince aggregates the per-day view counts of a channel
func (r *MongoWatchEventRepository) ViewGrowthSince(ctx context.Context, channelID uint, since time.Time) ([]models.DayCount, error) {
	cursor, err := r.collection.Aggregate(ctx, viewGrowthPipeline(channelID, since))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var buckets []models.DayCount
	if err = cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
