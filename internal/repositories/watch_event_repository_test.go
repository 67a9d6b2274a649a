package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// The pipeline itself runs server-side in MongoDB; these tests pin its shape
// so the stages match what the dashboard expects.
func TestViewGrowthPipeline_Stages(t *testing.T) {
	since := time.Date(2026, 7, 28, 0, 0, 0, 0, time.UTC)
	pipeline := viewGrowthPipeline(42, since)
	require.Len(t, pipeline, 3)

	match := pipeline[0]
	assert.Equal(t, "$match", match[0].Key)
	filter, ok := match[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "channel_id", filter[0].Key)
	assert.Equal(t, uint(42), filter[0].Value)
	assert.Equal(t, "watched_at", filter[1].Key)
	window, ok := filter[1].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$gte", window[0].Key)
	assert.Equal(t, since, window[0].Value)

	group := pipeline[1]
	assert.Equal(t, "$group", group[0].Key)
	grouping, ok := group[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "_id", grouping[0].Key, "buckets keyed by formatted day")
	assert.Equal(t, "count", grouping[1].Key)

	sort := pipeline[2]
	assert.Equal(t, "$sort", sort[0].Key)
	order, ok := sort[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "_id", order[0].Key)
	assert.Equal(t, 1, order[0].Value, "series returned chronologically")
}
