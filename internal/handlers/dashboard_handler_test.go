package handlers

import (
	"net/http"
	"testing"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChannelStats_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	h := NewDashboardHandler(env.dashboard, env.subs, &stubWatchEvents{})
	env.createUser(t, "owner")
	stranger := env.createUser(t, "stranger")

	c, rec := env.newContext(http.MethodGet, "/", "", stranger.ID, map[string]string{"channel_id": "1"})
	err := h.GetChannelStats(c)
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err, rec))
}

func TestGetChannelStats_RequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)
	h := NewDashboardHandler(env.dashboard, env.subs, &stubWatchEvents{})

	c, rec := env.newContext(http.MethodGet, "/", "", 0, map[string]string{"channel_id": "1"})
	err := h.GetChannelStats(c)
	assert.Equal(t, http.StatusUnauthorized, httpStatus(t, err, rec))
}

func TestGetChannelStats_ReturnsTotalsAndGrowth(t *testing.T) {
	env := newTestEnv(t)
	watch := &stubWatchEvents{growth: []models.DayCount{{Day: "2026-08-01", Count: 7}}}
	h := NewDashboardHandler(env.dashboard, env.subs, watch)
	owner := env.createUser(t, "owner")
	fan := env.createUser(t, "fan")

	video := env.createVideo(t, owner.ID, "top")
	require.NoError(t, env.db.Model(video).Update("view_count", 42).Error)
	_, err := env.subs.Toggle(fan.ID, owner.ID)
	require.NoError(t, err)

	c, rec := env.newContext(http.MethodGet, "/", "", owner.ID, map[string]string{"channel_id": "1"})
	require.NoError(t, h.GetChannelStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total_videos"])
	assert.Equal(t, float64(42), stats["total_views"])
	assert.Equal(t, float64(1), stats["total_subscribers"])

	topVideo := data["top_video"].(map[string]interface{})
	assert.Equal(t, "top", topVideo["title"])

	viewGrowth := data["view_growth"].([]interface{})
	require.Len(t, viewGrowth, 1)
	assert.Equal(t, float64(7), viewGrowth[0].(map[string]interface{})["count"])

	subGrowth := data["subscriber_growth"].([]interface{})
	require.Len(t, subGrowth, 1)
	assert.Equal(t, float64(1), subGrowth[0].(map[string]interface{})["count"])
}
