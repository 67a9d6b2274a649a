package repositories

import (
	"testing"
	"time"

	"github.com/Prajjwal2051/Viewly-sub001/internal/apperrors"
	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionToggle_DoubleToggleIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	subscriber := createTestUser(t, db, "viewer")
	channel := createTestUser(t, db, "channel")

	active, err := repo.Toggle(subscriber.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, int64(1), subscriberCounter(t, db, channel.ID))
	assert.Equal(t, int64(1), liveEdgeCount(t, db, channel.ID))

	active, err = repo.Toggle(subscriber.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, int64(0), subscriberCounter(t, db, channel.ID))
	assert.Equal(t, int64(0), liveEdgeCount(t, db, channel.ID))
}

func TestSubscriptionToggle_SelfSubscriptionRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	user := createTestUser(t, db, "loner")

	_, err := repo.Toggle(user.ID, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrSelfReference)
	assert.Equal(t, int64(0), subscriberCounter(t, db, user.ID))
	assert.Equal(t, int64(0), liveEdgeCount(t, db, user.ID))
}

func TestSubscriptionToggle_MissingChannelAborts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	subscriber := createTestUser(t, db, "viewer")

	// The counter update touches zero rows, so the whole transaction rolls
	// back and no orphan edge survives.
	_, err := repo.Toggle(subscriber.ID, 9999)
	assert.ErrorIs(t, err, apperrors.ErrTransactionFailed)
	assert.Equal(t, int64(0), liveEdgeCount(t, db, 9999))
}

func TestSubscriptionToggle_CounterMatchesEdgesAfterManyToggles(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	channel := createTestUser(t, db, "channel")

	viewers := make([]*models.User, 6)
	for i := range viewers {
		viewers[i] = createTestUser(t, db, "viewer"+string(rune('a'+i)))
	}

	// Every viewer subscribes; half of them unsubscribe again.
	for _, v := range viewers {
		_, err := repo.Toggle(v.ID, channel.ID)
		require.NoError(t, err)
	}
	for _, v := range viewers[:3] {
		_, err := repo.Toggle(v.ID, channel.ID)
		require.NoError(t, err)
	}

	assert.Equal(t, liveEdgeCount(t, db, channel.ID), subscriberCounter(t, db, channel.ID))
	assert.Equal(t, int64(3), subscriberCounter(t, db, channel.ID))
}

func TestIsSubscribed(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	subscriber := createTestUser(t, db, "viewer")
	channel := createTestUser(t, db, "channel")

	subscribed, err := repo.IsSubscribed(subscriber.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	_, err = repo.Toggle(subscriber.ID, channel.ID)
	require.NoError(t, err)

	subscribed, err = repo.IsSubscribed(subscriber.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestGetSubscribers_PaginationIsCompleteAndOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	channel := createTestUser(t, db, "channel")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var expected []uint // subscriber ids, newest edge first
	for i := 0; i < 25; i++ {
		viewer := createTestUser(t, db, "sub"+string(rune('a'+i/10))+string(rune('a'+i%10)))
		edge := &models.Subscription{
			SubscriberID: viewer.ID,
			ChannelID:    channel.ID,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(edge).Error)
		expected = append([]uint{viewer.ID}, expected...)
	}

	var got []uint
	var lastSeen time.Time
	for page := 1; ; page++ {
		items, total, err := repo.GetSubscribers(channel.ID, models.NormalizePage(page, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		if page == 1 {
			require.Len(t, items, 10)
			lastSeen = items[0].SubscribedAt
		}
		for _, item := range items {
			assert.False(t, item.SubscribedAt.After(lastSeen), "items must be ordered newest first")
			lastSeen = item.SubscribedAt
			got = append(got, item.ID)
		}
		if len(got) >= 25 {
			assert.Len(t, items, 5, "last page holds the remainder")
			break
		}
	}

	assert.Equal(t, expected, got, "concatenated pages reproduce every edge exactly once")
}

func TestGetSubscribers_DeletedProfileExcluded(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	channel := createTestUser(t, db, "channel")
	kept := createTestUser(t, db, "kept")
	gone := createTestUser(t, db, "gone")

	_, err := repo.Toggle(kept.ID, channel.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(gone.ID, channel.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.User{}, gone.ID).Error)

	items, total, err := repo.GetSubscribers(channel.ID, models.NormalizePage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "dangling edge excluded from the total")
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)
}

func TestGetSubscribedChannels(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	viewer := createTestUser(t, db, "viewer")
	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")

	_, err := repo.Toggle(viewer.ID, first.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(viewer.ID, second.ID)
	require.NoError(t, err)

	items, total, err := repo.GetSubscribedChannels(viewer.ID, models.NormalizePage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].SubscriberCount, "projection carries the channel's counter")
}

func TestGetSubscriberIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	channel := createTestUser(t, db, "channel")
	a := createTestUser(t, db, "a")
	b := createTestUser(t, db, "b")

	_, err := repo.Toggle(a.ID, channel.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(b.ID, channel.ID)
	require.NoError(t, err)

	ids, err := repo.GetSubscriberIDs(channel.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{a.ID, b.ID}, ids)
}

func TestGrowthSince_BucketsEdgesPerDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSubscriptionRepository(db)
	channel := createTestUser(t, db, "channel")

	day1 := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 22, 9, 0, 0, 0, time.UTC)
	stamps := []time.Time{day1, day1.Add(2 * time.Hour), day2}
	for i, ts := range stamps {
		viewer := createTestUser(t, db, "g"+string(rune('a'+i)))
		edge := &models.Subscription{SubscriberID: viewer.ID, ChannelID: channel.ID, CreatedAt: ts}
		require.NoError(t, db.Create(edge).Error)
	}
	// An edge before the window must not appear
	old := createTestUser(t, db, "old")
	require.NoError(t, db.Create(&models.Subscription{
		SubscriberID: old.ID, ChannelID: channel.ID,
		CreatedAt: day1.AddDate(0, -2, 0),
	}).Error)

	buckets, err := repo.GrowthSince(channel.ID, day1.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, []models.DayCount{
		{Day: "2026-08-20", Count: 2},
		{Day: "2026-08-22", Count: 1},
	}, buckets)
}
