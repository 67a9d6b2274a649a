package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/Prajjwal2051/Viewly-sub001/internal/repositories"
	"github.com/labstack/echo/v4"
)

// growthWindowDays is the trailing window of the dashboard growth series
const growthWindowDays = 30

// DashboardHandler serves a channel's aggregate statistics
type DashboardHandler struct {
	dashboardRepository    repositories.DashboardRepository
	subscriptionRepository repositories.SubscriptionRepository
	watchEventRepository   repositories.WatchEventRepository
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashRepo repositories.DashboardRepository, subRepo repositories.SubscriptionRepository, watchRepo repositories.WatchEventRepository) *DashboardHandler {
	return &DashboardHandler{
		dashboardRepository:    dashRepo,
		subscriptionRepository: subRepo,
		watchEventRepository:   watchRepo,
	}
}

// RegisterDashboardRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard/stats/:channel_id", h.GetChannelStats)
}

// GetChannelStats returns the owner-only dashboard: totals, trailing-30-day
// growth series for views and new subscribers, and the top video
func (h *DashboardHandler) GetChannelStats(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	channelID, err := parseIDParam(c, "channel_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid channel ID")
	}
	if channelID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Dashboard is only visible to the channel owner")
	}

	stats, err := h.dashboardRepository.GetChannelStats(channelID)
	if err != nil {
		log.Printf("dashboard stats failed for channel %d: %v", channelID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load channel stats")
	}

	topVideo, err := h.dashboardRepository.GetTopVideo(channelID)
	if err != nil {
		log.Printf("top video lookup failed for channel %d: %v", channelID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load channel stats")
	}

	since := time.Now().AddDate(0, 0, -growthWindowDays)

	subscriberGrowth, err := h.subscriptionRepository.GrowthSince(channelID, since)
	if err != nil {
		log.Printf("subscriber growth failed for channel %d: %v", channelID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load channel stats")
	}

	viewGrowth, err := h.watchEventRepository.ViewGrowthSince(c.Request().Context(), channelID, since)
	if err != nil {
		log.Printf("view growth failed for channel %d: %v", channelID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load channel stats")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"stats":             stats,
			"top_video":         topVideo,
			"subscriber_growth": subscriberGrowth,
			"view_growth":       viewGrowth,
		},
	})
}
