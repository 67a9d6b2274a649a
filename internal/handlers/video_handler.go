package handlers

import (
	"log"
	"net/http"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/Prajjwal2051/Viewly-sub001/internal/repositories"
	"github.com/labstack/echo/v4"
)

// VideoHandler handles video metadata HTTP requests. Upload and transcoding
// happen upstream; this service receives the resulting URLs.
type VideoHandler struct {
	videoRepository        repositories.VideoRepository
	userRepository         repositories.UserRepository
	subscriptionRepository repositories.SubscriptionRepository
	notificationRepository repositories.NotificationRepository
	watchEventRepository   repositories.WatchEventRepository
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(
	videoRepo repositories.VideoRepository,
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	notifRepo repositories.NotificationRepository,
	watchRepo repositories.WatchEventRepository,
) *VideoHandler {
	return &VideoHandler{
		videoRepository:        videoRepo,
		userRepository:         userRepo,
		subscriptionRepository: subRepo,
		notificationRepository: notifRepo,
		watchEventRepository:   watchRepo,
	}
}

// RegisterVideoRoutes registers video-related routes
func (h *VideoHandler) RegisterVideoRoutes(g *echo.Group) {
	g.POST("/videos", h.CreateVideo)
	g.GET("/videos/:id", h.GetVideo)
	g.DELETE("/videos/:id", h.DeleteVideo)
	g.GET("/users/:id/videos", h.GetVideosByUser)
}

// CreateVideo publishes a video and fans out an upload notification to every
// current subscriber of the channel
func (h *VideoHandler) CreateVideo(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	video := &models.Video{
		OwnerID:      currentUserID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		IsPublished:  true,
	}
	if err := h.videoRepository.CreateVideo(video); err != nil {
		log.Printf("video create failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not create the video")
	}

	h.notifySubscribers(currentUserID, video)

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": video})
}

// notifySubscribers batch-inserts one upload notification per subscriber
func (h *VideoHandler) notifySubscribers(ownerID uint, video *models.Video) {
	owner, err := h.userRepository.GetUserByID(ownerID)
	if err != nil {
		log.Printf("upload fan-out skipped, owner %d not found: %v", ownerID, err)
		return
	}

	subscriberIDs, err := h.subscriptionRepository.GetSubscriberIDs(ownerID)
	if err != nil {
		log.Printf("upload fan-out skipped, subscriber lookup failed: %v", err)
		return
	}

	notifications := make([]models.Notification, 0, len(subscriberIDs))
	for _, recipientID := range subscriberIDs {
		notifications = append(notifications, models.Notification{
			Kind:        "upload",
			ActorID:     ownerID,
			RecipientID: recipientID,
			TargetKind:  "video",
			TargetID:    video.ID,
			Message:     owner.Username + " uploaded: " + video.Title,
		})
	}
	if err := h.notificationRepository.CreateNotifications(notifications); err != nil {
		log.Printf("upload fan-out failed for video %d: %v", video.ID, err)
	}
}

// GetVideo returns a video and records the playback: the view counter is
// bumped and a watch event lands in the analytics collection
func (h *VideoHandler) GetVideo(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}

	video, err := h.videoRepository.GetVideoByID(videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}

	if err := h.videoRepository.IncrementViewCount(videoID); err != nil {
		log.Printf("view count increment failed for video %d: %v", videoID, err)
	} else {
		video.ViewCount++
	}

	event := &models.WatchEvent{VideoID: video.ID, ChannelID: video.OwnerID, ViewerID: currentUserID}
	if err := h.watchEventRepository.RecordView(c.Request().Context(), event); err != nil {
		log.Printf("watch event record failed for video %d: %v", videoID, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": video})
}

// DeleteVideo removes a video owned by the authenticated user
func (h *VideoHandler) DeleteVideo(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}

	if err := h.videoRepository.DeleteVideo(videoID, currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetVideosByUser lists a channel's videos
func (h *VideoHandler) GetVideosByUser(c echo.Context) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ownerID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	page := parsePagination(c)

	videos, total, err := h.videoRepository.GetVideosByOwner(ownerID, page)
	if err != nil {
		log.Printf("video listing failed for user %d: %v", ownerID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load videos")
	}
	return c.JSON(http.StatusOK, pageResponse(videos, total, page))
}
