package handlers

import (
	"log"
	"net/http"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/Prajjwal2051/Viewly-sub001/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	videoRepository        repositories.VideoRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	videoRepo repositories.VideoRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		videoRepository:        videoRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/videos/:video_id/comments", h.CreateComment)
	g.GET("/videos/:video_id/comments", h.GetCommentsByVideo)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a new comment on a video and notifies the video's
// owner through the same notification interface the toggle engine uses
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	video, err := h.videoRepository.GetVideoByID(videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}

	comment := &models.Comment{
		VideoID: videoID,
		OwnerID: currentUserID,
		Content: req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		log.Printf("comment create failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not create the comment")
	}

	if err := h.videoRepository.IncrementCommentCount(videoID); err != nil {
		log.Printf("comment count increment failed for video %d: %v", videoID, err)
	}

	if video.OwnerID != currentUserID {
		h.notifyVideoOwner(currentUserID, video, comment)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": comment})
}

func (h *CommentHandler) notifyVideoOwner(actorID uint, video *models.Video, comment *models.Comment) {
	actor, err := h.userRepository.GetUserByID(actorID)
	if err != nil {
		log.Printf("comment notification skipped, actor %d not found: %v", actorID, err)
		return
	}
	notif := &models.Notification{
		Kind:        "comment",
		ActorID:     actorID,
		RecipientID: video.OwnerID,
		TargetKind:  "comment",
		TargetID:    comment.ID,
		Message:     actor.Username + " commented on your video",
	}
	if err := h.notificationRepository.CreateNotification(notif); err != nil {
		log.Printf("failed to create comment notification: %v", err)
	}
}

// GetCommentsByVideo lists a video's comments, newest first
func (h *CommentHandler) GetCommentsByVideo(c echo.Context) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}

	if _, err := h.videoRepository.GetVideoByID(videoID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}

	page := parsePagination(c)
	comments, total, err := h.commentRepository.GetCommentsByVideoID(videoID, page)
	if err != nil {
		log.Printf("comment listing failed for video %d: %v", videoID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load comments")
	}
	return c.JSON(http.StatusOK, pageResponse(comments, total, page))
}

// DeleteComment removes a comment owned by the authenticated user
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	if err := h.commentRepository.DeleteComment(commentID, currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	if err := h.videoRepository.DecrementCommentCount(comment.VideoID); err != nil {
		log.Printf("comment count decrement failed for video %d: %v", comment.VideoID, err)
	}
	return c.NoContent(http.StatusNoContent)
}
