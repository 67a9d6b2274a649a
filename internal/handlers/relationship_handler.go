package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Prajjwal2051/Viewly-sub001/internal/apperrors"
	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/Prajjwal2051/Viewly-sub001/internal/repositories"
	"github.com/labstack/echo/v4"
)

// Relationship kinds accepted in the :kind path segment
const (
	kindSubscription = "subscription"
	kindVideoLike    = "video-like"
	kindCommentLike  = "comment-like"
	kindTweetLike    = "tweet-like"
)

// RelationshipHandler exposes the toggle engine and the aggregated edge views
type RelationshipHandler struct {
	subscriptionRepository repositories.SubscriptionRepository
	likeRepository         repositories.LikeRepository
	userRepository         repositories.UserRepository
	videoRepository        repositories.VideoRepository
	commentRepository      repositories.CommentRepository
	tweetRepository        repositories.TweetRepository
	notificationRepository repositories.NotificationRepository
}

// NewRelationshipHandler creates a new RelationshipHandler
func NewRelationshipHandler(
	subRepo repositories.SubscriptionRepository,
	likeRepo repositories.LikeRepository,
	userRepo repositories.UserRepository,
	videoRepo repositories.VideoRepository,
	commentRepo repositories.CommentRepository,
	tweetRepo repositories.TweetRepository,
	notifRepo repositories.NotificationRepository,
) *RelationshipHandler {
	return &RelationshipHandler{
		subscriptionRepository: subRepo,
		likeRepository:         likeRepo,
		userRepository:         userRepo,
		videoRepository:        videoRepo,
		commentRepository:      commentRepo,
		tweetRepository:        tweetRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterRelationshipRoutes registers the toggle and listing routes
func (h *RelationshipHandler) RegisterRelationshipRoutes(g *echo.Group) {
	g.POST("/relationship/:kind/:target_id", h.Toggle)
	g.GET("/relationship/:kind/:subject_id/incoming", h.ListIncoming)
	g.GET("/relationship/:kind/:subject_id/outgoing", h.ListOutgoing)
}

// resolvedTarget carries what toggling needs to know about the entity an
// edge points at: who gets notified and whether the actor owns it.
type resolvedTarget struct {
	ownerID    uint
	likeTarget models.LikeTarget // zero for subscriptions
}

// resolveTarget validates that the target exists and identifies its owner
func (h *RelationshipHandler) resolveTarget(kind string, targetID uint) (*resolvedTarget, error) {
	switch kind {
	case kindSubscription:
		channel, err := h.userRepository.GetUserByID(targetID)
		if err != nil {
			return nil, apperrors.ErrTargetNotFound
		}
		return &resolvedTarget{ownerID: channel.ID}, nil
	case kindVideoLike:
		video, err := h.videoRepository.GetVideoByID(targetID)
		if err != nil {
			return nil, apperrors.ErrTargetNotFound
		}
		return &resolvedTarget{ownerID: video.OwnerID, likeTarget: models.VideoTarget(targetID)}, nil
	case kindCommentLike:
		comment, err := h.commentRepository.GetCommentByID(targetID)
		if err != nil {
			return nil, apperrors.ErrTargetNotFound
		}
		return &resolvedTarget{ownerID: comment.OwnerID, likeTarget: models.CommentTarget(targetID)}, nil
	case kindTweetLike:
		tweet, err := h.tweetRepository.GetTweetByID(targetID)
		if err != nil {
			return nil, apperrors.ErrTargetNotFound
		}
		return &resolvedTarget{ownerID: tweet.OwnerID, likeTarget: models.TweetTarget(targetID)}, nil
	default:
		return nil, apperrors.ErrInvalidArgument
	}
}

// Toggle flips one edge between the authenticated actor and the target and
// returns the resulting state. Validation happens before any storage write;
// the edge+counter pair commits atomically inside the repository.
func (h *RelationshipHandler) Toggle(c echo.Context) error {
	actorID := getUserIDFromContext(c)
	if actorID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	kind := c.Param("kind")
	targetID, err := parseIDParam(c, "target_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid target ID")
	}

	target, err := h.resolveTarget(kind, targetID)
	if err != nil {
		return toggleError(err)
	}

	// Liking your own content is rejected the same way as self-subscription
	if kind != kindSubscription && target.ownerID == actorID {
		return toggleError(apperrors.ErrSelfReference)
	}

	var active bool
	if kind == kindSubscription {
		active, err = h.subscriptionRepository.Toggle(actorID, targetID)
	} else {
		active, err = h.likeRepository.Toggle(actorID, target.likeTarget)
	}
	if err != nil {
		return toggleError(err)
	}

	// Activation fans out a notification; deactivation has no side effects.
	if active && target.ownerID != actorID {
		h.notifyActivation(kind, actorID, targetID, target.ownerID)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"is_active": active}})
}

func (h *RelationshipHandler) notifyActivation(kind string, actorID, targetID, recipientID uint) {
	actor, err := h.userRepository.GetUserByID(actorID)
	if err != nil {
		log.Printf("notification skipped, actor %d not found: %v", actorID, err)
		return
	}

	notif := &models.Notification{
		ActorID:     actorID,
		RecipientID: recipientID,
		TargetID:    targetID,
	}
	switch kind {
	case kindSubscription:
		notif.Kind = "subscription"
		notif.TargetKind = "user"
		notif.Message = actor.Username + " subscribed to your channel"
	case kindVideoLike:
		notif.Kind = "video_like"
		notif.TargetKind = "video"
		notif.Message = actor.Username + " liked your video"
	case kindCommentLike:
		notif.Kind = "comment_like"
		notif.TargetKind = "comment"
		notif.Message = actor.Username + " liked your comment"
	case kindTweetLike:
		notif.Kind = "tweet_like"
		notif.TargetKind = "tweet"
		notif.Message = actor.Username + " liked your tweet"
	}

	if err := h.notificationRepository.CreateNotification(notif); err != nil {
		log.Printf("failed to create %s notification: %v", notif.Kind, err)
	}
}

// toggleError maps the toggle engine's error taxonomy to HTTP statuses
// without leaking storage error text
func toggleError(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid relationship kind")
	case errors.Is(err, apperrors.ErrSelfReference):
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot create a relationship with yourself")
	case errors.Is(err, apperrors.ErrTargetNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Target not found")
	case errors.Is(err, apperrors.ErrTransactionFailed):
		log.Printf("toggle transaction failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not complete the toggle, please retry")
	default:
		log.Printf("toggle failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not complete the toggle")
	}
}

// ListIncoming answers "who points at the subject": a channel's subscribers
// or a target's likers
func (h *RelationshipHandler) ListIncoming(c echo.Context) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	subjectID, err := parseIDParam(c, "subject_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subject ID")
	}
	page := parsePagination(c)

	switch c.Param("kind") {
	case kindSubscription:
		items, total, err := h.subscriptionRepository.GetSubscribers(subjectID, page)
		return listResponse(c, items, total, page, err)
	case kindVideoLike:
		items, total, err := h.likeRepository.GetLikers(models.VideoTarget(subjectID), page)
		return listResponse(c, items, total, page, err)
	case kindCommentLike:
		items, total, err := h.likeRepository.GetLikers(models.CommentTarget(subjectID), page)
		return listResponse(c, items, total, page, err)
	case kindTweetLike:
		items, total, err := h.likeRepository.GetLikers(models.TweetTarget(subjectID), page)
		return listResponse(c, items, total, page, err)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid relationship kind")
	}
}

// ListOutgoing answers "what the subject points at": subscribed channels or
// liked videos/comments/tweets
func (h *RelationshipHandler) ListOutgoing(c echo.Context) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	subjectID, err := parseIDParam(c, "subject_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subject ID")
	}
	page := parsePagination(c)

	switch c.Param("kind") {
	case kindSubscription:
		items, total, err := h.subscriptionRepository.GetSubscribedChannels(subjectID, page)
		return listResponse(c, items, total, page, err)
	case kindVideoLike:
		items, total, err := h.likeRepository.GetLikedVideos(subjectID, page)
		return listResponse(c, items, total, page, err)
	case kindCommentLike:
		items, total, err := h.likeRepository.GetLikedComments(subjectID, page)
		return listResponse(c, items, total, page, err)
	case kindTweetLike:
		items, total, err := h.likeRepository.GetLikedTweets(subjectID, page)
		return listResponse(c, items, total, page, err)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid relationship kind")
	}
}

func listResponse(c echo.Context, items interface{}, total int64, page models.PageRequest, err error) error {
	if err != nil {
		log.Printf("relationship listing failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load the listing")
	}
	return c.JSON(http.StatusOK, pageResponse(items, total, page))
}
