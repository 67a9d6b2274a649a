package handlers

import (
	"log"
	"net/http"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/Prajjwal2051/Viewly-sub001/internal/repositories"
	"github.com/labstack/echo/v4"
)

// TweetHandler handles community tweet HTTP requests
type TweetHandler struct {
	tweetRepository repositories.TweetRepository
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweetRepo repositories.TweetRepository) *TweetHandler {
	return &TweetHandler{tweetRepository: tweetRepo}
}

// RegisterTweetRoutes registers tweet-related routes
func (h *TweetHandler) RegisterTweetRoutes(g *echo.Group) {
	g.POST("/tweets", h.CreateTweet)
	g.DELETE("/tweets/:id", h.DeleteTweet)
	g.GET("/users/:id/tweets", h.GetTweetsByUser)
}

// CreateTweet posts a tweet on the authenticated user's channel
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tweet := &models.Tweet{OwnerID: currentUserID, Content: req.Content}
	if err := h.tweetRepository.CreateTweet(tweet); err != nil {
		log.Printf("tweet create failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not create the tweet")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": tweet})
}

// DeleteTweet removes a tweet owned by the authenticated user
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid tweet ID")
	}

	if err := h.tweetRepository.DeleteTweet(tweetID, currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetTweetsByUser lists a channel's tweets
func (h *TweetHandler) GetTweetsByUser(c echo.Context) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ownerID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	page := parsePagination(c)

	tweets, total, err := h.tweetRepository.GetTweetsByOwner(ownerID, page)
	if err != nil {
		log.Printf("tweet listing failed for user %d: %v", ownerID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load tweets")
	}
	return c.JSON(http.StatusOK, pageResponse(tweets, total, page))
}
