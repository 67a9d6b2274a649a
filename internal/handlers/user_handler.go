package handlers

import (
	"log"
	"net/http"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/Prajjwal2051/Viewly-sub001/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles channel profile HTTP requests
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterAuthRoutes registers the unauthenticated registration route
func (h *UserHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
}

// RegisterProfileRoutes registers the authenticated profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetUser)
}

// Register creates a channel profile. Credentials and token issuance are
// handled by the identity service, which signs the JWTs this backend verifies.
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Username already taken")
	}

	user := &models.User{
		Username:      req.Username,
		FullName:      req.FullName,
		Email:         req.Email,
		AvatarURL:     req.AvatarURL,
		CoverImageURL: req.CoverImageURL,
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		log.Printf("user create failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not create the user")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": user})
}

// GetUser returns a public channel profile
func (h *UserHandler) GetUser(c echo.Context) error {
	if getUserIDFromContext(c) == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user})
}
