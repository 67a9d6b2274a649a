package handlers

import (
	"strconv"

	"github.com/Prajjwal2051/Viewly-sub001/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the authenticated user's ID, or 0 when the
// request carries no resolved session
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

// parsePagination normalizes the page/limit query parameters
func parsePagination(c echo.Context) models.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return models.NormalizePage(page, limit)
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// pageResponse is the shared envelope for paginated listings
func pageResponse(items interface{}, total int64, page models.PageRequest) echo.Map {
	return echo.Map{
		"success": true,
		"data":    echo.Map{"items": items},
		"meta":    models.NewPageMeta(total, page),
	}
}
