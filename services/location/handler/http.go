package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vaipaqueta/dispatch/internal/pkg/middleware"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/utils"
	"github.com/vaipaqueta/dispatch/services/location"
)

// LocationHandler exposes ping submission and nearby-driver search over HTTP.
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// RegisterRoutes registers all location HTTP routes behind the actor
// middleware.
func (h *LocationHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	group := e.Group("/locations", middleware.ActorMiddleware(jwtConfig))
	group.POST("/pings", h.SubmitPing)
	group.GET("/nearby-drivers", h.NearbyDrivers)
}

// SubmitPing handles driver location report submission
func (h *LocationHandler) SubmitPing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var sub location.PingSubmission
	if err := c.Bind(&sub); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ping, err := h.locationUC.SubmitPing(c.Request().Context(), actor, &sub)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ping recorded successfully", ping)
}

// NearbyDrivers handles nearby-driver search around a point
func (h *LocationHandler) NearbyDrivers(c echo.Context) error {
	if _, ok := middleware.GetActor(c); !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
	}

	drivers, err := h.locationUC.NearbyDrivers(c.Request().Context(), lat, lng, radiusKm, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved successfully", drivers)
}
