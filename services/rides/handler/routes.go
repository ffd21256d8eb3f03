package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/vaipaqueta/dispatch/internal/pkg/middleware"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

// RegisterRoutes registers all ride HTTP routes behind the actor middleware.
func (h *RideHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	rideGroup := e.Group("/rides", middleware.ActorMiddleware(jwtConfig))
	rideGroup.POST("", h.RequestRide)
	rideGroup.GET("", h.ListRides)
	rideGroup.GET("/:id", h.GetRide)
	rideGroup.GET("/:id/driver-position", h.AssignedDriverPosition)
	rideGroup.POST("/:id/accept", h.AcceptRide)
	rideGroup.POST("/:id/start", h.StartRide)
	rideGroup.POST("/:id/finish", h.FinishRide)
	rideGroup.POST("/:id/reject", h.RejectRide)
	rideGroup.POST("/:id/cancel", h.CancelRide)
	rideGroup.POST("/:id/reassign", h.ReassignRide)

	profileGroup := e.Group("", middleware.ActorMiddleware(jwtConfig))
	profileGroup.GET("/passengers/:id/active-ride", h.ActiveRideForPassenger)
	profileGroup.GET("/drivers/:id/active-ride", h.ActiveRideForDriver)
}
