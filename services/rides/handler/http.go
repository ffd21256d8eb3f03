package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vaipaqueta/dispatch/internal/pkg/middleware"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/utils"
	"github.com/vaipaqueta/dispatch/services/rides"
)

// RideHandler exposes the ride lifecycle over HTTP.
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// actorParty is the optional body carried by driver/passenger transition
// endpoints; the profile id is only honored for admin actors.
type actorParty struct {
	ProfileID *uuid.UUID `json:"profile_id,omitempty"`
}

func requestActor(c echo.Context) (models.Actor, bool) {
	return middleware.GetActor(c)
}

func ridePathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// bindParty resolves the profile the caller acts as: themselves by default,
// or the body-provided profile for admins.
func bindParty(c echo.Context, actor models.Actor) (uuid.UUID, error) {
	var body actorParty
	if err := c.Bind(&body); err != nil {
		return uuid.Nil, err
	}
	if body.ProfileID != nil {
		return *body.ProfileID, nil
	}
	return actor.ProfileID, nil
}

// RequestRide handles ride request creation
func (h *RideHandler) RequestRide(c echo.Context) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.RequestRide(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", ride)
}

// AcceptRide handles ride acceptance by a driver
func (h *RideHandler) AcceptRide(c echo.Context) error {
	return h.partyTransition(c, "Ride accepted successfully", h.rideUC.AcceptRide)
}

// StartRide handles ride start by a driver
func (h *RideHandler) StartRide(c echo.Context) error {
	return h.partyTransition(c, "Ride started successfully", h.rideUC.StartRide)
}

// RejectRide handles ride rejection by a driver
func (h *RideHandler) RejectRide(c echo.Context) error {
	return h.partyTransition(c, "Ride rejected successfully", h.rideUC.RejectRide)
}

// FinishRide handles ride completion by the driver or the passenger
func (h *RideHandler) FinishRide(c echo.Context) error {
	return h.partyTransition(c, "Ride completed successfully", h.rideUC.FinishRide)
}

// CancelRide handles ride cancellation by the passenger
func (h *RideHandler) CancelRide(c echo.Context) error {
	return h.partyTransition(c, "Ride cancelled successfully", h.rideUC.CancelRide)
}

// ReassignRide handles forced release and re-dispatch of a ride
func (h *RideHandler) ReassignRide(c echo.Context) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := ridePathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var body struct {
		ExcludeDriverID *uuid.UUID `json:"exclude_driver_id,omitempty"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.ReassignRide(c.Request().Context(), actor, rideID, body.ExcludeDriverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride reassigned successfully", ride)
}

// GetRide handles ride retrieval by ID
func (h *RideHandler) GetRide(c echo.Context) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := ridePathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), actor, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// ListRides handles ride history retrieval for a profile
func (h *RideHandler) ListRides(c echo.Context) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profileID := actor.ProfileID
	if raw := c.QueryParam("profile_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid profile ID")
		}
		profileID = parsed
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		limit = parsed
	}

	rideList, err := h.rideUC.ListRides(c.Request().Context(), actor, profileID, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", rideList)
}

// ActiveRideForPassenger handles active ride retrieval for a passenger
func (h *RideHandler) ActiveRideForPassenger(c echo.Context) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	passengerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid passenger ID")
	}

	ride, err := h.rideUC.ActiveRideForPassenger(c.Request().Context(), actor, passengerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if ride == nil {
		return utils.SuccessResponse(c, http.StatusOK, "No active ride found", nil)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active ride retrieved successfully", ride)
}

// ActiveRideForDriver handles active ride retrieval for a driver
func (h *RideHandler) ActiveRideForDriver(c echo.Context) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	ride, err := h.rideUC.ActiveRideForDriver(c.Request().Context(), actor, driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if ride == nil {
		return utils.SuccessResponse(c, http.StatusOK, "No active ride found", nil)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active ride retrieved successfully", ride)
}

// AssignedDriverPosition handles retrieval of the assigned driver's last
// known position for a ride
func (h *RideHandler) AssignedDriverPosition(c echo.Context) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := ridePathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	position, err := h.rideUC.AssignedDriverPosition(c.Request().Context(), actor, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver position retrieved successfully", position)
}

// partyTransition factors the shared shape of the party-scoped transition
// endpoints: parse the ride id, resolve the acting profile, run the
// transition, map business errors.
func (h *RideHandler) partyTransition(
	c echo.Context,
	successMessage string,
	transition func(ctx context.Context, actor models.Actor, rideID, profileID uuid.UUID) (*models.Ride, error),
) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := ridePathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	profileID, err := bindParty(c, actor)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := transition(c.Request().Context(), actor, rideID, profileID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, successMessage, ride)
}
