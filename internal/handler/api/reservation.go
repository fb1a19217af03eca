package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hotel-pms/internal/handler/dto/request"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/handler/middleware"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	roomAllocation     commands.RoomAllocationCommands
	parkingCommands    commands.ParkingCommands
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(
	roomAllocation commands.RoomAllocationCommands,
	parkingCommands commands.ParkingCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		roomAllocation:     roomAllocation,
		parkingCommands:    parkingCommands,
		reservationQueries: reservationQueries,
	}
}

// actorContext pulls the authenticated actor and hotel scope set by
// RequireAuth.
func actorContext(c *gin.Context) (userID, hotelID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}
	hotelID, ok = middleware.GetHotelID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing hotel context"), "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, hotelID, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Confirm a waitlisted reservation
// @Description Allocate rooms for the party across the stay and confirm the hold
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ConfirmWaitlistRequest true "Confirmation request"
// @Success 200 {object} resdto.AllocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) ConfirmWaitlist(c *gin.Context) {
	userID, hotelID, ok := actorContext(c)
	if !ok {
		return
	}
	reservationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.ConfirmWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := reqdto.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
		return
	}

	result, err := h.roomAllocation.ConfirmWaitlist(c.Request.Context(), commands.ConfirmWaitlistParams{
		ReservationID: reservationID,
		HotelID:       hotelID,
		Occupants:     req.Occupants,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		ActorID:       userID,
	})
	if err != nil {
		h.abortAllocationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAllocationResult(result))
}

// @Summary Block rooms
// @Description Create a block reservation over rooms of a type, optionally with parking
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BlockRoomsRequest true "Block request"
// @Success 201 {object} resdto.AllocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/blocks [post]
func (h *ReservationHandler) BlockRooms(c *gin.Context) {
	userID, hotelID, ok := actorContext(c)
	if !ok {
		return
	}

	var req reqdto.BlockRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := reqdto.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
		return
	}

	params := commands.BlockRoomsParams{
		HotelID:    hotelID,
		RoomTypeID: req.RoomTypeID,
		RoomCount:  req.RoomCount,
		Occupants:  req.Occupants,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Comment:    req.Comment,
		ActorID:    userID,
	}
	if req.Parking != nil {
		params.Parking = &commands.ParkingRequest{
			VehicleCategoryID: req.Parking.VehicleCategoryID,
			SpotCount:         req.Parking.SpotCount,
		}
	}

	result, err := h.roomAllocation.BlockRooms(c.Request.Context(), params)
	if err != nil {
		h.abortAllocationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAllocationResult(result))
}

// @Summary Allocate parking
// @Description Assign parking spots to a reservation for every date in range
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AllocateParkingRequest true "Parking request"
// @Success 201 {object} resdto.ParkingAllocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/parking [post]
func (h *ReservationHandler) AllocateParking(c *gin.Context) {
	userID, hotelID, ok := actorContext(c)
	if !ok {
		return
	}
	reservationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.AllocateParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := reqdto.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
		return
	}

	assignments, err := h.parkingCommands.Allocate(c.Request.Context(), commands.AllocateParkingParams{
		HotelID:           hotelID,
		ReservationID:     reservationID,
		VehicleCategoryID: req.VehicleCategoryID,
		SpotCount:         req.SpotCount,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		ActorID:           userID,
	})
	if err != nil {
		h.abortAllocationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSpotAssignments(assignments))
}

// @Summary Get reservation
// @Description Full reservation view with details and parking
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	_, hotelID, ok := actorContext(c)
	if !ok {
		return
	}
	reservationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), hotelID, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List reservations
// @Description Keyset-paginated reservations of the caller's hotel, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Keyset cursor from a previous page"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	_, hotelID, ok := actorContext(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	items, next, err := h.reservationQueries.ListByHotel(c.Request.Context(), hotelID, after, limit)
	if err != nil {
		if after != nil {
			// A broken cursor is the only client-side failure here.
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

func (h *ReservationHandler) abortAllocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, commands.ErrVehicleCategoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle category not found", nil)
	case errors.Is(err, commands.ErrReservationNotOnHold):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is not awaiting confirmation", nil)
	case errors.Is(err, commands.ErrCapacityExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Not enough inventory for the requested dates", nil)
	case errors.Is(err, commands.ErrAllocationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Allocation conflicts with a concurrent booking", nil)
	case errors.Is(err, commands.ErrNoDetailForDate):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation has no live detail for a requested date", nil)
	case errors.Is(err, commands.ErrInvalidVehicleCategory),
		errors.Is(err, commands.ErrInvalidAllocationDemand):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid allocation request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
