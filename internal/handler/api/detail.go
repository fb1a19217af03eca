package api

import (
	"errors"
	"net/http"

	"hotel-pms/internal/domain/reservation"
	reqdto "hotel-pms/internal/handler/dto/request"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DetailHandler struct {
	lifecycle commands.DetailLifecycleCommands
}

func NewDetailHandler(lifecycle commands.DetailLifecycleCommands) *DetailHandler {
	return &DetailHandler{lifecycle: lifecycle}
}

// @Summary Cancel a reservation detail
// @Description Void one room-night, cascade to its parking and re-derive the parent
// @Tags details
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Detail ID"
// @Param request body reqdto.DetailTransitionRequest false "Cancellation options"
// @Success 200 {object} resdto.DetailTransitionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /details/{id}/cancel [post]
func (h *DetailHandler) Cancel(c *gin.Context) {
	h.transition(c, reservation.LifecycleCancelled)
}

// @Summary Recover a cancelled reservation detail
// @Description Reinstate a room-night at its full price and cascade the recovery
// @Tags details
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Detail ID"
// @Param request body reqdto.DetailTransitionRequest false "Recovery options"
// @Success 200 {object} resdto.DetailTransitionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /details/{id}/recover [post]
func (h *DetailHandler) Recover(c *gin.Context) {
	h.transition(c, reservation.LifecycleLive)
}

func (h *DetailHandler) transition(c *gin.Context, target reservation.Lifecycle) {
	userID, hotelID, ok := actorContext(c)
	if !ok {
		return
	}
	detailID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var billableOverride *bool
	if c.Request.ContentLength > 0 {
		var req reqdto.DetailTransitionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
		billableOverride = req.Billable
	}

	result, err := h.lifecycle.Transition(c.Request.Context(), detailID, hotelID, target, userID, billableOverride)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDetailNotFound),
			errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Detail not found", nil)
		case errors.Is(err, commands.ErrInvalidStateTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Detail is already in the requested state", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDetailTransition(result))
}
