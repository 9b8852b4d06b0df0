package api

import (
	"net/http"

	reqdto "sauna-booking/internal/handler/dto/request"
	resdto "sauna-booking/internal/handler/dto/response"
	"sauna-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Reserve a slot
// @Description Book a social or private session. The slot check and insert are atomic.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 200 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/booking/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "reserve")
		return
	}

	c.JSON(http.StatusOK, resdto.ReserveResponse{Success: true, ID: result.ID})
}
