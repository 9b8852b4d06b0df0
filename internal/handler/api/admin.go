package api

import (
	"context"
	"net/http"

	reqdto "sauna-booking/internal/handler/dto/request"
	resdto "sauna-booking/internal/handler/dto/response"
	"sauna-booking/internal/handler/httperr"
	"sauna-booking/internal/pkg/errs"
	"sauna-booking/internal/usecase/commands"
	"sauna-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	ActionUpdateSlot        = "update_slot"
	ActionClearSlot         = "clear_slot"
	ActionBlockDay          = "block_day"
	ActionUnblockDay        = "unblock_day"
	ActionResetDay          = "reset_day"
	ActionCancelReservation = "cancel_reservation"

	ActionSessions     = "sessions"
	ActionReservations = "reservations"
)

type AdminHandler struct {
	slots        commands.SlotAdminCommands
	availability queries.AvailabilityQueries
	reservations queries.ReservationQueries
}

func NewAdminHandler(
	slots commands.SlotAdminCommands,
	availability queries.AvailabilityQueries,
	reservations queries.ReservationQueries,
) *AdminHandler {
	return &AdminHandler{
		slots:        slots,
		availability: availability,
		reservations: reservations,
	}
}

// @Summary List sessions
// @Description Slot views for a date range. A missing or invalid date means today.
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param date query string false "Start date (YYYY-MM-DD)"
// @Param days query int false "Number of days (1-31)"
// @Success 200 {object} resdto.SessionsResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/sessions [get]
func (h *AdminHandler) ListSessions(c *gin.Context) {
	result, err := h.availability.Sessions(c.Request.Context(), c.Query("date"), parseDays(c.Query("days")))
	if err != nil {
		abortWithUsecaseError(c, err, "list sessions")
		return
	}

	resp, err := resdto.FromSessionsResult(result)
	if err != nil {
		abortWithUsecaseError(c, err, "sessions response mapping")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List reservations
// @Description Reservations for a date range ordered by date, start time and creation
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param date query string false "Start date (YYYY-MM-DD)"
// @Param days query int false "Number of days (1-31)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	result, err := h.reservations.ListReservations(c.Request.Context(), c.Query("date"), parseDays(c.Query("days")))
	if err != nil {
		abortWithUsecaseError(c, err, "list reservations")
		return
	}

	resp, err := resdto.FromReservationListResult(result)
	if err != nil {
		abortWithUsecaseError(c, err, "reservations response mapping")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update slot
// @Description Upsert the override for one slot
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body reqdto.UpdateSlotRequest true "Slot override"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/slots [post]
func (h *AdminHandler) UpdateSlot(c *gin.Context) {
	var req reqdto.UpdateSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	h.updateSlot(c, req)
}

// @Summary Clear slot
// @Description Delete every reservation in one slot
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body reqdto.ClearSlotRequest true "Slot key"
// @Success 200 {object} resdto.ClearSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/slots/clear [post]
func (h *AdminHandler) ClearSlot(c *gin.Context) {
	var req reqdto.ClearSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	h.clearSlot(c, req.Date, req.StartTime)
}

// @Summary Block day
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body reqdto.DayRequest true "Day"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/days/block [post]
func (h *AdminHandler) BlockDay(c *gin.Context) {
	h.dayAction(c, h.slots.BlockDay, "block day")
}

// @Summary Unblock day
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body reqdto.DayRequest true "Day"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/days/unblock [post]
func (h *AdminHandler) UnblockDay(c *gin.Context) {
	h.dayAction(c, h.slots.UnblockDay, "unblock day")
}

// @Summary Reset day
// @Description Unblock every slot, restore default capacity and clear notes
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body reqdto.DayRequest true "Day"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/days/reset [post]
func (h *AdminHandler) ResetDay(c *gin.Context) {
	h.dayAction(c, h.slots.ResetDay, "reset day")
}

// @Summary Cancel reservation
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/reservations/{id} [delete]
func (h *AdminHandler) CancelReservation(c *gin.Context) {
	h.cancelReservation(c, c.Param("id"))
}

// @Summary Admin action
// @Description Single-endpoint form of the admin mutations used by the ops panel
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body reqdto.AdminActionRequest true "Action and its fields"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/actions [post]
func (h *AdminHandler) Dispatch(c *gin.Context) {
	var req reqdto.AdminActionRequest
	if !bindJSON(c, &req) {
		return
	}

	switch req.Action {
	case ActionUpdateSlot:
		h.updateSlot(c, req.UpdateSlot())
	case ActionClearSlot:
		h.clearSlot(c, req.Date, req.StartTime)
	case ActionBlockDay:
		h.runDay(c, h.slots.BlockDay, req.Date, "block day")
	case ActionUnblockDay:
		h.runDay(c, h.slots.UnblockDay, req.Date, "unblock day")
	case ActionResetDay:
		h.runDay(c, h.slots.ResetDay, req.Date, "reset day")
	case ActionCancelReservation:
		h.cancelReservation(c, req.ReservationID)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, reqdto.ErrInvalidAction, errs.Message(reqdto.ErrInvalidAction), nil)
	}
}

// @Summary Admin read action
// @Description Query-string form of the admin reads used by the ops panel (action=sessions|reservations)
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param action query string false "sessions (default) or reservations"
// @Param date query string false "Start date (YYYY-MM-DD)"
// @Param days query int false "Number of days (1-31)"
// @Success 200 {object} resdto.SessionsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/actions [get]
func (h *AdminHandler) DispatchQuery(c *gin.Context) {
	switch c.DefaultQuery("action", ActionSessions) {
	case ActionSessions:
		h.ListSessions(c)
	case ActionReservations:
		h.ListReservations(c)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, reqdto.ErrInvalidAction, errs.Message(reqdto.ErrInvalidAction), nil)
	}
}

func (h *AdminHandler) updateSlot(c *gin.Context, req reqdto.UpdateSlotRequest) {
	if err := h.slots.UpdateSlot(c.Request.Context(), req.ToInput()); err != nil {
		abortWithUsecaseError(c, err, "update slot")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

func (h *AdminHandler) clearSlot(c *gin.Context, date, startTime string) {
	deleted, err := h.slots.ClearSlot(c.Request.Context(), date, startTime)
	if err != nil {
		abortWithUsecaseError(c, err, "clear slot")
		return
	}
	c.JSON(http.StatusOK, resdto.ClearSlotResponse{Success: true, Deleted: deleted})
}

func (h *AdminHandler) dayAction(c *gin.Context, fn func(ctx context.Context, date string) error, op string) {
	var req reqdto.DayRequest
	if !bindJSON(c, &req) {
		return
	}
	h.runDay(c, fn, req.Date, op)
}

func (h *AdminHandler) runDay(c *gin.Context, fn func(ctx context.Context, date string) error, date, op string) {
	if err := fn(c.Request.Context(), date); err != nil {
		abortWithUsecaseError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

func (h *AdminHandler) cancelReservation(c *gin.Context, id string) {
	if err := h.slots.CancelReservation(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "cancel reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}
