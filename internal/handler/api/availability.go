package api

import (
	"net/http"

	resdto "sauna-booking/internal/handler/dto/response"
	"sauna-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Slot availability
// @Description Derived state of every slot on one day
// @Tags booking
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/booking/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	result, err := h.q.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		abortWithUsecaseError(c, err, "availability")
		return
	}

	resp, err := resdto.FromAvailabilityResult(result)
	if err != nil {
		abortWithUsecaseError(c, err, "availability response mapping")
		return
	}
	c.JSON(http.StatusOK, resp)
}
