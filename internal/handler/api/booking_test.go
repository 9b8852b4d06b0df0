//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/handler/api"
	reqdto "sauna-booking/internal/handler/dto/request"
	resdto "sauna-booking/internal/handler/dto/response"
	"sauna-booking/internal/pkg/errs"
	"sauna-booking/internal/usecase/commands"
	"sauna-booking/internal/usecase/queries"
	"sauna-booking/tests/common/builder"
	"sauna-booking/tests/common/httptest"
	"sauna-booking/tests/common/testutil"
	commandsmock "sauna-booking/tests/mock/commands"
	queriesmock "sauna-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *commandsmock.MockReservationCommands
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	availability := api.NewAvailabilityHandler(s.mockAvailability)
	reservations := api.NewReservationHandler(s.mockReservations)

	s.router.GET("/api/booking/availability", availability.GetAvailability)
	s.router.POST("/api/booking/reservations", reservations.Reserve)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestGetAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetAvailability() {
	url := "/api/booking/availability?date=2025-06-06"

	s.Run("success: returns slots without admin fields", func() {
		result := &queries.AvailabilityResult{
			Date: "2025-06-06",
			Slots: []queries.SlotView{
				{Date: "2025-06-06", Start: "09:00", End: "11:00", CapacitySocial: 12, BookedSocial: 5, AvailableSocial: 7, Status: "open", Notes: "internal"},
				{Date: "2025-06-06", Start: "11:00", End: "13:00", CapacitySocial: 12, HasPrivate: true, Status: "private"},
			},
		}
		s.mockAvailability.EXPECT().Availability(gomock.Any(), "2025-06-06").Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2025-06-06", body.Date)
		s.Require().Len(body.Slots, 2)
		s.Equal(7, body.Slots[0].AvailableSocial)
		s.Equal("private", body.Slots[1].Status)
		s.NotContains(rec.Body.String(), "internal")
	})

	s.Run("error: 400 on invalid date", func() {
		s.mockAvailability.EXPECT().Availability(gomock.Any(), "nope").Return(nil, booking.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking/availability?date=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 500 hides store detail", func() {
		s.mockAvailability.EXPECT().Availability(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errors.New("dial tcp 10.0.0.1:5432: refused"), "snapshot")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "10.0.0.1")
	})
}

// ================================================================================
// TestReserve
// ================================================================================

type testCaseReserve struct {
	name         string
	mutate       func(m map[string]any)
	usecaseErr   error
	expectCode   int
	expectErrMsg string
}

func (s *BookingHandlerTestSuite) TestReserve() {
	url := "/api/booking/reservations"
	reqBody := builder.NewReservationBuilder("2025-06-06").BuildRequestMap()
	newID := uuid.New()

	s.Run("success: 200 with id", func() {
		s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reqdto.ReserveRequest) (*commands.ReserveResult, error) {
				s.Equal("2025-06-06", req.Date)
				s.Equal(2, req.ToInput().Guests)
				return &commands.ReserveResult{ID: newID}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(newID, body.ID)
	})

	s.Run("success: guests as a string", func() {
		s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reqdto.ReserveRequest) (*commands.ReserveResult, error) {
				s.Equal(4, req.ToInput().Guests)
				return &commands.ReserveResult{ID: newID}, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", "4"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	cases := []testCaseReserve{
		{name: "validation: invalid slot", mutate: testutil.Field("end_time", "12:00"), usecaseErr: booking.ErrInvalidSlot, expectCode: http.StatusBadRequest, expectErrMsg: "Invalid slot selection"},
		{name: "validation: guest count", mutate: testutil.Field("guests", 13), usecaseErr: booking.ErrInvalidGuestCount, expectCode: http.StatusBadRequest, expectErrMsg: "Invalid guest count"},
		{name: "validation: email", mutate: testutil.Field("email", "x"), usecaseErr: booking.ErrInvalidEmail, expectCode: http.StatusBadRequest, expectErrMsg: "Invalid email address"},
		{name: "conflict: blocked", usecaseErr: booking.ErrSlotBlocked, expectCode: http.StatusConflict, expectErrMsg: "Slot is blocked"},
		{name: "conflict: private", usecaseErr: booking.ErrSlotPrivatelyBooked, expectCode: http.StatusConflict, expectErrMsg: "Slot already booked"},
		{name: "conflict: social bookings", usecaseErr: booking.ErrSlotHasSocialBookings, expectCode: http.StatusConflict, expectErrMsg: "Slot already has social bookings"},
		{name: "conflict: capacity", usecaseErr: booking.ErrCapacityExceeded, expectCode: http.StatusConflict, expectErrMsg: "Not enough spots available"},
		{name: "conflict: too soon", usecaseErr: booking.ErrTooSoon, expectCode: http.StatusConflict, expectErrMsg: "Slot is no longer bookable"},
		{
			name:         "store failure: generic 500",
			usecaseErr:   errs.Mark(errors.New("connection reset"), commands.ErrDatabaseOperationFailed),
			expectCode:   http.StatusInternalServerError,
			expectErrMsg: "Internal server error",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.usecaseErr).Times(1)

			body := reqBody
			if tc.mutate != nil {
				body = testutil.DtoMap(s.T(), reqBody, tc.mutate)
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErrMsg)
		})
	}

	s.Run("error: malformed JSON never reaches the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"date": "2025-06-06",`), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid JSON payload")
	})

	s.Run("error: missing date never reaches the usecase", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", ""))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking time")
	})

	s.Run("error: empty body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, []byte(""), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing request body")
	})

	s.Run("error: oversized notes still reach validation", func() {
		s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reqdto.ReserveRequest) (*commands.ReserveResult, error) {
				s.Len(*req.Notes, 5000)
				return &commands.ReserveResult{ID: newID}, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("notes", strings.Repeat("n", 5000)))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
