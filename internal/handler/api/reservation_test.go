//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-pms/internal/handler/api"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/queries"
	"hotel-pms/tests/common/httptest"
	"hotel-pms/tests/common/testutil"
	commandsmock "hotel-pms/tests/mock/commands"
	queriesmock "hotel-pms/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockRooms   *commandsmock.MockRoomAllocationCommands
	mockParking *commandsmock.MockParkingCommands
	mockQueries *queriesmock.MockReservationQueries
	handler     *api.ReservationHandler

	userID  uuid.UUID
	hotelID uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = commandsmock.NewMockRoomAllocationCommands(s.mockCtrl)
	s.mockParking = commandsmock.NewMockParkingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockRooms, s.mockParking, s.mockQueries)

	s.userID = uuid.New()
	s.hotelID = uuid.New()

	// Mock middleware behavior: inject the authenticated actor context
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("hotel_id", s.hotelID)
	}
	s.router.POST("/reservations/:id/confirm", authed, s.handler.ConfirmWaitlist)
	s.router.POST("/reservations/blocks", authed, s.handler.BlockRooms)
	s.router.POST("/reservations/:id/parking", authed, s.handler.AllocateParking)
	s.router.GET("/reservations/:id", authed, s.handler.GetReservation)
	s.router.GET("/reservations", authed, s.handler.ListReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) confirmBody() map[string]any {
	return map[string]any{
		"occupants": 2,
		"check_in":  "2026-09-14",
		"check_out": "2026-09-16",
	}
}

func (s *ReservationHandlerTestSuite) TestConfirmWaitlist() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/confirm"

	s.Run("success: returns 200 with the allocation", func() {
		s.mockRooms.EXPECT().ConfirmWaitlist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.ConfirmWaitlistParams) (*commands.AllocationResult, error) {
				s.Equal(reservationID, params.ReservationID)
				s.Equal(s.hotelID, params.HotelID)
				s.Equal(s.userID, params.ActorID)
				s.Equal(2, params.Occupants)
				return &commands.AllocationResult{ReservationID: reservationID}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.confirmBody(), "")

		var response resdto.AllocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ReservationID)
	})

	s.Run("error: 400 on malformed path id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid/confirm", s.confirmBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 400 on validation failures", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing occupants", mutate: testutil.Field("occupants", nil)},
			{name: "zero occupants", mutate: testutil.Field("occupants", 0)},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil)},
			{name: "non-date check_out", mutate: testutil.Field("check_out", "next tuesday")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), s.confirmBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "not on hold",
				commandsError:  commands.ErrReservationNotOnHold,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not awaiting confirmation",
			},
			{
				name:           "capacity exhausted",
				commandsError:  commands.ErrCapacityExhausted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Not enough inventory",
			},
			{
				name:           "concurrent conflict",
				commandsError:  commands.ErrAllocationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "concurrent booking",
			},
			{
				name:           "invalid demand",
				commandsError:  commands.ErrInvalidAllocationDemand,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid allocation request",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRooms.EXPECT().ConfirmWaitlist(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.confirmBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestBlockRooms() {
	url := "/reservations/blocks"

	blockBody := func() map[string]any {
		return map[string]any{
			"room_type_id": uuid.New().String(),
			"room_count":   2,
			"check_in":     "2026-09-20",
			"check_out":    "2026-09-22",
		}
	}

	s.Run("success: returns 201 Created", func() {
		blockID := uuid.New()
		s.mockRooms.EXPECT().BlockRooms(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.BlockRoomsParams) (*commands.AllocationResult, error) {
				s.Equal(s.hotelID, params.HotelID)
				s.Equal(2, params.RoomCount)
				s.Nil(params.Parking)
				return &commands.AllocationResult{ReservationID: blockID}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, blockBody(), "")

		var response resdto.AllocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(blockID, response.ReservationID)
	})

	s.Run("success: parking subentity forwarded to the command", func() {
		categoryID := uuid.New()
		body := blockBody()
		body["parking"] = map[string]any{
			"vehicle_category_id": categoryID.String(),
			"spot_count":          1,
		}

		s.mockRooms.EXPECT().BlockRooms(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.BlockRoomsParams) (*commands.AllocationResult, error) {
				s.Require().NotNil(params.Parking)
				s.Equal(categoryID, params.Parking.VehicleCategoryID)
				s.Equal(1, params.Parking.SpotCount)
				return &commands.AllocationResult{ReservationID: uuid.New()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on validation failures", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room_type_id", mutate: testutil.Field("room_type_id", nil)},
			{name: "zero room_count", mutate: testutil.Field("room_count", 0)},
			{name: "non-date check_in", mutate: testutil.Field("check_in", "soon")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), blockBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when inventory is short", func() {
		s.mockRooms.EXPECT().BlockRooms(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCapacityExhausted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, blockBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough inventory")
	})
}

func (s *ReservationHandlerTestSuite) TestAllocateParking() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/parking"

	parkingBody := func() map[string]any {
		return map[string]any{
			"vehicle_category_id": uuid.New().String(),
			"spot_count":          1,
			"check_in":            "2026-10-01",
			"check_out":           "2026-10-03",
		}
	}

	s.Run("success: returns 201 with spot assignments", func() {
		s.mockParking.EXPECT().Allocate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.AllocateParkingParams) ([]commands.SpotAssignment, error) {
				s.Equal(reservationID, params.ReservationID)
				s.Equal(s.hotelID, params.HotelID)
				return []commands.SpotAssignment{{ID: uuid.New(), SpotID: uuid.New(), DetailID: uuid.New()}}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, parkingBody(), "")

		var response resdto.ParkingAllocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Len(response.Assignments, 1)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "vehicle category not found",
				commandsError:  commands.ErrVehicleCategoryNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Vehicle category not found",
			},
			{
				name:           "no detail for a date",
				commandsError:  commands.ErrNoDetailForDate,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "no live detail",
			},
			{
				name:           "capacity exhausted",
				commandsError:  commands.ErrCapacityExhausted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Not enough inventory",
			},
			{
				name:           "invalid vehicle category",
				commandsError:  commands.ErrInvalidVehicleCategory,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid allocation request",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockParking.EXPECT().Allocate(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, parkingBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns the full view", func() {
		view := &queries.ReservationView{ID: reservationID, HotelID: s.hotelID, Status: "confirmed"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.hotelID, reservationID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
	})

	s.Run("error: 404 for an unknown reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.hotelID, reservationID).
			Return(nil, infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	url := "/reservations"

	s.Run("success: returns items with a next cursor", func() {
		items := []*queries.ReservationListItem{{ID: uuid.New(), Status: "confirmed"}}
		next := &queries.Cursor{After: "opaque-cursor"}
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), s.hotelID, nil, 2).Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2", nil, "")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Require().NotNil(response.NextCursor)
		s.Equal("opaque-cursor", *response.NextCursor)
	})

	s.Run("success: empty page serializes as an empty array", func() {
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), s.hotelID, nil, 0).Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Items)
		s.Empty(response.Items)
		s.Nil(response.NextCursor)
	})

	s.Run("error: 400 on a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 on a broken cursor", func() {
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), s.hotelID, gomock.Any(), 0).
			Return(nil, nil, errors.New("malformed cursor")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=broken", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
