//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/handler/api"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/tests/common/httptest"
	commandsmock "hotel-pms/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DetailHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockLifecycle *commandsmock.MockDetailLifecycleCommands
	handler       *api.DetailHandler

	userID  uuid.UUID
	hotelID uuid.UUID
}

func (s *DetailHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLifecycle = commandsmock.NewMockDetailLifecycleCommands(s.mockCtrl)
	s.handler = api.NewDetailHandler(s.mockLifecycle)

	s.userID = uuid.New()
	s.hotelID = uuid.New()

	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("hotel_id", s.hotelID)
	}
	s.router.POST("/details/:id/cancel", authed, s.handler.Cancel)
	s.router.POST("/details/:id/recover", authed, s.handler.Recover)
}

func (s *DetailHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDetailHandlerSuite(t *testing.T) {
	suite.Run(t, new(DetailHandlerTestSuite))
}

func (s *DetailHandlerTestSuite) TestCancel() {
	detailID := uuid.New()
	url := "/details/" + detailID.String() + "/cancel"

	s.Run("success: returns the recomputed detail", func() {
		s.mockLifecycle.EXPECT().
			Transition(gomock.Any(), detailID, s.hotelID, reservation.LifecycleCancelled, s.userID, nil).
			Return(&commands.DetailTransitionResult{
				ID:         detailID,
				PriceCents: 3000,
				Lifecycle:  reservation.LifecycleCancelled,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.DetailTransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(3000), response.PriceCents)
		s.Equal("cancelled", response.Lifecycle)
	})

	s.Run("success: billable override forwarded", func() {
		s.mockLifecycle.EXPECT().
			Transition(gomock.Any(), detailID, s.hotelID, reservation.LifecycleCancelled, s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, _ reservation.Lifecycle, _ uuid.UUID, override *bool) (*commands.DetailTransitionResult, error) {
				s.Require().NotNil(override)
				s.False(*override)
				return &commands.DetailTransitionResult{ID: detailID, Lifecycle: reservation.LifecycleCancelled}, nil
			})

		body := map[string]any{"billable": false}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for an unknown detail", func() {
		s.mockLifecycle.EXPECT().
			Transition(gomock.Any(), detailID, s.hotelID, reservation.LifecycleCancelled, s.userID, nil).
			Return(nil, commands.ErrDetailNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Detail not found")
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockLifecycle.EXPECT().
			Transition(gomock.Any(), detailID, s.hotelID, reservation.LifecycleCancelled, s.userID, nil).
			Return(nil, commands.ErrInvalidStateTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already in the requested state")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/details/nope/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockLifecycle.EXPECT().
			Transition(gomock.Any(), detailID, s.hotelID, reservation.LifecycleCancelled, s.userID, nil).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *DetailHandlerTestSuite) TestRecover() {
	detailID := uuid.New()
	url := "/details/" + detailID.String() + "/recover"

	s.Run("success: recovery without a body", func() {
		s.mockLifecycle.EXPECT().
			Transition(gomock.Any(), detailID, s.hotelID, reservation.LifecycleLive, s.userID, nil).
			Return(&commands.DetailTransitionResult{
				ID:         detailID,
				PriceCents: 13000,
				Billable:   true,
				Lifecycle:  reservation.LifecycleLive,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.DetailTransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(13000), response.PriceCents)
		s.Equal("live", response.Lifecycle)
	})

	s.Run("success: billable override forwarded", func() {
		s.mockLifecycle.EXPECT().
			Transition(gomock.Any(), detailID, s.hotelID, reservation.LifecycleLive, s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, _ reservation.Lifecycle, _ uuid.UUID, override *bool) (*commands.DetailTransitionResult, error) {
				s.Require().NotNil(override)
				s.False(*override)
				return &commands.DetailTransitionResult{ID: detailID, Lifecycle: reservation.LifecycleLive}, nil
			})

		body := map[string]any{"billable": false}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when the detail is already live", func() {
		s.mockLifecycle.EXPECT().
			Transition(gomock.Any(), detailID, s.hotelID, reservation.LifecycleLive, s.userID, nil).
			Return(nil, commands.ErrInvalidStateTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already in the requested state")
	})
}
