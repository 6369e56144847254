//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"pixelboard/internal/domain/canvas"
	"pixelboard/internal/handler/api"
	resdto "pixelboard/internal/handler/dto/response"
	"pixelboard/internal/usecase/commands"
	"pixelboard/internal/usecase/queries"
	"pixelboard/tests/common/builder"
	"pixelboard/tests/common/httptest"
	"pixelboard/tests/common/testutil"
	commandsmock "pixelboard/tests/mock/commands"
	queriesmock "pixelboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CanvasHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCanvasCommands
	mockQueries  *queriesmock.MockCanvasQueries
	handler      *api.CanvasHandler
}

func (s *CanvasHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCanvasCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCanvasQueries(s.mockCtrl)
	s.handler = api.NewCanvasHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/canvas/pixels", s.handler.PlacePixel)
	s.router.GET("/api/canvas", s.handler.GetCanvas)
	s.router.GET("/api/canvas/cooldown/:user_id", s.handler.GetCooldownStatus)
}

func (s *CanvasHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCanvasHandlerSuite(t *testing.T) {
	suite.Run(t, new(CanvasHandlerTestSuite))
}

type testCaseCanvas struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestPlacePixel
// ================================================================================

func (s *CanvasHandlerTestSuite) TestPlacePixel() {
	url := "/api/canvas/pixels"

	reqBody := builder.NewPlacementBuilder().BuildPlaceRequestDTO()
	expectedResult := &commands.PlacePixelResult{PlacementID: uuid.New()}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().PlacePixel(gomock.Any(), gomock.Any(), reqBody.UserID).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.PlacePixelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.PlacementID, body.PlacementID)
	})

	s.Run("success: zero coordinates bind correctly", func() {
		s.mockCommands.EXPECT().PlacePixel(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.PlacePixelRequest, _ uuid.UUID) (*commands.PlacePixelResult, error) {
				s.Equal(0, req.X)
				s.Equal(0, req.Y)
				return expectedResult, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("x", 0),
			testutil.Field("y", 0),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseCanvas{
			{name: "missing field: x", mutate: testutil.Field("x", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: y", mutate: testutil.Field("y", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: color", mutate: testutil.Field("color", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: user_id", mutate: testutil.Field("user_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "malformed user_id", mutate: testutil.Field("user_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request on domain validation rejection", func() {
		s.mockCommands.EXPECT().PlacePixel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, canvas.ErrOutOfBounds).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid placement")
	})

	s.Run("error: 429 Too Many Requests while cooldown is active", func() {
		s.mockCommands.EXPECT().PlacePixel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &commands.CooldownActiveError{Remaining: 20 * time.Second}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Cooldown active")

		var body struct {
			Detail struct {
				RemainingSeconds int `json:"remaining_seconds"`
				RemainingMinutes int `json:"remaining_minutes"`
			} `json:"detail"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(20, body.Detail.RemainingSeconds)
		s.Equal(1, body.Detail.RemainingMinutes)
	})

	s.Run("error: 500 Internal Server Error on unexpected failure", func() {
		s.mockCommands.EXPECT().PlacePixel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db gone")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to place pixel")
	})
}

// ================================================================================
// TestGetCanvas
// ================================================================================

func (s *CanvasHandlerTestSuite) TestGetCanvas() {
	url := "/api/canvas"

	s.Run("success: returns grid and stats", func() {
		placedAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
		view := &queries.CanvasView{
			Width:  10,
			Height: 10,
			Cells: []queries.CellView{
				{X: 2, Y: 3, Color: "#FF0000", UserID: uuid.New(), Username: "alice", PlacedAt: placedAt},
			},
			Stats: queries.CanvasStatsView{
				TotalPlacements:    1,
				UniqueContributors: 1,
				LastUpdated:        &placedAt,
			},
		}
		s.mockQueries.EXPECT().GetCanvas(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.CanvasResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(10, body.Width)
		s.Require().Len(body.Cells, 1)
		s.Equal("#FF0000", body.Cells[0].Color)
		s.Equal(int64(1), body.Stats.TotalPlacements)
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockQueries.EXPECT().GetCanvas(gomock.Any()).Return(nil, errors.New("db gone")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load canvas")
	})
}

// ================================================================================
// TestGetCooldownStatus
// ================================================================================

func (s *CanvasHandlerTestSuite) TestGetCooldownStatus() {
	userID := uuid.New()
	url := "/api/canvas/cooldown/" + userID.String()

	s.Run("success: active cooldown reports remaining wait", func() {
		availableAt := time.Date(2026, 2, 10, 12, 0, 30, 0, time.UTC)
		view := &queries.CooldownStatusView{
			CanPlace:         false,
			RemainingSeconds: 20,
			RemainingMinutes: 1,
			AvailableAt:      &availableAt,
		}
		s.mockQueries.EXPECT().GetCooldownStatus(gomock.Any(), userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.CooldownStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.CanPlace)
		s.Equal(20, body.RemainingSeconds)
		s.Equal(1, body.RemainingMinutes)
	})

	s.Run("success: free user can place", func() {
		s.mockQueries.EXPECT().GetCooldownStatus(gomock.Any(), userID).
			Return(&queries.CooldownStatusView{CanPlace: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.CooldownStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.CanPlace)
		s.Zero(body.RemainingSeconds)
	})

	s.Run("error: 400 Bad Request on malformed user id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canvas/cooldown/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})
}
